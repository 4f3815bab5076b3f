package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// UsageError returns the given error followed by the usage line of the
// command that failed to parse.
func UsageError(ctx *cli.Context, err error) error {
	return errors.Errorf("%s\n\n%s", prependErrorMsg(err), usageString(ctx))
}

// UnexpectedError wraps the error denoting that it was unexpected.
func UnexpectedError(err error) error {
	return errors.Errorf("Error: An unexpected error was encountered: %s", err.Error())
}

// ToError prefixes the error message with "Error:" keeping the original
// error as the cause.
func ToError(err error) error {
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "Error:") {
		return err
	}
	return errors.WithMessage(err, "Error")
}

func prependErrorMsg(err error) string {
	m := err.Error()
	if strings.HasPrefix(m, "Error:") {
		return m
	}

	return "Error: " + m
}

// UnknownCommand returns an error for a positional argument that does not
// name a command.
func UnknownCommand(ctx *cli.Context, name string) error {
	return errors.Errorf("unknown command '%s', see '%s --help'", name, ctx.App.HelpName)
}

// TooManyArguments returns an error with a too many arguments were provided
// message.
func TooManyArguments(ctx *cli.Context) error {
	return errors.Errorf("too many positional arguments were provided in '%s'", usage(ctx))
}

// InvalidFlagValue returns an error with the given value being missing or
// invalid for the given flag. Optionally it lists the given formated options
// at the end.
func InvalidFlagValue(ctx *cli.Context, flag string, value string, options string) error {
	var format string
	if len(value) == 0 {
		format = fmt.Sprintf("missing value for flag '--%s'", flag)
	} else {
		format = fmt.Sprintf("invalid value '%s' for flag '--%s'", value, flag)
	}

	if len(options) == 0 {
		return errors.New(format)
	}

	return errors.New(format + "; " + options)
}

// usage returns the command usage text if set or a default usage string.
func usage(ctx *cli.Context) string {
	if ctx.Command.Name == "" {
		return fmt.Sprintf("%s [global options] command [command options]", ctx.App.HelpName)
	}
	if len(ctx.Command.UsageText) == 0 {
		return fmt.Sprintf("%s %s [command options]", ctx.App.HelpName, ctx.Command.Name)
	}

	return ctx.Command.UsageText
}

// usageString returns the command usage prepended by the string "Usage: ".
func usageString(ctx *cli.Context) string {
	return "Usage: " + usage(ctx)
}
