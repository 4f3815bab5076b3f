package cmd

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/urfave/cli"
	"go.step.sm/cli-utils/usage"

	"github.com/pytokenator/josekeys/command/jwk"
	"github.com/pytokenator/josekeys/command/version"
	"github.com/pytokenator/josekeys/config"
	"github.com/pytokenator/josekeys/errs"
)

// hint is printed when no command is given.
const hint = "See sub commands in help"

func init() {
	// Override global framework components
	cli.VersionPrinter = func(c *cli.Context) {
		version.Command(c)
	}
	cli.AppHelpTemplate = usage.AppHelpTemplate
	cli.SubcommandHelpTemplate = usage.SubcommandHelpTemplate
	cli.CommandHelpTemplate = usage.CommandHelpTemplate
	cli.HelpPrinter = usage.HelpPrinter
	cli.FlagNamePrefixer = usage.FlagNamePrefixer
	cli.FlagStringer = stringifyFlag
}

// Run runs the josekeys command line with the process arguments and returns
// the exit code.
func Run() int {
	defer panicHandler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if config.Debug() {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, errs.ToError(err))
		}
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	// Configure cli app
	app := cli.NewApp()
	app.Name = config.Name()
	app.HelpName = config.Name()
	app.Usage = "create JOSE keys"
	app.UsageText = "**josekeys** <command> [arguments] [global-flags] [subcommand-flags]"
	app.Description = `**josekeys** creates keys in the JSON Web Key (JWK) format defined in RFC7517.`
	app.Version = config.Version()
	app.Commands = []cli.Command{
		jwk.Command(),
	}
	app.Flags = append(app.Flags, cli.HelpFlag)
	app.Action = cli.ActionFunc(appAction)
	app.OnUsageError = func(ctx *cli.Context, err error, _ bool) error {
		return errs.UsageError(ctx, err)
	}

	// All non-successful output should be written to stderr
	app.Writer = stdout
	app.ErrWriter = stderr

	return app
}

// appAction runs when no command is given.
func appAction(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return errs.UnknownCommand(ctx, ctx.Args().First())
	}
	fmt.Fprintln(ctx.App.Writer, hint)
	return nil
}

func panicHandler() {
	if r := recover(); r != nil {
		if config.Debug() {
			fmt.Fprintf(os.Stderr, "%s\n", config.Version())
			fmt.Fprintf(os.Stderr, "Release Date: %s\n\n", config.ReleaseDate())
			panic(r)
		} else {
			fmt.Fprintln(os.Stderr, "Something unexpected happened.")
			fmt.Fprintln(os.Stderr, "If you want to help us debug the problem, please run:")
			fmt.Fprintf(os.Stderr, "%s=1 %s\n", config.DebugEnv, strings.Join(os.Args, " "))
			os.Exit(2)
		}
	}
}

func flagValue(f cli.Flag) reflect.Value {
	fv := reflect.ValueOf(f)
	for fv.Kind() == reflect.Ptr {
		fv = reflect.Indirect(fv)
	}
	return fv
}

var placeholderString = regexp.MustCompile(`<.*?>`)

func stringifyFlag(f cli.Flag) string {
	fv := flagValue(f)
	usage := fv.FieldByName("Usage").String()
	placeholder := placeholderString.FindString(usage)
	if placeholder == "" {
		switch f.(type) {
		case cli.BoolFlag, cli.BoolTFlag:
		default:
			placeholder = "<value>"
		}
	}
	return cli.FlagNamePrefixer(fv.FieldByName("Name").String(), placeholder) + "\t" + usage
}
