package jwk

import (
	"github.com/urfave/cli"

	"github.com/pytokenator/josekeys/errs"
	"github.com/pytokenator/josekeys/flags"
	"github.com/pytokenator/josekeys/jose"
)

func createAction(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return errs.TooManyArguments(ctx)
	}

	opts, err := generateOptions(ctx)
	if err != nil {
		return err
	}

	jwk, err := jose.GenerateJWK(opts...)
	if err != nil {
		return err
	}

	b, err := jwk.MarshalIndent()
	if err != nil {
		return errs.UnexpectedError(err)
	}

	_, err = ctx.App.Writer.Write(b)
	return err
}

// generateOptions returns the generation options for the flags set in the
// command line. Flags not given do not produce an option.
func generateOptions(ctx *cli.Context) ([]jose.Option, error) {
	var opts []jose.Option
	if ctx.IsSet("kty") {
		opts = append(opts, jose.WithKty(ctx.String("kty")))
	}
	if ctx.IsSet("crv") {
		opts = append(opts, jose.WithCrv(ctx.String("crv")))
	}

	exp, ok, err := flags.ParsePublicExp(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, jose.WithPublicExp(exp))
	}

	if ctx.IsSet("size") {
		opts = append(opts, jose.WithSize(ctx.Int("size")))
	}
	if ctx.IsSet("alg") {
		opts = append(opts, jose.WithAlg(ctx.String("alg")))
	}
	return opts, nil
}
