package flags

import (
	"strconv"

	"github.com/urfave/cli"

	"github.com/pytokenator/josekeys/errs"
)

var (
	// KTY is the flag to set the key type.
	KTY = cli.StringFlag{
		Name: "kty, t",
		Usage: `The <type> of key to create. Corresponds to the **"kty"** JWK parameter.

: <type> is a case-sensitive string and must be one of:

    **EC**
    :  Create an **elliptic curve** keypair

    **RSA**
    :  Create an **RSA** keypair

    **OKP**
    :  Create an octet key pair (Edwards and Montgomery curves)

    **oct**
    :  Create a **symmetric key** (octet stream)`,
	}

	// Curve is the flag to set the key curve.
	Curve = cli.StringFlag{
		Name: "crv, c",
		Usage: `The <curve> to use for EC and OKP key types. Corresponds to the **"crv"** JWK
parameter. If unset, EC keys use P-256 and OKP keys require a curve.

: <curve> is a case-sensitive string and must be one of:

    **P-256**, **P-384**, **P-521**, **secp256k1**
    :  Curves for the EC key type

    **Ed25519**, **Ed448**, **X25519**, **X448**
    :  Curves for the OKP key type`,
	}

	// PublicExp is the flag to set the RSA public exponent.
	PublicExp = cli.StringFlag{
		Name: "public-exp, p",
		Usage: `The RSA public <exponent>. Only 3 and 65537 are supported. If unset, default is
65537.`,
	}

	// Size is the flag to set the key size.
	Size = cli.IntFlag{
		Name: "size, s",
		Usage: `The <size> (in bits) of the key for RSA and oct key types. RSA keys require a
minimum key size of 1024 bits and oct keys a multiple of 8. If unset, default
is 2048 bits for RSA keys and 128 bits for oct keys.`,
	}

	// Alg is the flag to set the JWK algorithm.
	Alg = cli.StringFlag{
		Name: "alg, a",
		Usage: `The <algorithm> intended for use with this key. Corresponds to the **"alg"**
JWK parameter. The value is not validated and the member is omitted if unset.`,
	}
)

// ParsePublicExp parses the --public-exp flag. It returns false if the flag
// has not been set.
func ParsePublicExp(ctx *cli.Context) (int, bool, error) {
	if !ctx.IsSet("public-exp") {
		return 0, false, nil
	}
	s := ctx.String("public-exp")
	exp, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, errs.InvalidFlagValue(ctx, "public-exp", s, "it must be an integer")
	}
	return exp, true, nil
}
