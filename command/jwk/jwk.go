package jwk

import (
	"github.com/urfave/cli"

	"github.com/pytokenator/josekeys/errs"
	"github.com/pytokenator/josekeys/flags"
)

// Command returns the jwk command.
func Command() cli.Command {
	return cli.Command{
		Name:   "jwk",
		Action: cli.ActionFunc(createAction),
		Usage:  "create a JWK (JSON Web Key)",
		UsageText: `**josekeys jwk** [**--kty**=<type>] [**--crv**=<curve>]
[**--public-exp**=<exponent>] [**--size**=<size>] [**--alg**=<algorithm>]`,
		Description: `**josekeys jwk** generates a new JWK (JSON Web Key) and prints it, private
members included, to STDOUT. The JWK conforms to RFC7517 and RFC7518, OKP keys
to RFC8037.

All flags are optional, but only the flags given are used to generate the key.
The key type is required by the generator and OKP keys also require a curve.

## EXIT CODES

This command returns 0 on success and \>0 if any error occurs.

## STANDARDS

[RFC7517]
: Jones, M., "JSON Web Key (JWK)", https://tools.ietf.org/html/rfc7517

[RFC7518]
: Jones, M., "JSON Web Algorithms (JWA)", https://tools.ietf.org/html/rfc7518

[RFC8037]
: I. Liusvaara., "CFRG Elliptic Curve Diffie-Hellman (ECDH) and Signatures in
  JSON Object Signing and Encryption (JOSE)",
  https://tools.ietf.org/html/rfc8037

## EXAMPLES

Create an EC key on the P-256 curve:

'''
$ josekeys jwk --kty EC
'''

Create an EC key on the secp256k1 curve:

'''
$ josekeys jwk -t EC -c secp256k1
'''

Create a 4096 bit RSA key:

'''
$ josekeys jwk --kty RSA --size 4096
'''

Create a key for use with the Ed25519 cryptosystem:

'''
$ josekeys jwk --kty OKP --crv Ed25519 --alg EdDSA
'''

Create a 256 bit symmetric key:

'''
$ josekeys jwk --kty oct --size 256 --alg HS256
'''`,
		Flags: []cli.Flag{
			flags.KTY,
			flags.Curve,
			flags.PublicExp,
			flags.Size,
			flags.Alg,
		},
		OnUsageError: func(ctx *cli.Context, err error, _ bool) error {
			return errs.UsageError(ctx, err)
		},
	}
}
