package jose

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/dh/x448"
	"github.com/cloudflare/circl/sign/ed448"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/lestrrat-go/jwx/v2/x25519"
	"github.com/pkg/errors"
	"go.step.sm/crypto/randutil"
	"golang.org/x/crypto/ed25519"
)

// Key types.
const (
	EC  = "EC"
	RSA = "RSA"
	OKP = "OKP"
	OCT = "oct"
)

// Curves.
const (
	P256      = "P-256"
	P384      = "P-384"
	P521      = "P-521"
	Secp256k1 = "secp256k1"
	Ed25519   = "Ed25519"
	Ed448     = "Ed448"
	X25519    = "X25519"
	X448      = "X448"
)

const (
	// DefaultECCurve is the curve used for EC keys when none is given.
	DefaultECCurve = P256
	// DefaultRSASize is the size in bits of RSA keys when none is given.
	DefaultRSASize = 2048
	// DefaultRSAExponent is the RSA public exponent used when none is given.
	DefaultRSAExponent = 65537
	// DefaultOctSize is the size in bits of oct keys when none is given.
	DefaultOctSize = 128

	// MinRSASize is the smallest RSA modulus accepted.
	MinRSASize = 1024
	// MaxRSASize is the largest RSA modulus accepted.
	MaxRSASize = 16384
	// MaxOctSize is the largest oct key accepted, in bits.
	MaxOctSize = 16384
)

var (
	// ErrMissingKeyType is returned when a key is requested without a type.
	ErrMissingKeyType = errors.New("jose/generate: missing key type")
	// ErrMissingCurve is returned when an OKP key is requested without a
	// curve.
	ErrMissingCurve = errors.New("jose/generate: missing curve for key type OKP")
)

// x448PrivateKey is an X448 key pair, circl only models the raw points.
type x448PrivateKey struct {
	public, secret x448.Key
}

// GenerateJWK generates a JWK with the given options. Only the attributes
// set by an Option are taken into account, everything else uses the
// defaults of the key type.
func GenerateJWK(opts ...Option) (*Key, error) {
	ctx := new(context).apply(opts...)
	if ctx.kty == nil {
		return nil, ErrMissingKeyType
	}

	var (
		key *Key
		err error
	)
	switch kty := *ctx.kty; kty {
	case EC:
		key, err = generateECKey(ctx)
	case RSA:
		key, err = generateRSAKey(ctx)
	case OKP:
		key, err = generateOKPKey(ctx)
	case OCT:
		key, err = generateOctKey(ctx)
	default:
		return nil, errors.Errorf("jose/generate: invalid key type '%s', options are EC, RSA, OKP, or oct", kty)
	}
	if err != nil {
		return nil, err
	}

	key.alg = ctx.alg
	return key, nil
}

// notApplicable returns an error if any of the given attributes has been set
// for the key type kty.
func (ctx *context) notApplicable(kty string, attrs ...string) error {
	for _, attr := range attrs {
		var set bool
		switch attr {
		case "crv":
			set = ctx.crv != nil
		case "size":
			set = ctx.size != nil
		case "public_exp":
			set = ctx.publicExp != nil
		}
		if set {
			return errors.Errorf("jose/generate: %s is not supported for key type %s", attr, kty)
		}
	}
	return nil
}

func generateECKey(ctx *context) (*Key, error) {
	if err := ctx.notApplicable(EC, "size", "public_exp"); err != nil {
		return nil, err
	}

	crv := DefaultECCurve
	if ctx.crv != nil {
		crv = *ctx.crv
	}

	var c elliptic.Curve
	switch crv {
	case P256:
		c = elliptic.P256()
	case P384:
		c = elliptic.P384()
	case P521:
		c = elliptic.P521()
	case Secp256k1:
		pk, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, errors.Wrap(err, "error generating secp256k1 key")
		}
		return &Key{kty: EC, crv: crv, key: pk}, nil
	default:
		return nil, invalidCurve(EC, crv)
	}

	pk, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "error generating ECDSA key")
	}
	return &Key{kty: EC, crv: crv, key: pk}, nil
}

func generateRSAKey(ctx *context) (*Key, error) {
	if err := ctx.notApplicable(RSA, "crv"); err != nil {
		return nil, err
	}

	bits := DefaultRSASize
	if ctx.size != nil {
		bits = *ctx.size
	}
	if bits < MinRSASize {
		return nil, errors.Errorf("jose/generate: invalid RSA size %d, it must be at least %d bits", bits, MinRSASize)
	}
	if bits > MaxRSASize {
		return nil, errors.Errorf("jose/generate: invalid RSA size %d, it must be at most %d bits", bits, MaxRSASize)
	}

	exp := DefaultRSAExponent
	if ctx.publicExp != nil {
		exp = *ctx.publicExp
	}

	pk, err := newRSAKey(rand.Reader, bits, exp)
	if err != nil {
		return nil, err
	}
	return &Key{kty: RSA, key: pk}, nil
}

func generateOKPKey(ctx *context) (*Key, error) {
	if err := ctx.notApplicable(OKP, "size", "public_exp"); err != nil {
		return nil, err
	}
	if ctx.crv == nil {
		return nil, ErrMissingCurve
	}

	var pk interface{}
	switch crv := *ctx.crv; crv {
	case Ed25519:
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "error generating Ed25519 key")
		}
		pk = priv
	case Ed448:
		_, priv, err := ed448.GenerateKey(rand.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "error generating Ed448 key")
		}
		pk = priv
	case X25519:
		_, priv, err := x25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "error generating X25519 key")
		}
		pk = priv
	case X448:
		priv := new(x448PrivateKey)
		if _, err := io.ReadFull(rand.Reader, priv.secret[:]); err != nil {
			return nil, errors.Wrap(err, "error generating X448 key")
		}
		x448.KeyGen(&priv.public, &priv.secret)
		pk = priv
	default:
		return nil, invalidCurve(OKP, crv)
	}

	return &Key{kty: OKP, crv: *ctx.crv, key: pk}, nil
}

func generateOctKey(ctx *context) (*Key, error) {
	if err := ctx.notApplicable(OCT, "crv", "public_exp"); err != nil {
		return nil, err
	}

	size := DefaultOctSize
	if ctx.size != nil {
		size = *ctx.size
	}
	if size <= 0 || size%8 != 0 {
		return nil, errors.Errorf("jose/generate: invalid oct size %d, it must be a positive multiple of 8", size)
	}
	if size > MaxOctSize {
		return nil, errors.Errorf("jose/generate: invalid oct size %d, it must be at most %d bits", size, MaxOctSize)
	}

	k, err := randutil.Salt(size / 8)
	if err != nil {
		return nil, errors.Wrap(err, "error generating oct key")
	}
	return &Key{kty: OCT, key: k}, nil
}

func invalidCurve(kty, crv string) error {
	var options string
	switch kty {
	case EC:
		options = "P-256, P-384, P-521, or secp256k1"
	case OKP:
		options = "Ed25519, Ed448, X25519, or X448"
	}
	return errors.Errorf("jose/generate: invalid curve '%s' for key type %s, options are %s", crv, kty, options)
}
