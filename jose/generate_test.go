package jose

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"testing"

	"github.com/cloudflare/circl/sign/ed448"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/lestrrat-go/jwx/v2/x25519"
	"github.com/smallstep/assert"
	"golang.org/x/crypto/ed25519"
)

func TestGenerateJWK(t *testing.T) {
	tests := []struct {
		name         string
		opts         []Option
		expectedKty  string
		expectedCrv  string
		expectedSize int
		expectedType interface{}
		ok           bool
	}{
		{"EC", []Option{WithKty("EC")}, "EC", "P-256", 256, &ecdsa.PrivateKey{}, true},
		{"EC/P-256", []Option{WithKty("EC"), WithCrv("P-256")}, "EC", "P-256", 256, &ecdsa.PrivateKey{}, true},
		{"EC/P-384", []Option{WithKty("EC"), WithCrv("P-384")}, "EC", "P-384", 384, &ecdsa.PrivateKey{}, true},
		{"EC/P-521", []Option{WithKty("EC"), WithCrv("P-521"), WithAlg("ES512")}, "EC", "P-521", 521, &ecdsa.PrivateKey{}, true},
		{"EC/secp256k1", []Option{WithKty("EC"), WithCrv("secp256k1")}, "EC", "secp256k1", 256, &secp256k1.PrivateKey{}, true},
		{"RSA", []Option{WithKty("RSA")}, "RSA", "", 2048, &rsa.PrivateKey{}, true},
		{"RSA/1024", []Option{WithKty("RSA"), WithSize(1024)}, "RSA", "", 1024, &rsa.PrivateKey{}, true},
		{"RSA/1024/65537", []Option{WithKty("RSA"), WithSize(1024), WithPublicExp(65537)}, "RSA", "", 1024, &rsa.PrivateKey{}, true},
		{"RSA/1024/3", []Option{WithKty("RSA"), WithSize(1024), WithPublicExp(3)}, "RSA", "", 1024, &rsa.PrivateKey{}, true},
		{"OKP/Ed25519", []Option{WithKty("OKP"), WithCrv("Ed25519")}, "OKP", "Ed25519", ed25519.PrivateKeySize, ed25519.PrivateKey{}, true},
		{"OKP/Ed448", []Option{WithKty("OKP"), WithCrv("Ed448")}, "OKP", "Ed448", ed448.PrivateKeySize, ed448.PrivateKey{}, true},
		{"OKP/X25519", []Option{WithKty("OKP"), WithCrv("X25519")}, "OKP", "X25519", x25519.PrivateKeySize, x25519.PrivateKey{}, true},
		{"OKP/X448", []Option{WithKty("OKP"), WithCrv("X448")}, "OKP", "X448", 56, &x448PrivateKey{}, true},
		{"oct", []Option{WithKty("oct")}, "oct", "", 16, []byte{}, true},
		{"oct/256", []Option{WithKty("oct"), WithSize(256)}, "oct", "", 32, []byte{}, true},
		{"oct/8", []Option{WithKty("oct"), WithSize(8), WithAlg("HS256")}, "oct", "", 1, []byte{}, true},
		{"fail/missing-kty", []Option{WithCrv("P-256")}, "", "", 0, nil, false},
		{"fail/bogus-kty", []Option{WithKty("BOGUS")}, "", "", 0, nil, false},
		{"fail/empty-kty", []Option{WithKty("")}, "", "", 0, nil, false},
		{"fail/lowercase-kty", []Option{WithKty("ec")}, "", "", 0, nil, false},
		{"fail/EC/bad-crv", []Option{WithKty("EC"), WithCrv("Ed25519")}, "", "", 0, nil, false},
		{"fail/EC/empty-crv", []Option{WithKty("EC"), WithCrv("")}, "", "", 0, nil, false},
		{"fail/EC/size", []Option{WithKty("EC"), WithSize(256)}, "", "", 0, nil, false},
		{"fail/EC/public-exp", []Option{WithKty("EC"), WithPublicExp(3)}, "", "", 0, nil, false},
		{"fail/RSA/crv", []Option{WithKty("RSA"), WithCrv("P-256")}, "", "", 0, nil, false},
		{"fail/RSA/small", []Option{WithKty("RSA"), WithSize(512)}, "", "", 0, nil, false},
		{"fail/RSA/public-exp", []Option{WithKty("RSA"), WithSize(1024), WithPublicExp(17)}, "", "", 0, nil, false},
		{"fail/OKP/missing-crv", []Option{WithKty("OKP")}, "", "", 0, nil, false},
		{"fail/OKP/bad-crv", []Option{WithKty("OKP"), WithCrv("P-256")}, "", "", 0, nil, false},
		{"fail/OKP/size", []Option{WithKty("OKP"), WithCrv("Ed25519"), WithSize(256)}, "", "", 0, nil, false},
		{"fail/oct/crv", []Option{WithKty("oct"), WithCrv("P-256")}, "", "", 0, nil, false},
		{"fail/oct/public-exp", []Option{WithKty("oct"), WithPublicExp(65537)}, "", "", 0, nil, false},
		{"fail/oct/zero", []Option{WithKty("oct"), WithSize(0)}, "", "", 0, nil, false},
		{"fail/oct/negative", []Option{WithKty("oct"), WithSize(-8)}, "", "", 0, nil, false},
		{"fail/oct/not-bytes", []Option{WithKty("oct"), WithSize(100)}, "", "", 0, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			jwk, err := GenerateJWK(tc.opts...)
			if !tc.ok {
				assert.Error(t, err)
				assert.Nil(t, jwk)
				return
			}
			assert.FatalError(t, err)

			assert.Equals(t, tc.expectedKty, jwk.Type())
			assert.Equals(t, tc.expectedCrv, jwk.Curve())
			assert.Type(t, tc.expectedType, jwk.key)

			switch key := jwk.key.(type) {
			case *ecdsa.PrivateKey:
				assert.Equals(t, tc.expectedSize, key.Curve.Params().BitSize)
				switch tc.expectedSize {
				case 256:
					assert.Equals(t, elliptic.P256(), key.Curve)
				case 384:
					assert.Equals(t, elliptic.P384(), key.Curve)
				case 521:
					assert.Equals(t, elliptic.P521(), key.Curve)
				}
			case *secp256k1.PrivateKey:
				assert.Len(t, 32, key.Serialize())
			case *rsa.PrivateKey:
				assert.Equals(t, tc.expectedSize, key.N.BitLen())
				assert.NoError(t, key.Validate())
			case ed25519.PrivateKey:
				assert.Len(t, tc.expectedSize, []byte(key))
			case ed448.PrivateKey:
				assert.Len(t, tc.expectedSize, []byte(key))
			case x25519.PrivateKey:
				assert.Len(t, tc.expectedSize, []byte(key))
			case *x448PrivateKey:
				assert.Len(t, tc.expectedSize, key.secret[:])
			case []byte:
				assert.Len(t, tc.expectedSize, key)
			default:
				t.Errorf("unexpected key type %T", key)
			}
		})
	}
}

func TestGenerateJWK_publicExp(t *testing.T) {
	jwk, err := GenerateJWK(WithKty("RSA"), WithSize(1024), WithPublicExp(3))
	assert.FatalError(t, err)
	key := jwk.key.(*rsa.PrivateKey)
	assert.Equals(t, 3, key.E)
	assert.Len(t, 2, key.Primes)
	assert.NotNil(t, key.Precomputed.Dp)
	assert.NotNil(t, key.Precomputed.Dq)
	assert.NotNil(t, key.Precomputed.Qinv)

	jwk, err = GenerateJWK(WithKty("RSA"), WithSize(1024))
	assert.FatalError(t, err)
	assert.Equals(t, DefaultRSAExponent, jwk.key.(*rsa.PrivateKey).E)
}

func TestNewRSAKey_exponent3(t *testing.T) {
	for _, bits := range []int{1024, 2048} {
		key, err := newRSAKey(rand.Reader, bits, 3)
		assert.FatalError(t, err)
		assert.NoError(t, key.Validate())
		assert.Equals(t, bits, key.N.BitLen())

		p, q := key.Primes[0], key.Primes[1]
		assert.Equals(t, bits-bits/2, p.BitLen())
		assert.Equals(t, bits/2, q.BitLen())
		diff := new(big.Int).Sub(p, q)
		assert.True(t, diff.Abs(diff).BitLen() > bits/2-100)
	}
}

func TestGenerateJWK_alg(t *testing.T) {
	jwk, err := GenerateJWK(WithKty("EC"))
	assert.FatalError(t, err)
	assert.Nil(t, jwk.alg)

	jwk, err = GenerateJWK(WithKty("EC"), WithAlg(""))
	assert.FatalError(t, err)
	if assert.NotNil(t, jwk.alg) {
		assert.Equals(t, "", *jwk.alg)
	}

	jwk, err = GenerateJWK(WithKty("EC"), WithAlg("whatever-I-want"))
	assert.FatalError(t, err)
	if assert.NotNil(t, jwk.alg) {
		assert.Equals(t, "whatever-I-want", *jwk.alg)
	}
}

func TestGenerateJWK_errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		err  string
	}{
		{"missing-kty", nil, "jose/generate: missing key type"},
		{"bogus-kty", []Option{WithKty("BOGUS")}, "jose/generate: invalid key type 'BOGUS', options are EC, RSA, OKP, or oct"},
		{"EC/crv", []Option{WithKty("EC"), WithCrv("X448")}, "jose/generate: invalid curve 'X448' for key type EC, options are P-256, P-384, P-521, or secp256k1"},
		{"OKP/crv", []Option{WithKty("OKP"), WithCrv("secp256k1")}, "jose/generate: invalid curve 'secp256k1' for key type OKP, options are Ed25519, Ed448, X25519, or X448"},
		{"OKP/missing-crv", []Option{WithKty("OKP")}, "jose/generate: missing curve for key type OKP"},
		{"EC/size", []Option{WithKty("EC"), WithSize(256)}, "jose/generate: size is not supported for key type EC"},
		{"OKP/public_exp", []Option{WithKty("OKP"), WithCrv("X25519"), WithPublicExp(3)}, "jose/generate: public_exp is not supported for key type OKP"},
		{"RSA/crv", []Option{WithKty("RSA"), WithCrv("P-256")}, "jose/generate: crv is not supported for key type RSA"},
		{"RSA/size", []Option{WithKty("RSA"), WithSize(1023)}, "jose/generate: invalid RSA size 1023, it must be at least 1024 bits"},
		{"RSA/public_exp", []Option{WithKty("RSA"), WithPublicExp(65535)}, "jose/generate: invalid RSA public exponent 65535, options are 3 or 65537"},
		{"oct/size", []Option{WithKty("oct"), WithSize(12)}, "jose/generate: invalid oct size 12, it must be a positive multiple of 8"},
		{"oct/too-large", []Option{WithKty("oct"), WithSize(MaxOctSize + 8)}, "jose/generate: invalid oct size 16392, it must be at most 16384 bits"},
		{"oct/overflow", []Option{WithKty("oct"), WithSize(1 << 62)}, "jose/generate: invalid oct size 4611686018427387904, it must be at most 16384 bits"},
		{"RSA/too-large", []Option{WithKty("RSA"), WithSize(MaxRSASize + 1)}, "jose/generate: invalid RSA size 16385, it must be at most 16384 bits"},
		{"RSA/overflow", []Option{WithKty("RSA"), WithSize(1 << 40), WithPublicExp(3)}, "jose/generate: invalid RSA size 1099511627776, it must be at most 16384 bits"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateJWK(tc.opts...)
			if assert.Error(t, err) {
				assert.Equals(t, tc.err, err.Error())
			}
		})
	}
}
