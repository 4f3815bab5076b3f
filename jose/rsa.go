package jose

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var bigOne = big.NewInt(1)

// minPrimeDistance returns the smallest accepted |p-q| for a modulus of the
// given size, 2^(bits/2-100) as in FIPS 186-4 B.3.3.
func minPrimeDistance(bits int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(bits/2-100))
}

// newRSAKey generates an RSA key of the given size. The standard library only
// generates keys with the exponent 65537, the small exponent 3 is supported
// by searching the two primes here.
func newRSAKey(random io.Reader, bits, exp int) (*rsa.PrivateKey, error) {
	switch exp {
	case DefaultRSAExponent:
		key, err := rsa.GenerateKey(random, bits)
		if err != nil {
			return nil, errors.Wrap(err, "error generating RSA key")
		}
		return key, nil
	case 3:
		return newRSAKeyWithExponent(random, bits, exp)
	default:
		return nil, errors.Errorf("jose/generate: invalid RSA public exponent %d, options are 3 or 65537", exp)
	}
}

func newRSAKeyWithExponent(random io.Reader, bits, exp int) (*rsa.PrivateKey, error) {
	e := big.NewInt(int64(exp))
	minDistance := minPrimeDistance(bits)
	for {
		p, err := rand.Prime(random, bits-bits/2)
		if err != nil {
			return nil, errors.Wrap(err, "error generating RSA key")
		}
		q, err := rand.Prime(random, bits/2)
		if err != nil {
			return nil, errors.Wrap(err, "error generating RSA key")
		}
		diff := new(big.Int).Sub(p, q)
		if diff.Abs(diff).Cmp(minDistance) <= 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}

		// e must be invertible modulo (p-1)(q-1)
		phi := new(big.Int).Mul(new(big.Int).Sub(p, bigOne), new(big.Int).Sub(q, bigOne))
		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			continue
		}

		key := &rsa.PrivateKey{
			PublicKey: rsa.PublicKey{N: n, E: exp},
			D:         d,
			Primes:    []*big.Int{p, q},
		}
		key.Precompute()
		if err := key.Validate(); err != nil {
			return nil, errors.Wrap(err, "error generating RSA key")
		}
		return key, nil
	}
}
