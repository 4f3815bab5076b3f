package jose

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"

	"github.com/cloudflare/circl/sign/ed448"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/go-jose/go-jose/v3"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/x25519"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

// Key is a generated key. The private material is only reachable through
// Export.
type Key struct {
	kty, crv string
	alg      *string
	key      interface{}
}

// Type returns the "kty" of the key.
func (k *Key) Type() string {
	return k.kty
}

// Curve returns the "crv" of the key, or an empty string for RSA and oct
// keys.
func (k *Key) Curve() string {
	return k.crv
}

// Export returns the JWK members of the key, private members included. The
// "alg" member is only present if it was given on generation.
func (k *Key) Export() (map[string]interface{}, error) {
	var (
		m   map[string]interface{}
		err error
	)
	switch key := k.key.(type) {
	case *ecdsa.PrivateKey, *rsa.PrivateKey, ed25519.PrivateKey, []byte:
		m, err = exportJSONWebKey(key)
	case x25519.PrivateKey:
		m, err = exportRawKey(key)
	case *secp256k1.PrivateKey:
		m = exportSecp256k1(key)
	case ed448.PrivateKey:
		m = map[string]interface{}{
			"kty": OKP,
			"crv": Ed448,
			"x":   encode(key.Public().(ed448.PublicKey)),
			"d":   encode(key.Seed()),
		}
	case *x448PrivateKey:
		m = map[string]interface{}{
			"kty": OKP,
			"crv": X448,
			"x":   encode(key.public[:]),
			"d":   encode(key.secret[:]),
		}
	default:
		return nil, errors.Errorf("jose/export: unsupported key type '%T'", key)
	}
	if err != nil {
		return nil, err
	}

	if k.alg != nil {
		m["alg"] = *k.alg
	}
	return m, nil
}

// MarshalIndent returns the JSON encoding of the exported key with the
// members sorted and indented with two spaces. The output ends with a new
// line.
func (k *Key) MarshalIndent() ([]byte, error) {
	m, err := k.Export()
	if err != nil {
		return nil, err
	}
	return marshalIndent(m)
}

func marshalIndent(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, errors.Wrap(err, "error marshaling JWK")
	}
	return buf.Bytes(), nil
}

// exportJSONWebKey uses go-jose to encode the key types it knows about.
func exportJSONWebKey(key interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(jose.JSONWebKey{Key: key})
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling JWK")
	}
	return toMap(b)
}

// exportRawKey uses jwx for the keys go-jose cannot encode.
func exportRawKey(key interface{}) (map[string]interface{}, error) {
	jk, err := jwk.FromRaw(key)
	if err != nil {
		return nil, errors.Wrap(err, "error creating JWK")
	}
	b, err := json.Marshal(jk)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling JWK")
	}
	return toMap(b)
}

func exportSecp256k1(key *secp256k1.PrivateKey) map[string]interface{} {
	pub := key.PubKey()
	return map[string]interface{}{
		"kty": EC,
		"crv": Secp256k1,
		"x":   encode(pad(pub.X(), 32)),
		"y":   encode(pad(pub.Y(), 32)),
		"d":   encode(key.Serialize()),
	}
}

func toMap(b []byte) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrap(err, "error parsing JWK")
	}
	return m, nil
}

func pad(n *big.Int, size int) []byte {
	return n.FillBytes(make([]byte, size))
}

func encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
