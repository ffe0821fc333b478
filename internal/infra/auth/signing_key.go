package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log/slog"
	"os"

	"authflow/config"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// MinSigningKeyBits is the smallest RSA modulus accepted for RS256 signing.
const MinSigningKeyBits = 2048

// SigningKeyParams holds dependencies for loading the signing key, injected by Fx.
type SigningKeyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSigningKey loads the process-wide private key once at startup. A missing
// or malformed key aborts the fx graph.
func NewSigningKey(params SigningKeyParams) (*rsa.PrivateKey, error) {
	path := params.Config.Token.PrivateKeyPath

	key, err := LoadSigningKey(path)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Signing key loaded",
		slog.String("path", path),
		slog.Int("bits", key.N.BitLen()),
	)

	return key, nil
}

// LoadSigningKey reads and parses a PEM encoded RSA private key from path.
func LoadSigningKey(path string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrSigningFailed, "read signing key %q: %v", path, err)
	}

	return ParseSigningKey(pemBytes)
}

// ParseSigningKey accepts PKCS#1 and PKCS#8 PEM blocks.
func ParseSigningKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrSigningFailed, "parse signing key: %v", err)
	}

	if bits := key.N.BitLen(); bits < MinSigningKeyBits {
		return nil, errors.Wrapf(domainerrors.ErrSigningFailed, "signing key has %d bits, need at least %d", bits, MinSigningKeyBits)
	}

	return key, nil
}

// GenerateSigningKey creates a new RSA key suitable for RS256.
func GenerateSigningKey(bits int) (*rsa.PrivateKey, error) {
	if bits < MinSigningKeyBits {
		return nil, errors.Errorf("key size %d is below the minimum of %d bits", bits, MinSigningKeyBits)
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrap(err, "generate rsa key")
	}

	return key, nil
}

// EncodePrivateKeyPEM encodes key as a PKCS#1 "RSA PRIVATE KEY" block.
func EncodePrivateKeyPEM(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

// EncodePublicKeyPEM encodes pub as a PKIX "PUBLIC KEY" block.
func EncodePublicKeyPEM(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, errors.Wrap(err, "marshal public key")
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
