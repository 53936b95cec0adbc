package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted, 256 bits.
const MinSecretLength = 32

// ErrWeakSecret is returned when the HMAC secret is too short to be useful.
var ErrWeakSecret = errors.New("jwtx: secret must be at least 32 bytes")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer signs tokens with a shared HMAC SHA-256 secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. The secret is copied.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{secret: append([]byte(nil), secret...)}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks the secret is long enough.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretLength {
		return ErrWeakSecret
	}
	return nil
}

// Verifier returns an HS256 verifier sharing this signer's secret.
func (s *HS256Signer) Verifier(opts VerifyOptions) *HS256Verifier {
	return NewVerifierHS256(s.secret, opts)
}
