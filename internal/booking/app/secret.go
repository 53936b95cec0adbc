package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/cryptox"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
)

// initSigner builds the HS256 signer and its verifier.
//
// Without JWT_SECRET_KEY a random secret is generated, so every token is
// invalidated on restart and replicas cannot verify each other's tokens.
// Validate refuses that in prod.
func initSigner(cfg Config, logger *slog.Logger) (*jwtx.HS256Signer, jwtx.Verifier, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = generated
		logger.Warn("JWT_SECRET_KEY not set, using a random per-process secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize JWT signer: %w", err)
	}

	verifier := signer.Verifier(jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: service.DefaultAudience,
	})
	return signer, verifier, nil
}
