// Package activation mints user-facing activation codes for purchases.
package activation

import (
	"context"
	"encoding/hex"
	"strings"

	"gamehub/internal/domain/constants"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"

	"github.com/google/uuid"
)

type generator struct {
	retryLimit int
}

// NewGenerator creates an activation code generator with the given collision
// retry limit. A non-positive limit falls back to the default.
func NewGenerator(retryLimit int) service.ActivationCodeGenerator {
	if retryLimit <= 0 {
		retryLimit = constants.DefaultActivationRetryLimit
	}

	return &generator{retryLimit: retryLimit}
}

// Generate produces a 16-character uppercase hex code unique against the
// persisted set reported by exists. Collision resistance, not secrecy, is the
// goal; codes are shown to the purchasing user. Because the caller runs the
// exists check and the consuming write inside one database transaction backed
// by a unique index, concurrent purchases cannot be issued the same code.
func (g *generator) Generate(ctx context.Context, exists service.CodeExistsFunc) (string, error) {
	for attempt := 0; attempt < g.retryLimit; attempt++ {
		code := newCode()

		taken, err := exists(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check activation code uniqueness")
		}
		if !taken {
			return code, nil
		}
	}

	// Hitting the cap means the code space is nearly exhausted. That is an
	// operational fault worth alerting on, not something to paper over.
	return "", service.ErrActivationCodeSpaceExhausted
}

func newCode() string {
	id := uuid.New()

	return strings.ToUpper(hex.EncodeToString(id[:]))[:constants.ActivationCodeLength]
}
