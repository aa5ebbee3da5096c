package service

import (
	"context"

	"gamehub/internal/errors"
)

// ErrActivationCodeSpaceExhausted is returned when the generator exceeds its
// retry budget without finding an unused code. Treated as an operational
// fault, never silently tolerated.
var ErrActivationCodeSpaceExhausted = errors.New("activation code space exhausted")

// CodeExistsFunc reports whether an activation code has already been issued.
// The check runs against the authoritative persisted set, inside the same
// transaction as the write that will consume the code.
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// ActivationCodeGenerator mints user-facing activation codes. Codes prove
// purchase and must be globally unique; they are not security secrets.
type ActivationCodeGenerator interface {
	// Generate produces a fresh 16-character uppercase alphanumeric code that
	// exists does not know about, retrying on collision up to a bounded cap.
	// Returns ErrActivationCodeSpaceExhausted when the cap is exceeded.
	Generate(ctx context.Context, exists CodeExistsFunc) (string, error)
}
