package activation

import (
	"context"
	"regexp"
	"testing"

	"gamehub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[0-9A-F]{16}$`)

func neverExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func TestGenerate_CodeFormat(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(5)

	code, err := gen.Generate(context.Background(), neverExists)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, code)
}

func TestGenerate_CodesAreUnique(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(5)
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		code, err := gen.Generate(context.Background(), neverExists)
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(5)

	calls := 0
	exists := func(_ context.Context, _ string) (bool, error) {
		calls++

		return calls < 3, nil
	}

	code, err := gen.Generate(context.Background(), exists)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, code)
	assert.Equal(t, 3, calls)
}

func TestGenerate_ExhaustsRetryLimit(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(3)

	calls := 0
	alwaysTaken := func(_ context.Context, _ string) (bool, error) {
		calls++

		return true, nil
	}

	code, err := gen.Generate(context.Background(), alwaysTaken)
	require.ErrorIs(t, err, service.ErrActivationCodeSpaceExhausted)
	assert.Empty(t, code)
	assert.Equal(t, 3, calls)
}

func TestGenerate_PropagatesLookupError(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(5)

	checkErr := assert.AnError
	exists := func(_ context.Context, _ string) (bool, error) {
		return false, checkErr
	}

	code, err := gen.Generate(context.Background(), exists)
	require.ErrorIs(t, err, checkErr)
	assert.Empty(t, code)
}

func TestNewGenerator_DefaultsRetryLimit(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(0)

	calls := 0
	alwaysTaken := func(_ context.Context, _ string) (bool, error) {
		calls++

		return true, nil
	}

	_, err := gen.Generate(context.Background(), alwaysTaken)
	require.ErrorIs(t, err, service.ErrActivationCodeSpaceExhausted)
	assert.Equal(t, 5, calls)
}
