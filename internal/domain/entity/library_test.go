package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	now := time.Now().UTC()
	code := "ABCDEF0123456789"

	assert.Equal(t, LibraryStatusNone, StatusOf(nil))

	wishlisted := NewWishlistEntry(1, 2)
	assert.Equal(t, LibraryStatusWishlisted, StatusOf(wishlisted))

	owned := &LibraryEntry{UserID: 1, GameID: 2, PurchaseDate: &now, ActivationCode: &code}
	assert.Equal(t, LibraryStatusOwned, StatusOf(owned))
}

func TestLibraryEntry_MarkOwned(t *testing.T) {
	now := time.Now().UTC()

	entry := NewWishlistEntry(1, 2)
	require.NoError(t, entry.MarkOwned(now, "ABCDEF0123456789"))
	assert.Equal(t, LibraryStatusOwned, entry.Status())
	require.NotNil(t, entry.PurchaseDate)
	assert.Equal(t, now, *entry.PurchaseDate)

	// Owned is terminal: a second transition must not overwrite the original purchase.
	err := entry.MarkOwned(now.Add(time.Hour), "FEDCBA9876543210")
	require.ErrorIs(t, err, ErrAlreadyOwnedEntry)
	assert.Equal(t, "ABCDEF0123456789", *entry.ActivationCode)
	assert.Equal(t, now, *entry.PurchaseDate)
}
