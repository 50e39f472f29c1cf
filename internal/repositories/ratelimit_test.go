package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parshjain/portfolio-assistant/internal/models"
)

func TestMemoryStoreFindMissing(t *testing.T) {
	store := NewMemoryRateLimitStore()

	entry, err := store.Find("1.2.3.4")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestMemoryStoreSaveAndFind(t *testing.T) {
	store := NewMemoryRateLimitStore()
	reset := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(&models.RateLimitEntry{
		Identity:      "1.2.3.4",
		Count:         7,
		WindowResetAt: reset,
	}))

	entry, err := store.Find("1.2.3.4")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 7, entry.Count)
	assert.True(t, entry.WindowResetAt.Equal(reset))
}

func TestMemoryStoreFindReturnsCopy(t *testing.T) {
	store := NewMemoryRateLimitStore()

	require.NoError(t, store.Save(&models.RateLimitEntry{Identity: "1.2.3.4", Count: 1}))

	entry, err := store.Find("1.2.3.4")
	require.NoError(t, err)
	entry.Count = 99

	again, err := store.Find("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Count, "mutating a returned entry must not touch the store")
}

func TestMemoryStoreReplace(t *testing.T) {
	store := NewMemoryRateLimitStore()

	require.NoError(t, store.Save(&models.RateLimitEntry{Identity: "1.2.3.4", Count: 20}))
	require.NoError(t, store.Save(&models.RateLimitEntry{Identity: "1.2.3.4", Count: 1}))

	entry, err := store.Find("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Count)
}
