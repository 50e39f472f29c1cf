package repositories

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"parshjain/portfolio-assistant/internal/models"
)

// RateLimitStore holds fixed-window counters keyed by client identity.
// The default store is process-local memory; a Postgres-backed store can be
// swapped in so multiple instances share one view of the counters.
type RateLimitStore interface {
	// Find returns the entry for an identity, or nil when none exists.
	Find(identity string) (*models.RateLimitEntry, error)
	// Save inserts or replaces the entry for entry.Identity.
	Save(entry *models.RateLimitEntry) error
}

type memoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]models.RateLimitEntry
}

func NewMemoryRateLimitStore() RateLimitStore {
	return &memoryRateLimitStore{
		entries: make(map[string]models.RateLimitEntry),
	}
}

// Find implements RateLimitStore.
func (m *memoryRateLimitStore) Find(identity string) (*models.RateLimitEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[identity]
	if !ok {
		return nil, nil
	}

	// Return a copy so callers cannot mutate the stored entry in place.
	return &entry, nil
}

// Save implements RateLimitStore.
func (m *memoryRateLimitStore) Save(entry *models.RateLimitEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[entry.Identity] = *entry
	return nil
}

type gormRateLimitStore struct {
	db *gorm.DB
}

func NewGormRateLimitStore(db *gorm.DB) RateLimitStore {
	return &gormRateLimitStore{db: db}
}

// Find implements RateLimitStore.
func (g *gormRateLimitStore) Find(identity string) (*models.RateLimitEntry, error) {
	var entry models.RateLimitEntry
	if err := g.db.Where("identity = ?", identity).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to find rate limit entry: %w", err)
	}

	return &entry, nil
}

// Save implements RateLimitStore.
func (g *gormRateLimitStore) Save(entry *models.RateLimitEntry) error {
	if err := g.db.Save(entry).Error; err != nil {
		return fmt.Errorf("failed to save rate limit entry: %w", err)
	}

	return nil
}
