package services

import (
	"log"
	"sync"
	"time"

	"parshjain/portfolio-assistant/internal/config"
	"parshjain/portfolio-assistant/internal/models"
	"parshjain/portfolio-assistant/internal/repositories"
)

// RateLimiterService gates access to the model path with a fixed-window
// counter per client identity. A client that exhausts its window regains the
// full quota the moment the window expires; that coarseness is intentional.
type RateLimiterService interface {
	Allow(identity string) bool
}

type rateLimiterService struct {
	store       repositories.RateLimitStore
	maxRequests int
	window      time.Duration
	mu          sync.Mutex
	now         func() time.Time
}

func NewRateLimiterService(store repositories.RateLimitStore, cfg config.RateLimitConfig) RateLimiterService {
	return &rateLimiterService{
		store:       store,
		maxRequests: cfg.MaxRequests,
		window:      cfg.Window,
		now:         time.Now,
	}
}

// Allow implements RateLimiterService. The throttle is best-effort: a store
// failure lets the request through rather than blocking the endpoint.
func (r *rateLimiterService) Allow(identity string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	entry, err := r.store.Find(identity)
	if err != nil {
		log.Printf("⚠️  Rate limit store lookup failed for %s: %v\n", identity, err)
		return true
	}

	if entry == nil || now.After(entry.WindowResetAt) {
		fresh := &models.RateLimitEntry{
			Identity:      identity,
			Count:         1,
			WindowResetAt: now.Add(r.window),
		}
		if err := r.store.Save(fresh); err != nil {
			log.Printf("⚠️  Rate limit store save failed for %s: %v\n", identity, err)
		}
		return true
	}

	if entry.Count >= r.maxRequests {
		return false
	}

	entry.Count++
	if err := r.store.Save(entry); err != nil {
		log.Printf("⚠️  Rate limit store save failed for %s: %v\n", identity, err)
	}

	return true
}
