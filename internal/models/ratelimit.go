package models

import "time"

// RateLimitEntry is a fixed-window counter for one client identity. The whole
// entry is replaced (count back to 1, fresh window) once the window expires.
type RateLimitEntry struct {
	Identity      string    `gorm:"type:text;primary_key" json:"identity"`
	Count         int       `gorm:"not null" json:"count"`
	WindowResetAt time.Time `gorm:"type:timestamp;not null" json:"window_reset_at"`
}

func (RateLimitEntry) TableName() string {
	return "rate_limit_entries"
}
