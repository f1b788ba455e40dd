// Package entity provides the identity and timestamp fields shared by all
// stored domain entities.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and audit timestamps of an entity.
// ID is immutable once assigned; UpdatedAt never goes below CreatedAt.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase returns a Base with a fresh UUID and both timestamps set to now.
func NewBase() Base {
	now := time.Now()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewBaseWithID returns a Base for a caller-chosen ID.
func NewBaseWithID(id string) Base {
	b := NewBase()
	b.ID = id
	return b
}

// GetID returns the entity identifier.
func (b Base) GetID() string {
	return b.ID
}

// Touch bumps UpdatedAt. The new value is always strictly after the old one,
// even when the clock has not advanced between two calls.
func (b *Base) Touch() {
	now := time.Now()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Nanosecond)
	}
	b.UpdatedAt = now
}
