package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CategoryCreatedEvent is emitted when a new category is created.
type CategoryCreatedEvent struct {
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryCreatedV1 is the typed event definition for category creation.
// Subject: events.category.v1.category-created
var CategoryCreatedV1 = helper.EventDefinition[CategoryCreatedEvent](
	"category", "CategoryCreated", "v1",
)

// CategoryDeletedEvent is emitted when a category is deleted. The task
// module consumes it to clear references to the removed category.
type CategoryDeletedEvent struct {
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	DeletedAt  time.Time `json:"deleted_at"`
}

// CategoryDeletedV1 is the typed event definition for category deletion.
// Subject: events.category.v1.category-deleted
var CategoryDeletedV1 = helper.EventDefinition[CategoryDeletedEvent](
	"category", "CategoryDeleted", "v1",
)
