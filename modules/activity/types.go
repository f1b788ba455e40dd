package activity

import "context"

// ListActivityRequest asks for the most recent entries; Limit <= 0 means all.
type ListActivityRequest struct {
	Limit int `json:"limit,omitempty"`
}

// ListActivityResponse lists entries newest first.
type ListActivityResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// ActivityPort reads the activity log.
type ActivityPort interface {
	ListActivity(ctx context.Context, limit int) (*ListActivityResponse, error)
}
