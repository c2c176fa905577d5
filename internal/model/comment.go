package model

import "time"

// Comment belongs to exactly one story. Immutable except for deletion.
type Comment struct {
	ID        string    `json:"id"`
	StoryID   string    `json:"story_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
