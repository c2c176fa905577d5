package model

import "time"

// Story is an ephemeral photo post. It stays visible until the hourly sweep
// flips IsVisible after ExpiredAt has passed; once archived it never becomes
// visible again.
//
// CommentIDs is a weak ownership list mirroring comments.story_id. Both sides
// are kept consistent by the story service, not by the database.
type Story struct {
	ID          string    `json:"id"`
	PhotoURL    string    `json:"photo_url"`
	StoragePath string    `json:"-"`
	Caption     *string   `json:"caption"`
	Location    *string   `json:"location"`
	IsVisible   bool      `json:"is_visible"`
	ExpiredAt   time.Time `json:"expired_at"`
	CommentIDs  []string  `json:"-"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
