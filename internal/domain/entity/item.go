// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Item, Summary, and Source, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Item represents a news entry ingested from a feed source.
// Link is the dedup key: at most one stored Item exists per distinct Link.
type Item struct {
	ID          int64     `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Content     *string   `json:"content,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Clone returns a deep copy of the item so stored state cannot be mutated through it.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	if i.Content != nil {
		content := *i.Content
		c.Content = &content
	}
	return &c
}

// Validate checks that the item can be stored.
func (i *Item) Validate() error {
	if i.Link == "" {
		return &ValidationError{Field: "link", Message: "is required"}
	}
	return nil
}
