package models

import "time"

// Destination is a user-owned travel bookmark.
type Destination struct {
	// ID is generated at creation and never changes.
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	// UserID is the owning User.Email.
	UserID string `json:"userId"`

	// CreatedAt is the creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Created returns CreatedAt as a time.Time in UTC.
func (d Destination) Created() time.Time {
	return time.UnixMilli(d.CreatedAt).UTC()
}

// DestinationPatch carries the fields an update may change. Nil means "leave
// as is". ID and UserID are intentionally absent.
type DestinationPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p DestinationPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil
}

// Apply returns d with the supplied fields replaced.
func (p DestinationPatch) Apply(d Destination) Destination {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}
	return d
}
