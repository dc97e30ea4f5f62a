package model

import (
	"errors"
	"time"
)

// Comment links a user to a restaurant. A user may comment on the same
// restaurant any number of times.
type Comment struct {
	ID           int64        `db:"id" json:"id"`
	UserID       int64        `db:"user_id" json:"-"`
	RestaurantID int64        `db:"restaurant_id" json:"restaurant_id"`
	Text         string       `db:"text" json:"text"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	Restaurant   *Restaurant  `json:"restaurant,omitempty"` // Joined field
	Author       *UserSummary `json:"author,omitempty"`     // Joined field
}

// Comment constraints
const (
	MaxCommentLength = 2200
)

var (
	ErrTextRequired = errors.New("comment text is required")
	ErrTextTooLong  = errors.New("comment text too long")
)
