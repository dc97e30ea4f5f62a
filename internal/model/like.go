package model

import (
	"errors"
	"time"
)

// Like is a join row marking a restaurant as liked by a user. Same uniqueness
// contract as Favorite.
type Like struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	RestaurantID int64     `db:"restaurant_id" json:"restaurant_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrAlreadyLiked = errors.New("restaurant already liked")
	ErrNotLiked     = errors.New("restaurant not liked")
)
