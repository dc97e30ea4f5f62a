package model

import (
	"errors"
	"time"
)

// Favorite is a join row marking a restaurant as favorited by a user.
// At most one row exists per (user, restaurant) pair; the table carries a
// composite primary key so duplicate inserts surface as conflicts.
type Favorite struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	RestaurantID int64     `db:"restaurant_id" json:"restaurant_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrAlreadyFavorited = errors.New("restaurant already favorited")
	ErrNotFavorited     = errors.New("restaurant not favorited")
)
