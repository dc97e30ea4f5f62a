package model

import (
	"errors"
	"time"
)

// Restaurant represents a listed restaurant.
// ViewCounts is maintained asynchronously by the view-count worker; request
// handlers never mutate it directly.
type Restaurant struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Tel          *string   `db:"tel" json:"tel"`
	Address      *string   `db:"address" json:"address"`
	OpeningHours *string   `db:"opening_hours" json:"opening_hours"`
	Description  *string   `db:"description" json:"description"`
	Image        *string   `db:"image" json:"image"`
	ViewCounts   int64     `db:"view_counts" json:"view_counts"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RestaurantDetail is the view context for a restaurant page.
type RestaurantDetail struct {
	Restaurant *Restaurant `json:"restaurant"`
	Comments   []Comment   `json:"comments"`
}

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)
