package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tastemap/internal/model"
)

type restaurantRepository struct {
	db *sqlx.DB
}

func NewRestaurantRepository(db *sqlx.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	query := `
		SELECT id, name, tel, address, opening_hours, description, image, view_counts, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var rest model.Restaurant
	err := r.db.GetContext(ctx, &rest, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant by id: %w", err)
	}

	return &rest, nil
}

func (r *restaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to check restaurant existence: %w", err)
	}

	return exists, nil
}

func (r *restaurantRepository) List(ctx context.Context, limit, offset int) ([]model.Restaurant, error) {
	query := `
		SELECT id, name, tel, address, opening_hours, description, image, view_counts, created_at, updated_at
		FROM restaurants
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	var restaurants []model.Restaurant
	err := r.db.SelectContext(ctx, &restaurants, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, nil
}

// SetViewCounts persists the authoritative counter held in the view cache.
func (r *restaurantRepository) SetViewCounts(ctx context.Context, id, total int64) error {
	query := `UPDATE restaurants SET view_counts = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, total)
	if err != nil {
		return fmt.Errorf("failed to set view counts: %w", err)
	}
	return nil
}

func (r *restaurantRepository) GetViewCounts(ctx context.Context, id int64) (int64, error) {
	query := `SELECT view_counts FROM restaurants WHERE id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, model.ErrRestaurantNotFound
		}
		return 0, fmt.Errorf("failed to get view counts: %w", err)
	}
	return count, nil
}
