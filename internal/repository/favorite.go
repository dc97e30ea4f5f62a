package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tastemap/internal/model"
)

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create relies on the composite primary key instead of a separate existence
// check, so two concurrent adds cannot both insert. The loser sees
// inserted=false and the caller reports the duplicate.
func (r *favoriteRepository) Create(ctx context.Context, userID, restaurantID int64) (bool, error) {
	query := `
		INSERT INTO favorites (user_id, restaurant_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, restaurant_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, userID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("failed to create favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND restaurant_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotFavorited
	}

	return nil
}

func (r *favoriteRepository) ListRestaurantsByUser(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	query := `
		SELECT r.id, r.name, r.tel, r.address, r.opening_hours, r.description, r.image,
		       r.view_counts, r.created_at, r.updated_at
		FROM favorites f
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	var restaurants []model.Restaurant
	err := r.db.SelectContext(ctx, &restaurants, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorited restaurants: %w", err)
	}

	return restaurants, nil
}
