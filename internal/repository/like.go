package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tastemap/internal/model"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create mirrors the favorite repository: the composite primary key is the
// duplicate guard, ON CONFLICT DO NOTHING turns the race into inserted=false.
func (r *likeRepository) Create(ctx context.Context, userID, restaurantID int64) (bool, error) {
	query := `
		INSERT INTO likes (user_id, restaurant_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, restaurant_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, userID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND restaurant_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotLiked
	}

	return nil
}
