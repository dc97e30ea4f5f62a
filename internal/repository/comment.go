package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tastemap/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (user_id, restaurant_id, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, c.UserID, c.RestaurantID, c.Text)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// ListByUser returns a user's comments oldest first with the restaurant
// joined in. Profile aggregation dedupes restaurants in this order, so the
// ordering here defines "first-occurrence order".
func (r *commentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.user_id, c.restaurant_id, c.text, c.created_at,
		       r.id AS "restaurant.id", r.name AS "restaurant.name",
		       r.image AS "restaurant.image", r.view_counts AS "restaurant.view_counts",
		       r.created_at AS "restaurant.created_at", r.updated_at AS "restaurant.updated_at"
		FROM comments c
		JOIN restaurants r ON r.id = c.restaurant_id
		WHERE c.user_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by user: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		c.Restaurant = &model.Restaurant{}
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.user_id, c.restaurant_id, c.text, c.created_at,
		       u.id AS "author.id", u.name AS "author.name", u.image AS "author.image"
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.restaurant_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by restaurant: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		c.Author = &model.UserSummary{}
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return comments, nil
}
