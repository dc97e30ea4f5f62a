package repository

import (
	"context"
	"time"

	"tastemap/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateProfile sets name unconditionally and image only when non-nil.
	UpdateProfile(ctx context.Context, id int64, name string, image *string) error
	// ListWithFollowerCounts returns every user with their follower count,
	// in primary-key order. Callers sort; this is the stable source order.
	ListWithFollowerCounts(ctx context.Context) ([]model.TopUser, error)
}

type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]model.Restaurant, error)
	// SetViewCounts overwrites the counter; only the view-count worker calls it.
	SetViewCounts(ctx context.Context, id, total int64) error
	GetViewCounts(ctx context.Context, id int64) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListByUser returns the user's comments oldest first, each with its
	// restaurant joined in.
	ListByUser(ctx context.Context, userID int64) ([]model.Comment, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Comment, error)
}

type FavoriteRepository interface {
	// Create inserts the join row; returns false when it already existed.
	Create(ctx context.Context, userID, restaurantID int64) (bool, error)
	// Delete removes the join row; model.ErrNotFavorited when absent.
	Delete(ctx context.Context, userID, restaurantID int64) error
	ListRestaurantsByUser(ctx context.Context, userID int64) ([]model.Restaurant, error)
}

type LikeRepository interface {
	Create(ctx context.Context, userID, restaurantID int64) (bool, error)
	Delete(ctx context.Context, userID, restaurantID int64) error
}

type FollowshipRepository interface {
	Create(ctx context.Context, followerID, followingID int64) (bool, error)
	Delete(ctx context.Context, followerID, followingID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error)
	GetFollowings(ctx context.Context, userID int64) ([]model.UserSummary, error)
	// GetFollowingIDs is queried per request wherever an isFollowed flag is
	// computed, so follow state is never stale.
	GetFollowingIDs(ctx context.Context, userID int64) ([]int64, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string, replacedBy *string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}
