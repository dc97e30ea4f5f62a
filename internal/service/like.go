package service

import (
	"context"

	"tastemap/internal/model"
	"tastemap/internal/repository"
)

// LikeService handles a user's restaurant likes.
type LikeService struct {
	likeRepo       repository.LikeRepository
	restaurantRepo repository.RestaurantRepository
}

func NewLikeService(likeRepo repository.LikeRepository, restaurantRepo repository.RestaurantRepository) *LikeService {
	return &LikeService{
		likeRepo:       likeRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Add likes a restaurant for the user. The restaurant must exist and the
// pair must not already be liked.
func (s *LikeService) Add(ctx context.Context, userID, restaurantID int64) error {
	exists, err := s.restaurantRepo.Exists(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrRestaurantNotFound
	}

	inserted, err := s.likeRepo.Create(ctx, userID, restaurantID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyLiked
	}
	return nil
}

// Remove unlikes a restaurant. Removing an absent like is an error.
func (s *LikeService) Remove(ctx context.Context, userID, restaurantID int64) error {
	return s.likeRepo.Delete(ctx, userID, restaurantID)
}
