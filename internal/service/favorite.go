package service

import (
	"context"

	"tastemap/internal/model"
	"tastemap/internal/repository"
)

// FavoriteService handles a user's restaurant favorites.
type FavoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, restaurantRepo repository.RestaurantRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Add favorites a restaurant for the user. The restaurant must exist and the
// pair must not already be favorited.
func (s *FavoriteService) Add(ctx context.Context, userID, restaurantID int64) error {
	exists, err := s.restaurantRepo.Exists(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrRestaurantNotFound
	}

	inserted, err := s.favoriteRepo.Create(ctx, userID, restaurantID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyFavorited
	}
	return nil
}

// Remove unfavorites a restaurant. Removing an absent favorite is an error.
func (s *FavoriteService) Remove(ctx context.Context, userID, restaurantID int64) error {
	return s.favoriteRepo.Delete(ctx, userID, restaurantID)
}
