package service

import (
	"context"
	"errors"
	"testing"

	"tastemap/internal/model"
)

func TestLikeService_Add_RestaurantNotFound(t *testing.T) {
	svc := NewLikeService(&mockLikeRepository{}, &mockRestaurantRepository{})

	err := svc.Add(context.Background(), 1, 99)
	if !errors.Is(err, model.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got: %v", err)
	}
}

func TestLikeService_Add_Duplicate(t *testing.T) {
	likeRepo := &mockLikeRepository{
		createFn: func(ctx context.Context, userID, restaurantID int64) (bool, error) {
			return false, nil
		},
	}
	svc := NewLikeService(likeRepo, existingRestaurantRepo())

	err := svc.Add(context.Background(), 1, 10)
	if !errors.Is(err, model.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got: %v", err)
	}
}

func TestLikeService_Remove_NotLiked(t *testing.T) {
	likeRepo := &mockLikeRepository{
		deleteFn: func(ctx context.Context, userID, restaurantID int64) error {
			return model.ErrNotLiked
		},
	}
	svc := NewLikeService(likeRepo, existingRestaurantRepo())

	err := svc.Remove(context.Background(), 1, 10)
	if !errors.Is(err, model.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got: %v", err)
	}
}
