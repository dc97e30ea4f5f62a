package service

import (
	"context"

	"tastemap/internal/model"
	"tastemap/internal/repository"
)

// FollowService handles follow relationships between users.
type FollowService struct {
	followshipRepo repository.FollowshipRepository
	userRepo       repository.UserRepository
}

func NewFollowService(followshipRepo repository.FollowshipRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followshipRepo: followshipRepo,
		userRepo:       userRepo,
	}
}

// Follow makes followerID follow followingID. The target must exist and the
// pair must not already exist. A user following themselves is accepted.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}

	inserted, err := s.followshipRepo.Create(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyFollowing
	}
	return nil
}

// Unfollow removes the relationship. Removing an absent one is an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	return s.followshipRepo.Delete(ctx, followerID, followingID)
}
