package service

import (
	"context"
	"errors"
	"testing"

	"tastemap/internal/model"
)

func existingUserRepo() *mockUserRepository {
	return &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}
}

func TestFollowService_Follow_Success(t *testing.T) {
	followshipRepo := &mockFollowshipRepository{}
	svc := NewFollowService(followshipRepo, existingUserRepo())

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(followshipRepo.createCalls) != 1 {
		t.Fatalf("Create called %d times, want 1", len(followshipRepo.createCalls))
	}
	call := followshipRepo.createCalls[0]
	if call.FollowerID != 1 || call.FollowingID != 2 {
		t.Errorf("created (%d -> %d), want (1 -> 2)", call.FollowerID, call.FollowingID)
	}
}

func TestFollowService_Follow_TargetNotFound(t *testing.T) {
	followshipRepo := &mockFollowshipRepository{}
	svc := NewFollowService(followshipRepo, &mockUserRepository{})

	err := svc.Follow(context.Background(), 1, 99)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
	if len(followshipRepo.createCalls) != 0 {
		t.Error("Create should not be called for a missing target")
	}
}

func TestFollowService_Follow_AlreadyFollowing(t *testing.T) {
	followshipRepo := &mockFollowshipRepository{
		createFn: func(ctx context.Context, followerID, followingID int64) (bool, error) {
			return false, nil // row already existed
		},
	}
	svc := NewFollowService(followshipRepo, existingUserRepo())

	err := svc.Follow(context.Background(), 1, 2)
	if !errors.Is(err, model.ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got: %v", err)
	}
}

func TestFollowService_Follow_SelfIsAllowed(t *testing.T) {
	followshipRepo := &mockFollowshipRepository{}
	svc := NewFollowService(followshipRepo, existingUserRepo())

	if err := svc.Follow(context.Background(), 1, 1); err != nil {
		t.Fatalf("following yourself should succeed, got: %v", err)
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	followshipRepo := &mockFollowshipRepository{}
	svc := NewFollowService(followshipRepo, existingUserRepo())

	if err := svc.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(followshipRepo.deleteCalls) != 1 {
		t.Errorf("Delete called %d times, want 1", len(followshipRepo.deleteCalls))
	}
}

func TestFollowService_Unfollow_NotFollowing(t *testing.T) {
	followshipRepo := &mockFollowshipRepository{
		deleteFn: func(ctx context.Context, followerID, followingID int64) error {
			return model.ErrNotFollowing
		},
	}
	svc := NewFollowService(followshipRepo, existingUserRepo())

	err := svc.Unfollow(context.Background(), 1, 2)
	if !errors.Is(err, model.ErrNotFollowing) {
		t.Fatalf("expected ErrNotFollowing, got: %v", err)
	}
}

// The relationship is directional: unfollowing in one direction must not
// touch the reverse edge, and refollowing after an unfollow succeeds.
func TestFollowService_FollowUnfollowRefollow(t *testing.T) {
	edges := map[followshipCall]bool{}
	followshipRepo := &mockFollowshipRepository{
		createFn: func(ctx context.Context, followerID, followingID int64) (bool, error) {
			key := followshipCall{followerID, followingID}
			if edges[key] {
				return false, nil
			}
			edges[key] = true
			return true, nil
		},
		deleteFn: func(ctx context.Context, followerID, followingID int64) error {
			key := followshipCall{followerID, followingID}
			if !edges[key] {
				return model.ErrNotFollowing
			}
			delete(edges, key)
			return nil
		},
	}
	svc := NewFollowService(followshipRepo, existingUserRepo())
	ctx := context.Background()

	if err := svc.Follow(ctx, 1, 2); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Follow(ctx, 2, 1); err != nil {
		t.Fatalf("reverse follow: %v", err)
	}
	if err := svc.Unfollow(ctx, 1, 2); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if !edges[followshipCall{2, 1}] {
		t.Error("reverse edge should survive the unfollow")
	}
	if err := svc.Follow(ctx, 1, 2); err != nil {
		t.Fatalf("refollow: %v", err)
	}
}
