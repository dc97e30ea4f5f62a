package service

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"tastemap/internal/model"
	"tastemap/internal/repository"
)

// UserService handles registration, sign-in, profiles, and the leaderboard.
type UserService struct {
	userRepo       repository.UserRepository
	commentRepo    repository.CommentRepository
	favoriteRepo   repository.FavoriteRepository
	followshipRepo repository.FollowshipRepository
	uploader       ImageUploader
}

func NewUserService(
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	favoriteRepo repository.FavoriteRepository,
	followshipRepo repository.FollowshipRepository,
	uploader ImageUploader,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		commentRepo:    commentRepo,
		favoriteRepo:   favoriteRepo,
		followshipRepo: followshipRepo,
		uploader:       uploader,
	}
}

// Register creates a new account. The password confirmation must match and
// the email must be unused.
func (s *UserService) Register(ctx context.Context, req model.SignUpRequest) (*model.User, error) {
	if req.Password != req.PasswordCheck {
		return nil, model.ErrPasswordMismatch
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHashed: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies email/password and returns the matching user.
// Both an unknown email and a wrong password map to ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, req model.SignInRequest) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile assembles the profile page context for targetID as seen by
// viewerID. Follow state is read fresh, never from a cached session.
func (s *UserService) GetProfile(ctx context.Context, targetID, viewerID int64) (*model.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	favorited, err := s.favoriteRepo.ListRestaurantsByUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followshipRepo.GetFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}

	followings, err := s.followshipRepo.GetFollowings(ctx, targetID)
	if err != nil {
		return nil, err
	}

	viewerFollowingIDs, err := s.followshipRepo.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		User:                 user,
		Comments:             comments,
		CommentedRestaurants: dedupeCommentedRestaurants(comments),
		FavoritedRestaurants: favorited,
		Followers:            followers,
		Followings:           followings,
		Owner:                viewerID == targetID,
		IsFollowed:           containsID(viewerFollowingIDs, targetID),
	}, nil
}

// dedupeCommentedRestaurants collapses a user's comments to the distinct
// restaurants commented on, keeping each restaurant at the position of its
// first comment.
func dedupeCommentedRestaurants(comments []model.Comment) []model.Restaurant {
	seen := make(map[int64]bool, len(comments))
	restaurants := make([]model.Restaurant, 0, len(comments))
	for _, c := range comments {
		if c.Restaurant == nil || seen[c.RestaurantID] {
			continue
		}
		seen[c.RestaurantID] = true
		restaurants = append(restaurants, *c.Restaurant)
	}
	return restaurants
}

// UpdateProfile changes the target user's name and, when a file is supplied,
// their profile image. Only the profile owner may edit; anyone else gets
// ErrNotProfileOwner without any write happening.
//
// The target reload and the image upload run concurrently.
func (s *UserService) UpdateProfile(ctx context.Context, actingID, targetID int64, name string, file multipart.File, header *multipart.FileHeader) (*model.User, error) {
	if actingID != targetID {
		return nil, model.ErrNotProfileOwner
	}

	var (
		user   *model.User
		upload *model.UploadResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userRepo.GetByID(gctx, targetID)
		return err
	})
	if file != nil {
		g.Go(func() error {
			var err error
			upload, err = s.uploader.UploadProfileImage(gctx, file, header)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var image *string
	if upload != nil {
		image = &upload.URL
	}

	if err := s.userRepo.UpdateProfile(ctx, targetID, name, image); err != nil {
		return nil, err
	}

	user.Name = name
	if image != nil {
		user.Image = image
	}
	return user, nil
}

// TopUsers returns every user ranked by follower count, most followed first.
// Ties keep their relative retrieval order.
//
// Owner carries the leaderboard's inverted polarity: true when the listed
// user is someone other than the viewer. See model.TopUser.
func (s *UserService) TopUsers(ctx context.Context, viewerID int64) ([]model.TopUser, error) {
	users, err := s.userRepo.ListWithFollowerCounts(ctx)
	if err != nil {
		return nil, err
	}

	followingIDs, err := s.followshipRepo.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	following := make(map[int64]bool, len(followingIDs))
	for _, id := range followingIDs {
		following[id] = true
	}

	for i := range users {
		users[i].IsFollowed = following[users[i].ID]
		users[i].Owner = users[i].ID != viewerID
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].FollowerCount > users[j].FollowerCount
	})

	return users, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
