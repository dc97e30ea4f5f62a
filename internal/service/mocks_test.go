package service

import (
	"context"
	"mime/multipart"

	"tastemap/internal/model"
	"tastemap/internal/queue"
)

// Function-field mocks. Each test fills in only the behavior it needs; the
// zero value of every field is a safe default.

type mockUserRepository struct {
	createFn                 func(ctx context.Context, user *model.User) error
	getByIDFn                func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn             func(ctx context.Context, email string) (*model.User, error)
	existsByEmailFn          func(ctx context.Context, email string) (bool, error)
	updateProfileFn          func(ctx context.Context, id int64, name string, image *string) error
	listWithFollowerCountsFn func(ctx context.Context) ([]model.TopUser, error)

	createCalls        []*model.User
	updateProfileCalls []updateProfileCall
}

type updateProfileCall struct {
	ID    int64
	Name  string
	Image *string
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id int64, name string, image *string) error {
	m.updateProfileCalls = append(m.updateProfileCalls, updateProfileCall{ID: id, Name: name, Image: image})
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, name, image)
	}
	return nil
}

func (m *mockUserRepository) ListWithFollowerCounts(ctx context.Context) ([]model.TopUser, error) {
	if m.listWithFollowerCountsFn != nil {
		return m.listWithFollowerCountsFn(ctx)
	}
	return nil, nil
}

type mockCommentRepository struct {
	createFn           func(ctx context.Context, comment *model.Comment) error
	listByUserFn       func(ctx context.Context, userID int64) ([]model.Comment, error)
	listByRestaurantFn func(ctx context.Context, restaurantID int64) ([]model.Comment, error)

	createCalls []*model.Comment
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	m.createCalls = append(m.createCalls, comment)
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Comment, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Comment, error) {
	if m.listByRestaurantFn != nil {
		return m.listByRestaurantFn(ctx, restaurantID)
	}
	return nil, nil
}

type mockFavoriteRepository struct {
	createFn                func(ctx context.Context, userID, restaurantID int64) (bool, error)
	deleteFn                func(ctx context.Context, userID, restaurantID int64) error
	listRestaurantsByUserFn func(ctx context.Context, userID int64) ([]model.Restaurant, error)
}

func (m *mockFavoriteRepository) Create(ctx context.Context, userID, restaurantID int64) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, restaurantID)
	}
	return true, nil
}

func (m *mockFavoriteRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, restaurantID)
	}
	return nil
}

func (m *mockFavoriteRepository) ListRestaurantsByUser(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	if m.listRestaurantsByUserFn != nil {
		return m.listRestaurantsByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockLikeRepository struct {
	createFn func(ctx context.Context, userID, restaurantID int64) (bool, error)
	deleteFn func(ctx context.Context, userID, restaurantID int64) error
}

func (m *mockLikeRepository) Create(ctx context.Context, userID, restaurantID int64) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, restaurantID)
	}
	return true, nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, restaurantID)
	}
	return nil
}

type mockFollowshipRepository struct {
	createFn          func(ctx context.Context, followerID, followingID int64) (bool, error)
	deleteFn          func(ctx context.Context, followerID, followingID int64) error
	getFollowersFn    func(ctx context.Context, userID int64) ([]model.UserSummary, error)
	getFollowingsFn   func(ctx context.Context, userID int64) ([]model.UserSummary, error)
	getFollowingIDsFn func(ctx context.Context, userID int64) ([]int64, error)

	createCalls []followshipCall
	deleteCalls []followshipCall
}

type followshipCall struct {
	FollowerID  int64
	FollowingID int64
}

func (m *mockFollowshipRepository) Create(ctx context.Context, followerID, followingID int64) (bool, error) {
	m.createCalls = append(m.createCalls, followshipCall{followerID, followingID})
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followingID)
	}
	return true, nil
}

func (m *mockFollowshipRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	m.deleteCalls = append(m.deleteCalls, followshipCall{followerID, followingID})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followingID)
	}
	return nil
}

func (m *mockFollowshipRepository) GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	if m.getFollowersFn != nil {
		return m.getFollowersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowshipRepository) GetFollowings(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	if m.getFollowingsFn != nil {
		return m.getFollowingsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowshipRepository) GetFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.getFollowingIDsFn != nil {
		return m.getFollowingIDsFn(ctx, userID)
	}
	return nil, nil
}

type mockRestaurantRepository struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.Restaurant, error)
	existsFn        func(ctx context.Context, id int64) (bool, error)
	listFn          func(ctx context.Context, limit, offset int) ([]model.Restaurant, error)
	setViewCountsFn func(ctx context.Context, id, total int64) error
	getViewCountsFn func(ctx context.Context, id int64) (int64, error)
}

func (m *mockRestaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrRestaurantNotFound
}

func (m *mockRestaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockRestaurantRepository) List(ctx context.Context, limit, offset int) ([]model.Restaurant, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockRestaurantRepository) SetViewCounts(ctx context.Context, id, total int64) error {
	if m.setViewCountsFn != nil {
		return m.setViewCountsFn(ctx, id, total)
	}
	return nil
}

func (m *mockRestaurantRepository) GetViewCounts(ctx context.Context, id int64) (int64, error) {
	if m.getViewCountsFn != nil {
		return m.getViewCountsFn(ctx, id)
	}
	return 0, nil
}

type mockPublisher struct {
	publishFn func(ctx context.Context, stream string, event queue.ViewEvent) (string, error)

	published []queue.ViewEvent
}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.ViewEvent) (string, error) {
	m.published = append(m.published, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, stream, event)
	}
	return "1-0", nil
}

type mockUploader struct {
	uploadFn func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error)

	uploadCalls int
}

func (m *mockUploader) UploadProfileImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error) {
	m.uploadCalls++
	if m.uploadFn != nil {
		return m.uploadFn(ctx, file, header)
	}
	return &model.UploadResult{URL: "https://cdn.example.com/upload/test.jpg", Key: "upload/test.jpg"}, nil
}
