package service

import (
	"context"
	"log"
	"strings"

	"tastemap/internal/model"
	"tastemap/internal/queue"
	"tastemap/internal/repository"
)

const (
	// DefaultPageSize limits restaurant listing pages
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// RestaurantService handles restaurant browsing and comments.
type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
	commentRepo    repository.CommentRepository
	publisher      queue.Publisher
}

func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	commentRepo repository.CommentRepository,
	publisher queue.Publisher,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		commentRepo:    commentRepo,
		publisher:      publisher,
	}
}

// List returns a page of restaurants.
func (s *RestaurantService) List(ctx context.Context, limit, offset int) ([]model.Restaurant, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.restaurantRepo.List(ctx, limit, offset)
}

// Get returns a restaurant's detail page context and records the view.
// The view count itself is updated by the worker, off the request path;
// a publish failure only logs, it never fails the page.
func (s *RestaurantService) Get(ctx context.Context, restaurantID, viewerID int64) (*model.RestaurantDetail, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	event := queue.NewRestaurantViewedEvent(restaurantID, viewerID)
	if _, err := s.publisher.Publish(ctx, queue.StreamViews, event); err != nil {
		log.Printf("[RestaurantService] Failed to publish view event: restaurant=%d err=%v", restaurantID, err)
	}

	return &model.RestaurantDetail{
		Restaurant: restaurant,
		Comments:   comments,
	}, nil
}

// AddComment posts a comment on a restaurant.
func (s *RestaurantService) AddComment(ctx context.Context, userID, restaurantID int64, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.ErrTextRequired
	}
	if len(text) > model.MaxCommentLength {
		return nil, model.ErrTextTooLong
	}

	exists, err := s.restaurantRepo.Exists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrRestaurantNotFound
	}

	comment := &model.Comment{
		UserID:       userID,
		RestaurantID: restaurantID,
		Text:         text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
