package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tastemap/internal/model"
	"tastemap/internal/queue"
)

func TestRestaurantService_Get_PublishesViewEvent(t *testing.T) {
	restaurantRepo := &mockRestaurantRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Restaurant, error) {
			return &model.Restaurant{ID: id, Name: "Noodle House", ViewCounts: 41}, nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewRestaurantService(restaurantRepo, &mockCommentRepository{}, publisher)

	detail, err := svc.Get(context.Background(), 10, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if detail.Restaurant.ID != 10 {
		t.Errorf("restaurant ID = %d, want 10", detail.Restaurant.ID)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.published))
	}
	event := publisher.published[0]
	if event.Type != queue.EventRestaurantViewed {
		t.Errorf("event type = %q, want %q", event.Type, queue.EventRestaurantViewed)
	}
	if event.RestaurantID != 10 || event.ViewerID != 7 {
		t.Errorf("event = (restaurant=%d viewer=%d), want (10, 7)", event.RestaurantID, event.ViewerID)
	}
}

func TestRestaurantService_Get_PublishFailureDoesNotFailPage(t *testing.T) {
	restaurantRepo := &mockRestaurantRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Restaurant, error) {
			return &model.Restaurant{ID: id}, nil
		},
	}
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, stream string, event queue.ViewEvent) (string, error) {
			return "", errors.New("redis down")
		},
	}
	svc := NewRestaurantService(restaurantRepo, &mockCommentRepository{}, publisher)

	if _, err := svc.Get(context.Background(), 10, 7); err != nil {
		t.Fatalf("page should load despite publish failure, got: %v", err)
	}
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	publisher := &mockPublisher{}
	svc := NewRestaurantService(&mockRestaurantRepository{}, &mockCommentRepository{}, publisher)

	_, err := svc.Get(context.Background(), 99, 7)
	if !errors.Is(err, model.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Error("no view event should be published for a missing restaurant")
	}
}

func TestRestaurantService_AddComment(t *testing.T) {
	commentRepo := &mockCommentRepository{
		createFn: func(ctx context.Context, comment *model.Comment) error {
			comment.ID = 1
			return nil
		},
	}
	svc := NewRestaurantService(existingRestaurantRepo(), commentRepo, &mockPublisher{})

	comment, err := svc.AddComment(context.Background(), 7, 10, "  great noodles  ")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if comment.Text != "great noodles" {
		t.Errorf("text = %q, want trimmed %q", comment.Text, "great noodles")
	}
	if comment.UserID != 7 || comment.RestaurantID != 10 {
		t.Errorf("comment = (user=%d restaurant=%d), want (7, 10)", comment.UserID, comment.RestaurantID)
	}
}

func TestRestaurantService_AddComment_Validation(t *testing.T) {
	svc := NewRestaurantService(existingRestaurantRepo(), &mockCommentRepository{}, &mockPublisher{})
	ctx := context.Background()

	if _, err := svc.AddComment(ctx, 7, 10, "   "); !errors.Is(err, model.ErrTextRequired) {
		t.Errorf("blank text: expected ErrTextRequired, got: %v", err)
	}

	long := strings.Repeat("a", model.MaxCommentLength+1)
	if _, err := svc.AddComment(ctx, 7, 10, long); !errors.Is(err, model.ErrTextTooLong) {
		t.Errorf("long text: expected ErrTextTooLong, got: %v", err)
	}
}

func TestRestaurantService_List_ClampsPaging(t *testing.T) {
	var gotLimit, gotOffset int
	restaurantRepo := &mockRestaurantRepository{
		listFn: func(ctx context.Context, limit, offset int) ([]model.Restaurant, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := NewRestaurantService(restaurantRepo, &mockCommentRepository{}, &mockPublisher{})

	if _, err := svc.List(context.Background(), 0, -5); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotLimit != DefaultPageSize || gotOffset != 0 {
		t.Errorf("limit/offset = %d/%d, want %d/0", gotLimit, gotOffset, DefaultPageSize)
	}

	if _, err := svc.List(context.Background(), 1000, 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotLimit != MaxPageSize {
		t.Errorf("limit = %d, want clamp to %d", gotLimit, MaxPageSize)
	}
}
