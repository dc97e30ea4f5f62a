package worker

import (
	"context"
	"fmt"
	"log"

	"tastemap/internal/cache"
	"tastemap/internal/queue"
)

// ViewCountStore is the slice of the restaurant repository the worker needs.
// Keeps the worker off the full repository surface and makes tests trivial.
type ViewCountStore interface {
	// GetViewCounts returns the persisted total, used to seed a cold counter.
	GetViewCounts(ctx context.Context, restaurantID int64) (int64, error)
	// SetViewCounts writes the running total back to the database.
	SetViewCounts(ctx context.Context, restaurantID, total int64) error
}

// Handler folds view events into the Redis counter and the database column.
type Handler struct {
	viewCache cache.ViewCache
	store     ViewCountStore
}

// NewHandler creates a new event handler.
func NewHandler(viewCache cache.ViewCache, store ViewCountStore) *Handler {
	return &Handler{
		viewCache: viewCache,
		store:     store,
	}
}

// HandleEvent routes an event to the appropriate handler based on type.
func (h *Handler) HandleEvent(ctx context.Context, event queue.ViewEvent) error {
	switch event.Type {
	case queue.EventRestaurantViewed:
		return h.handleRestaurantViewed(ctx, event)
	default:
		log.Printf("[Worker] Unknown event type: %s", event.Type)
		return fmt.Errorf("unknown event type: %s", event.Type)
	}
}

// handleRestaurantViewed bumps the cached counter and writes the total back.
// The counter is seeded from the database on first touch so restarts and TTL
// expiry never lose the historical count.
func (h *Handler) handleRestaurantViewed(ctx context.Context, event queue.ViewEvent) error {
	seeded, err := h.viewCache.Seeded(ctx, event.RestaurantID)
	if err != nil {
		return fmt.Errorf("check counter: %w", err)
	}

	if !seeded {
		total, err := h.store.GetViewCounts(ctx, event.RestaurantID)
		if err != nil {
			return fmt.Errorf("load persisted total: %w", err)
		}
		if err := h.viewCache.Seed(ctx, event.RestaurantID, total); err != nil {
			return err
		}
	}

	total, err := h.viewCache.Increment(ctx, event.RestaurantID)
	if err != nil {
		return err
	}

	if err := h.store.SetViewCounts(ctx, event.RestaurantID, total); err != nil {
		return fmt.Errorf("persist total: %w", err)
	}

	log.Printf("[Worker] RestaurantViewed: restaurant=%d total=%d", event.RestaurantID, total)
	return nil
}
