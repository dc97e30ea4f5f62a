package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types for the views stream
const (
	EventRestaurantViewed = "restaurant_viewed"
)

// Stream names
const (
	StreamViews = "stream:views"
)

// Consumer group name for view-count workers
const (
	ConsumerGroupViews = "view_workers"
)

// ViewEvent is published once per restaurant page view. The worker folds
// these into the Redis counter and the restaurants.view_counts column, which
// keeps counter writes off the request path.
type ViewEvent struct {
	Type         string `json:"type"`
	Timestamp    int64  `json:"timestamp"` // Unix timestamp when event occurred
	RestaurantID int64  `json:"restaurant_id"`
	ViewerID     int64  `json:"viewer_id,omitempty"`
}

// NewRestaurantViewedEvent creates an event for a single restaurant page view.
func NewRestaurantViewedEvent(restaurantID, viewerID int64) ViewEvent {
	return ViewEvent{
		Type:         EventRestaurantViewed,
		Timestamp:    time.Now().Unix(),
		RestaurantID: restaurantID,
		ViewerID:     viewerID,
	}
}

// ToMap converts the event to a map for Redis XADD.
// Redis Streams store field-value pairs, so we serialize to JSON in a "data" field.
func (e ViewEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseViewEvent parses a ViewEvent from Redis stream message values.
func ParseViewEvent(values map[string]interface{}) (ViewEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return ViewEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event ViewEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return ViewEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}
