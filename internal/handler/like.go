package handler

import (
	"errors"
	"net/http"

	"tastemap/internal/httputil"
	"tastemap/internal/model"
	"tastemap/internal/service"
	"tastemap/internal/transport/http/middleware"
)

// LikeHandler groups the like toggle endpoints.
type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// AddLike likes a restaurant and sends the browser back.
// POST /like/{restaurantID}
func (h *LikeHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	restaurantID, err := parseIDParam(r, "restaurantID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid restaurant id")
		return
	}

	if err := h.likeService.Add(r.Context(), userID, restaurantID); err != nil {
		switch {
		case errors.Is(err, model.ErrRestaurantNotFound):
			httputil.WriteNotFound(w, "Restaurant not found")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, "You have liked this restaurant")
		default:
			httputil.WriteInternalError(w, "Failed to add like")
		}
		return
	}

	redirectBack(w, r)
}

// RemoveLike unlikes a restaurant and sends the browser back.
// DELETE /like/{restaurantID}
func (h *LikeHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	restaurantID, err := parseIDParam(r, "restaurantID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid restaurant id")
		return
	}

	if err := h.likeService.Remove(r.Context(), userID, restaurantID); err != nil {
		if errors.Is(err, model.ErrNotLiked) {
			httputil.WriteNotFound(w, "You haven't liked this restaurant")
			return
		}
		httputil.WriteInternalError(w, "Failed to remove like")
		return
	}

	redirectBack(w, r)
}
