package handler

import (
	"errors"
	"net/http"

	"tastemap/internal/httputil"
	"tastemap/internal/model"
	"tastemap/internal/service"
	"tastemap/internal/transport/http/middleware"
)

// FavoriteHandler groups the favorite toggle endpoints.
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavorite favorites a restaurant and sends the browser back.
// POST /favorite/{restaurantID}
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.favoriteService.Add(r.Context(), userID, restaurantID); err != nil {
		switch {
		case errors.Is(err, model.ErrRestaurantNotFound):
			httputil.WriteNotFound(w, "Restaurant not found")
		case errors.Is(err, model.ErrAlreadyFavorited):
			httputil.WriteConflict(w, "You have favorited this restaurant")
		default:
			httputil.WriteInternalError(w, "Failed to add favorite")
		}
		return
	}

	redirectBack(w, r)
}

// RemoveFavorite unfavorites a restaurant and sends the browser back.
// DELETE /favorite/{restaurantID}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.favoriteService.Remove(r.Context(), userID, restaurantID); err != nil {
		if errors.Is(err, model.ErrNotFavorited) {
			httputil.WriteNotFound(w, "You haven't favorited this restaurant")
			return
		}
		httputil.WriteInternalError(w, "Failed to remove favorite")
		return
	}

	redirectBack(w, r)
}
