package handler

import (
	"errors"
	"net/http"

	"tastemap/internal/httputil"
	"tastemap/internal/model"
	"tastemap/internal/service"
	"tastemap/internal/transport/http/middleware"
)

// FollowHandler groups the follow toggle endpoints.
type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// AddFollowing follows a user and sends the browser back.
// POST /following/{userID}
func (h *FollowHandler) AddFollowing(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	followingID, err := parseIDParam(r, "userID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user id")
		return
	}

	if err := h.followService.Follow(r.Context(), followerID, followingID); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteConflict(w, "You are already following this user")
		default:
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	redirectBack(w, r)
}

// RemoveFollowing unfollows a user and sends the browser back.
// DELETE /following/{userID}
func (h *FollowHandler) RemoveFollowing(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	followingID, err := parseIDParam(r, "userID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user id")
		return
	}

	if err := h.followService.Unfollow(r.Context(), followerID, followingID); err != nil {
		if errors.Is(err, model.ErrNotFollowing) {
			httputil.WriteNotFound(w, "You aren't following this user")
			return
		}
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	redirectBack(w, r)
}
