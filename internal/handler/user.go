package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"tastemap/internal/flash"
	"tastemap/internal/httputil"
	"tastemap/internal/model"
	"tastemap/internal/service"
	"tastemap/internal/transport/http/middleware"
)

// UserHandler groups profile and leaderboard endpoints.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser returns the profile page context for a user.
// GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	targetID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user id")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), targetID, viewerID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to load profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewContext(w, r, "profile", profile))
}

// EditUser returns the edit-form context for a user.
// GET /users/{id}/edit
func (h *UserHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), targetID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to load user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewContext(w, r, "user", user))
}

// PutUser updates a user's name and, optionally, profile image.
// Editing someone else's profile flashes an error and bounces back to the
// acting user's own profile instead of writing anything.
// PUT /users/{id}
func (h *UserHandler) PutUser(w http.ResponseWriter, r *http.Request) {
	actingID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	targetID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user id")
		return
	}

	maxFormSize := int64(model.MaxImageSizeBytes) + 1024*1024 // allow form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Image exceeds 5MB limit")
			return
		}
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		httputil.WriteBadRequest(w, "User name is required")
		return
	}

	var file multipart.File
	var header *multipart.FileHeader
	f, hdr, err := r.FormFile("image")
	if err == nil {
		defer f.Close()
		file = f
		header = hdr
	} else if err != http.ErrMissingFile {
		httputil.WriteBadRequest(w, "Invalid image upload")
		return
	}

	if _, err := h.userService.UpdateProfile(r.Context(), actingID, targetID, name, file, header); err != nil {
		switch {
		case errors.Is(err, model.ErrNotProfileOwner):
			flash.Set(w, flash.Error("You can only edit your own profile"))
			http.Redirect(w, r, "/users/"+strconv.FormatInt(actingID, 10), http.StatusFound)
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Image exceeds 5MB limit")
		case errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequestWithCode(w, model.CodeInvalidImageType, "Unsupported image type. Allowed: jpeg, png, gif, webp")
		default:
			httputil.WriteInternalError(w, "Failed to update profile")
		}
		return
	}

	flash.Set(w, flash.Success("User profile was successfully updated"))
	http.Redirect(w, r, "/users/"+strconv.FormatInt(targetID, 10), http.StatusFound)
}

// TopUsers returns every user ranked by follower count.
// GET /users/top
func (h *UserHandler) TopUsers(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	users, err := h.userService.TopUsers(r.Context(), viewerID)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load top users")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewContext(w, r, "users", users))
}

// parseIDParam parses a positive int64 URL parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

var errInvalidID = errors.New("invalid id parameter")

// viewContext wraps page data with any pending flash message. Reading the
// flash clears it, so each message renders exactly once.
func viewContext(w http.ResponseWriter, r *http.Request, key string, data interface{}) map[string]interface{} {
	ctx := map[string]interface{}{key: data}
	if f, ok := flash.Take(w, r); ok {
		ctx["flash"] = f
	}
	return ctx
}

// redirectBack bounces the browser to the page it came from, with the
// restaurant listing as the fallback.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/restaurants"
	}
	http.Redirect(w, r, target, http.StatusFound)
}
