package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tastemap/internal/flash"
	"tastemap/internal/httputil"
	"tastemap/internal/model"
	"tastemap/internal/service"
	"tastemap/internal/transport/http/middleware"
)

// RestaurantHandler groups restaurant browsing and comment endpoints.
type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListRestaurants returns a page of restaurants.
// GET /restaurants?page=1&limit=20
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = service.DefaultPageSize
	}
	offset := (page - 1) * limit

	restaurants, err := h.restaurantService.List(r.Context(), limit, offset)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load restaurants")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewContext(w, r, "restaurants", restaurants))
}

// GetRestaurant returns a restaurant's detail context and records the view.
// GET /restaurants/{id}
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.GetUserIDFromContext(r.Context())

	restaurantID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid restaurant id")
		return
	}

	detail, err := h.restaurantService.Get(r.Context(), restaurantID, viewerID)
	if err != nil {
		if errors.Is(err, model.ErrRestaurantNotFound) {
			httputil.WriteNotFound(w, "Restaurant not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to load restaurant")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewContext(w, r, "restaurant", detail))
}

// CreateComment posts a comment and returns to the restaurant page.
// POST /restaurants/{id}/comments
func (h *RestaurantHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	restaurantID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid restaurant id")
		return
	}

	if err := r.ParseForm(); err != nil {
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}
	text := r.FormValue("text")

	if _, err := h.restaurantService.AddComment(r.Context(), userID, restaurantID, text); err != nil {
		switch {
		case errors.Is(err, model.ErrTextRequired):
			httputil.WriteBadRequest(w, "Comment text is required")
		case errors.Is(err, model.ErrTextTooLong):
			httputil.WriteBadRequest(w, "Comment text is too long")
		case errors.Is(err, model.ErrRestaurantNotFound):
			httputil.WriteNotFound(w, "Restaurant not found")
		default:
			httputil.WriteInternalError(w, "Failed to post comment")
		}
		return
	}

	flash.Set(w, flash.Success("Comment was successfully posted"))
	http.Redirect(w, r, "/restaurants/"+strconv.FormatInt(restaurantID, 10), http.StatusFound)
}
