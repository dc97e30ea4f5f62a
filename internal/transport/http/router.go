package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tastemap/internal/handler"
	"tastemap/internal/httputil"
	authmw "tastemap/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	FavoriteHandler   *handler.FavoriteHandler
	LikeHandler       *handler.LikeHandler
	FollowHandler     *handler.FollowHandler
	JWTSecret         string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Post("/signup", cfg.AuthHandler.SignUp)
	r.Post("/signin", cfg.AuthHandler.SignIn)
	r.Post("/auth/refresh", cfg.AuthHandler.Refresh)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/logout", cfg.AuthHandler.Logout)

		r.Route("/users", func(r chi.Router) {
			r.Get("/top", cfg.UserHandler.TopUsers)
			r.Get("/{id}", cfg.UserHandler.GetUser)
			r.Get("/{id}/edit", cfg.UserHandler.EditUser)
			r.Put("/{id}", cfg.UserHandler.PutUser)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", cfg.RestaurantHandler.ListRestaurants)
			r.Get("/{id}", cfg.RestaurantHandler.GetRestaurant)
			r.Post("/{id}/comments", cfg.RestaurantHandler.CreateComment)
		})

		r.Post("/favorite/{restaurantID}", cfg.FavoriteHandler.AddFavorite)
		r.Delete("/favorite/{restaurantID}", cfg.FavoriteHandler.RemoveFavorite)

		r.Post("/like/{restaurantID}", cfg.LikeHandler.AddLike)
		r.Delete("/like/{restaurantID}", cfg.LikeHandler.RemoveLike)

		r.Post("/following/{userID}", cfg.FollowHandler.AddFollowing)
		r.Delete("/following/{userID}", cfg.FollowHandler.RemoveFollowing)
	})

	return r
}
