package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tastemap/internal/cache"
	"tastemap/internal/config"
	"tastemap/internal/database"
	"tastemap/internal/handler"
	"tastemap/internal/queue"
	appredis "tastemap/internal/redis"
	"tastemap/internal/repository"
	"tastemap/internal/service"
	"tastemap/internal/worker"
)

// Run wires the whole application together and serves HTTP until a
// termination signal arrives.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient, err := appredis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	ctx := context.Background()

	if err := redisClient.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	mediaService, err := service.NewMediaService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init media service: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followshipRepo := repository.NewFollowshipRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Queue and cache
	publisher := queue.NewPublisher(redisClient.Client)
	consumer := queue.NewConsumer(redisClient.Client)
	viewCache := cache.NewViewCache(redisClient.Client)

	// Services
	userService := service.NewUserService(userRepo, commentRepo, favoriteRepo, followshipRepo, mediaService)
	authService := service.NewAuthService(refreshTokenRepo, cfg)
	restaurantService := service.NewRestaurantService(restaurantRepo, commentRepo, publisher)
	favoriteService := service.NewFavoriteService(favoriteRepo, restaurantRepo)
	likeService := service.NewLikeService(likeRepo, restaurantRepo)
	followService := service.NewFollowService(followshipRepo, userRepo)

	// View-count worker
	workerManager := worker.NewManager(
		consumer,
		worker.NewHandler(viewCache, restaurantRepo),
		worker.ManagerConfig{WorkerCount: cfg.WorkerCount},
	)
	if err := workerManager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start workers: %w", err)
	}
	defer workerManager.Stop()

	// Periodically purge refresh tokens that expired long ago.
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				n, err := refreshTokenRepo.DeleteExpired(janitorCtx, 30*24*time.Hour)
				if err != nil {
					log.Printf("Failed to delete expired refresh tokens: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("Deleted %d expired refresh tokens", n)
				}
			}
		}
	}()

	router := NewRouter(RouterConfig{
		AuthHandler:       handler.NewAuthHandler(userService, authService, cfg),
		UserHandler:       handler.NewUserHandler(userService),
		RestaurantHandler: handler.NewRestaurantHandler(restaurantService),
		FavoriteHandler:   handler.NewFavoriteHandler(favoriteService),
		LikeHandler:       handler.NewLikeHandler(likeService),
		FollowHandler:     handler.NewFollowHandler(followService),
		JWTSecret:         cfg.JWTSecret,
	})

	server := &stdhttp.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("Received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
