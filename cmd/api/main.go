package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"posyandu-backend/internal/config"
	"posyandu-backend/internal/handlers"
	"posyandu-backend/internal/logger"
	"posyandu-backend/internal/middleware"
	"posyandu-backend/internal/repository"
	"posyandu-backend/internal/routes"
	"posyandu-backend/internal/services"
	"posyandu-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load Env
	config.LoadEnv()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "posyandu-backend")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	// 2. Connect DB
	db, err := config.ConnectDB(cfg, zl)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	store := repository.New(db)

	// 3. Object storage foto
	objects, err := newObjectStore(cfg)
	if err != nil {
		zl.Fatal("object storage init failed", zap.Error(err))
	}

	// 4. Services & handlers
	policy := services.ParseMissingPolicy(cfg.GrowthMissingPolicy)
	dashboard := services.NewDashboardService(store, policy, zl)
	members := services.NewMemberService(store, objects, zl, cfg.MaxPhotoBytes)
	auth := services.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL)

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	stopCleanup := make(chan struct{})
	go limiter.RunCleanup(time.Minute, stopCleanup)

	// 5. Init Router
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, routes.Deps{
		Log:         zl,
		JWTSecret:   cfg.JWTSecret,
		RateLimiter: limiter,
		Auth:        handlers.NewAuthHandler(auth),
		Dashboard:   handlers.NewDashboardHandler(dashboard),
		Members:     handlers.NewMemberHandler(members),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		zl.Info("shutdown signal received", zap.String("signal", sig.String()))

		close(stopCleanup)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zl.Error("server shutdown error", zap.Error(err))
		}
	}()

	// 6. Run Server
	zl.Info("server berjalan", zap.String("port", cfg.Port), zap.String("storage", cfg.StorageDriver))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("server error", zap.Error(err))
	}
	zl.Info("server stopped")
}

func newObjectStore(cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.StorageDriver == "firebase" {
		fs, err := storage.NewFirebaseStore(context.Background(), cfg.FirebaseCredentials, cfg.StorageBucket, cfg.PublicBaseURL())
		if err != nil {
			return nil, err
		}
		return fs, nil
	}
	return storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StorageBucket, cfg.PublicBaseURL()), nil
}
