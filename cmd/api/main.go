package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"motoparts-api/internal/auth"
	"motoparts-api/internal/cache"
	"motoparts-api/internal/config"
	"motoparts-api/internal/database"
	"motoparts-api/internal/handlers"
	"motoparts-api/internal/logger"
	"motoparts-api/internal/repository"
	"motoparts-api/internal/routes"
)

func main() {
	if err := run(); err != nil {
		slog.Error("❌ server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Setup(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI, cfg.DBTimeout)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Disconnect(shutdownCtx, client)
	}()
	db := client.Database(cfg.MongoDB)

	users := repository.NewUserRepository(db.Collection(database.UsersCollection), cfg.DBTimeout)
	products := repository.NewProductRepository(db.Collection(database.ProductsCollection), cfg.DBTimeout)
	orders := repository.NewOrderRepository(db.Collection(database.OrdersCollection), cfg.DBTimeout)
	reviews := repository.NewReviewRepository(db.Collection(database.ReviewsCollection), cfg.DBTimeout)

	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}

	router := routes.NewRouter(cfg.AllowedOrigins, routes.Dependencies{
		Users:    handlers.NewUserHandler(users, tokens),
		Products: handlers.NewProductHandler(products, cache.New(ctx, cfg.CacheTTL)),
		Orders:   handlers.NewOrderHandler(orders, users),
		Reviews:  handlers.NewReviewHandler(reviews),
		Tokens:   tokens,
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("🚀 server running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
