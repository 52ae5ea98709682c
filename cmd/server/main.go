package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tazhibayda/tour-service/internal/config"
	api "github.com/tazhibayda/tour-service/internal/http"
	"github.com/tazhibayda/tour-service/internal/log"
	"github.com/tazhibayda/tour-service/internal/metrics"
	"github.com/tazhibayda/tour-service/internal/queue"
	"github.com/tazhibayda/tour-service/internal/repo"
)

// @title Tour Service API
// @version 0.1.0
// @description Backend for the tour-booking frontend: users, packages, bookings, wishlists, stories.
// @schemes http https
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := log.Init(true)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	var pub queue.Publisher = queue.NewNoop()
	if cfg.RabbitURL != "" {
		rp, err := queue.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Fatal("rabbit connect", zap.Error(err))
		}
		pub = rp
	}
	defer pub.Close()

	h := api.NewHandler(store, cfg.AccessTokenSecret, pub)
	r := api.NewRouter(h)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	logger.Info("tour-service listening", zap.String("port", cfg.Port))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("shutting down", zap.String("signal", s.String()))
	case err := <-srvErr:
		logger.Error("server error", zap.Error(err))
	}
}
