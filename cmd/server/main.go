package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"orchid/internal/commons"
	"orchid/internal/config"
	"orchid/internal/discount"
	"orchid/internal/infrastructure/logger"
	"orchid/internal/infrastructure/mysql"
	"orchid/internal/infrastructure/redis"
	"orchid/internal/mailer"
	"orchid/internal/order"
	"orchid/internal/server"
	"orchid/internal/verification"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	rdb, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer rdb.Close()
	zapLogger.Info("redis connected")

	sender := mailer.NewSMTPSender(cfg.SMTP)

	orderModule := order.NewModule(db, cfg, zapLogger)
	otpCtrl := verification.NewModule(db, rdb, sender, cfg, zapLogger)
	discountCtrl := discount.NewModule(db, zapLogger)

	router := server.NewRouter(orderModule, otpCtrl, discountCtrl)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig reads from a yaml file when CONFIG_FILE is set, otherwise
// from environment variables.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
