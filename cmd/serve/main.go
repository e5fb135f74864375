// Package classification Club Platform Core Service.
//
// Check-in token and club chat service for the student club membership platform
//
//    Version: 0.1.0
//
//    Consumes:
//      - application/json
//
//    Produces:
//      - application/json
//
// swagger:meta
package main

import (
	"fmt"
	stdlog "log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/anhtri22303/uni-club-sub009/internal/handler"
	"github.com/anhtri22303/uni-club-sub009/internal/log"
	"github.com/anhtri22303/uni-club-sub009/internal/server"
	"github.com/anhtri22303/uni-club-sub009/pkg/chat"
	"github.com/anhtri22303/uni-club-sub009/pkg/checkin"
	"github.com/anhtri22303/uni-club-sub009/pkg/config"
	"github.com/anhtri22303/uni-club-sub009/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Warning: .env file not found, using environment as is")
	}

	cfg := config.ProvideConfig()

	logHandler := log.NewPrettyJSONHandler(os.Stdout, &log.PrettyJSONHandlerOptions{
		PrettyPrint: gin.IsDebugging(),
	})
	logger := slog.New(log.New(logHandler))
	slog.SetDefault(logger)

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	var checkinHandler checkin.Handler
	var chatHandler chat.Handler
	if cfg.Redis.Enabled() {
		client, err := storage.NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password)
		if err != nil {
			return err
		}
		checkinHandler = checkin.NewHandler(checkin.NewService(logger, checkin.NewRedisRepository(client)))
		chatHandler = chat.NewHandler(chat.NewService(logger, chat.NewRedisRepository(client)))
	} else {
		// Chat has no in-memory fallback and reports service unavailable without Redis. Check-in
		// falls back to an in-process store meant for local development.
		logger.Warn("Redis is not configured, check-in tokens are stored in memory and chat is unavailable")
		checkinHandler = checkin.NewHandler(checkin.NewService(logger, checkin.NewInMemoryRepository()))
		chatHandler = chat.NewHandler(chat.NewService(logger, nil))
	}

	r := server.GetEngine(logger, cfg.BasePath, checkinHandler, chatHandler)
	return r.Run(fmt.Sprintf(":%d", cfg.ServerPort))
}
