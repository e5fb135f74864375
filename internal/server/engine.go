package server

import (
	"log/slog"

	"github.com/anhtri22303/uni-club-sub009/internal/middleware"
	"github.com/anhtri22303/uni-club-sub009/pkg/chat"
	"github.com/anhtri22303/uni-club-sub009/pkg/checkin"
	"github.com/anhtri22303/uni-club-sub009/pkg/health"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func GetEngine(logger *slog.Logger, basePath string, checkinHandler checkin.Handler, chatHandler chat.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	router.GET("/health", health.Health)

	checkin.Routes(router, checkinHandler)
	chat.Routes(router, chatHandler)

	return r
}
