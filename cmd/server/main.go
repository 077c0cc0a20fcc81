package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"plant-exchange/internal/config"
	"plant-exchange/internal/db"
	"plant-exchange/internal/delivery/handler"
	"plant-exchange/internal/infrastructure"
	"plant-exchange/internal/repository"
	"plant-exchange/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	mongo, err := db.Connect(context.Background(), cfg.MongoURL, cfg.DBName)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	userRepo := repository.NewUserRepo(mongo.Users())
	plantRepo := repository.NewPlantRepo(mongo.Plants())
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	authUC := usecase.NewAuthUsecase(userRepo, jwtService, logger)
	plantUC := usecase.NewPlantUsecase(plantRepo, userRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.PUT, echo.OPTIONS},
	}))

	handler.NewHandler(authUC, plantUC, logger).Register(e)

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := mongo.Close(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
