package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	cf := config.GetConfig()

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connection failed")
	}
	dbDao := db.NewDbDao(conn)
	if err := dbDao.InitMigrate(); err != nil {
		logger.Fatal().Err(err).Msg("db migration failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}

	userRepo := db.NewUserRepo(dbDao)
	productRepo := db.NewProductRepo(dbDao, rdb)
	orderRepo := db.NewOrderRepo(dbDao, rdb)
	cartRepo := redis_repo.NewCartRepo(rdb)

	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, productRepo, productService)
	dashboardService := service.NewDashboardService(orderRepo, productRepo)

	if err := authService.EnsureDefaultUsers(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("seeding default users failed")
	}

	server := api.NewServer(
		handler.NewAuthHandler(authService),
		handler.NewProductHandler(productService),
		handler.NewCartHandler(cartService),
		handler.NewOrderHandler(orderService),
		handler.NewAdminHandler(orderService, dashboardService),
	)

	r := router.SetupRouter(server, userRepo, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
		if err := rdb.Close(); err != nil {
			logger.Error().Err(err).Msg("redis shutdown error")
		}
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}

		shutDownCompleted <- struct{}{}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
	<-shutDownCompleted
	logger.Info().Msg("shutdown completed")
}
