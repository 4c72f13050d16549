package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/config"
	"github.com/Guyuepp/fritter/internal/database"
	"github.com/Guyuepp/fritter/internal/metrics"
	"github.com/Guyuepp/fritter/internal/repository"
	mysqlRepo "github.com/Guyuepp/fritter/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/fritter/internal/repository/redis"
	"github.com/Guyuepp/fritter/internal/rest"
	"github.com/Guyuepp/fritter/internal/rest/middleware"
	"github.com/Guyuepp/fritter/internal/usecase/consistency"
	"github.com/Guyuepp/fritter/internal/usecase/query"
	"github.com/Guyuepp/fritter/internal/workers"
)

const (
	bloomInitBatch  = 1000
	shutdownTimeout = 5 * time.Second
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from the environment")
	}
}

func main() {
	cfg := config.Load()

	// prepare database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatal("failed to migrate database: ", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheHost + ":" + cfg.CachePort,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector("fritter")

	// Post相关的三层架构
	// 1. DB层
	postDBRepo := mysqlRepo.NewPostDBRepository(db)
	// 2. Cache层
	keys := myRedisCache.Keys{Namespace: cfg.CacheKeyNS}
	postCache := myRedisCache.NewPostCache(client, keys, cfg.PostCacheTTL)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, keys, cfg.BloomBitSize)
	// 3. Repository协调层
	warmer := workers.NewCacheWarmer(postDBRepo, postCache)
	postRepo := repository.NewPostRepository(postDBRepo, postCache, bloomRepo, collector).WithWarmer(warmer)
	go warmer.Start(ctx)

	if err := postRepo.InitBloomFilter(ctx, bloomInitBatch); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}

	store := domain.Store{
		Users:       mysqlRepo.NewUserRepository(db),
		Posts:       postRepo,
		Follows:     mysqlRepo.NewFollowRepository(db),
		Likes:       mysqlRepo.NewLikeRepository(db),
		Collections: mysqlRepo.NewCollectionRepository(db),
	}
	consistencySvc := consistency.NewService(store, domain.SystemClock{}, collector)
	querySvc := query.NewService(store, consistencySvc, domain.SystemClock{}, collector)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestID())
	route.Use(middleware.Logger())
	route.Use(middleware.CORS())
	route.Use(middleware.Metrics(collector))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	route.GET("/metrics", gin.WrapH(collector.Handler()))
	rest.RegisterRoutes(route, consistencySvc, querySvc)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	select {
	case <-warmer.Done():
	case <-shutdownCtx.Done():
	}

	logrus.Info("Server exiting")
}
