package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/config"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/like"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
)

const (
	dbRetryInterval = 2 * time.Second
	bloomSeedBatch  = 1000
	shutdownTimeout = 5 * time.Second

	// 禁用计数保存在 keyThreadBloom+":disabled"
	keyThreadBloom = "bloom:thread:ids"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	db, err := openDB(cfg.DSN(), cfg.DBMaxRetry)
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.DatabaseAutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatal("failed to migrate database: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// Prepare Repository
	// 1. DB层
	threadDBRepo := mysqlRepo.NewThreadDBRepository(db, mysqlRepo.UUIDGenerator)
	commentRepo := mysqlRepo.NewCommentRepository(db, mysqlRepo.UUIDGenerator)
	replyRepo := mysqlRepo.NewReplyRepository(db, mysqlRepo.UUIDGenerator)
	likeDBRepo := mysqlRepo.NewLikeDBRepository(db, mysqlRepo.UUIDGenerator)

	// 2. Cache层
	threadCache := myRedisCache.NewThreadCache(client)
	likeCache := myRedisCache.NewLikeCache(client, cfg.LikeCountTTL)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, keyThreadBloom, cfg.BloomBitSize)

	// 3. Repository协调层
	threadRepo := repository.NewThreadRepository(threadDBRepo, threadCache, bloomRepo, cfg.ThreadCacheTTL)
	likeRepo := repository.NewLikeRepository(likeDBRepo, likeCache)

	// Prepare bloom filter
	if err := threadRepo.InitBloomFilter(ctx, bloomSeedBatch); err != nil {
		logrus.Warnf("failed to init bloom filter, existence checks go to the database: %v", err)
	}

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo, cfg.DetailFanOutLimit)
	commentSvc := comment.NewService(threadRepo, commentRepo)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo)
	likeSvc := like.NewService(threadRepo, commentRepo, likeRepo)

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.Metrics())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	route.GET("/metrics", middleware.MetricsHandler())
	rest.RegisterRoutes(route, middleware.AuthMiddleware(cfg.JWTSecret),
		rest.NewThreadHandler(threadSvc),
		rest.NewCommentHandler(commentSvc),
		rest.NewReplyHandler(replySvc),
		rest.NewLikeHandler(likeSvc),
	)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
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

	logrus.Info("Server exiting")
}

func openDB(dsn string, maxRetry int) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range maxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			err = ping(db)
			if err == nil {
				return db, nil
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, maxRetry, err)
		time.Sleep(dbRetryInterval)
	}
	return nil, err
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return err
	}
	return nil
}
