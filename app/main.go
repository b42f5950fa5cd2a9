package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Blog-Moderation/internal/repository/mysql"
	redisCache "github.com/Guyuepp/Go-Blog-Moderation/internal/repository/redis"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/rest"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/rest/middleware"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/usecase/category"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/usecase/comment"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/workers"
)

const (
	defaultTimeout           = 30
	defaultAddress           = ":9090"
	defaultCacheDB           = 0
	defaultRetentionDays     = 30
	defaultRetentionInterval = 24
	dbMaxRetry               = 10
	dbRetryIntervalSec       = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		log.Printf("failed to parse %s, using default %d", key, fallback)
		return fallback
	}
	return v
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDB := intEnv("CACHE_DB", defaultCacheDB)
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout := intEnv("CONTEXT_TIMEOUT", defaultTimeout)
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Prepare Repository
	commentRepo := mysqlRepo.NewCommentRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)

	// Category三层: DB层 + Cache层 + 协调层
	categoryDBRepo := mysqlRepo.NewCategoryRepository(db)
	categoryCache := redisCache.NewCategoryCache(client)
	categoryRepo := repository.NewCategoryRepository(categoryDBRepo, categoryCache)

	// Build service layer
	autoApprove := os.Getenv("MODERATION_AUTO_APPROVE") == "true"
	commentSvc := comment.NewServiceWithDetector(commentRepo, postRepo, comment.NewHeuristicDetector(), autoApprove)
	categorySvc := category.NewService(categoryRepo)

	commentHandler := rest.NewCommentHandler(commentSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)

	// Start retention worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	retentionDays := intEnv("RETENTION_DAYS", defaultRetentionDays)
	retentionInterval := intEnv("RETENTION_INTERVAL_HOURS", defaultRetentionInterval)
	cleaner := workers.NewCleanupWorker(commentSvc, retentionDays, time.Duration(retentionInterval)*time.Hour)
	go cleaner.Start(ctx)

	// Register routes
	route.GET("/posts/:id/comments", commentHandler.FetchByPost)
	route.GET("/categories", categoryHandler.Fetch)
	route.GET("/categories/active", categoryHandler.FetchActive)
	route.GET("/categories/popular", categoryHandler.FetchPopular)
	route.GET("/categories/slug/:slug", categoryHandler.GetBySlug)
	route.GET("/categories/:id", categoryHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(middleware.Actor())
	{
		authorized.POST("/posts/:id/comments", commentHandler.CreateCommentChecked)
		authorized.POST("/posts/:id/comments/plain", commentHandler.CreateComment)
		authorized.GET("/comments/pending", commentHandler.FetchPending)
		authorized.GET("/comments/search", commentHandler.Search)
		authorized.GET("/comments/stats", commentHandler.Stats)
		authorized.GET("/comments/stats/engagement", commentHandler.EngagementStats)
		authorized.GET("/comments/stats/top-posts", commentHandler.TopCommentedPosts)
		authorized.GET("/comments/stats/top-commenters", commentHandler.MostActiveCommenters)
		authorized.GET("/comments/trends", commentHandler.Trends)
		authorized.GET("/comments/orphaned", commentHandler.Orphaned)
		authorized.GET("/comments/:id", commentHandler.GetByID)
		authorized.PUT("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)
		authorized.DELETE("/comments/:id/hard", commentHandler.HardDelete)
		authorized.POST("/comments/:id/approve", commentHandler.Approve)
		authorized.POST("/comments/:id/reject", commentHandler.Reject)
		authorized.POST("/comments/bulk-approve", commentHandler.ApproveMultiple)
		authorized.POST("/comments/bulk-reject", commentHandler.RejectMultiple)
		authorized.POST("/comments/cleanup", commentHandler.Cleanup)
		authorized.GET("/users/:id/comments", commentHandler.FetchByAuthor)

		authorized.POST("/categories", categoryHandler.Create)
		authorized.PUT("/categories/:id", categoryHandler.Update)
		authorized.DELETE("/categories/:id", categoryHandler.Delete)
		authorized.PUT("/categories/:id/sort-order", categoryHandler.UpdateSortOrder)
		authorized.PUT("/categories/sort-orders", categoryHandler.BulkUpdateSortOrder)
		authorized.GET("/categories/stats", categoryHandler.Stats)
		authorized.GET("/categories/count", categoryHandler.Count)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
