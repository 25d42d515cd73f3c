package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/config"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	myRedis "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/sqldb"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/like"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.ConfigureLogger()

	// prepare database
	db, err := sqldb.Open(cfg.Database)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := sqldb.Close(db); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.Database.Migrate {
		if err := sqldb.Migrate(db); err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("database schema is up to date")
	}

	// Prepare Repository
	newID := repository.NewIDGenerator()
	userRepo := sqldb.NewUserRepository(db, newID)
	threadRepo := sqldb.NewThreadRepository(db, newID)
	commentRepo := sqldb.NewCommentRepository(db, newID)
	replyRepo := sqldb.NewReplyRepository(db, newID)

	var likeRepo domain.LikeRepository = sqldb.NewLikeRepository(db, newID)
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Pass,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Error("got error when closing the redis connection: ", err)
			}
		}()

		if err := client.Ping(context.Background()).Err(); err != nil {
			logrus.Fatal("failed to open connection to redis: ", err)
		}
		likeRepo = myRedis.NewLikeStore(client, newID)
		logrus.Info("likes are stored in redis")
	}

	// Build service Layer
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	handlers := rest.Handlers{
		Thread:  rest.NewThreadHandler(thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)),
		Comment: rest.NewCommentHandler(comment.NewService(commentRepo, threadRepo)),
		Reply:   rest.NewReplyHandler(reply.NewService(replyRepo, commentRepo, threadRepo)),
		Like:    rest.NewLikeHandler(like.NewService(likeRepo, commentRepo, threadRepo)),
		User:    rest.NewUserHandler(user.NewService(userRepo, tokens)),
	}

	// prepare gin
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(metrics.Handler())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	route.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	rest.RegisterRoutes(route, handlers, middleware.AuthMiddleware(tokens))

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	logrus.Info("Server exiting")
}
