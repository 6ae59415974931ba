package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/go-clean-forum/internal/idgen"
	"github.com/Guyuepp/go-clean-forum/internal/metrics"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	mysqlRepo "github.com/Guyuepp/go-clean-forum/internal/repository/mysql"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/go-clean-forum/internal/repository/redis"
	"github.com/Guyuepp/go-clean-forum/internal/rest"
	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/comment"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/follow"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/like"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/post"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/stats"
	"github.com/Guyuepp/go-clean-forum/internal/workers"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":9090"
	defaultCacheDB       = 0
	defaultBloomBitSize  = 10000000
	defaultStatsCacheTTL = 60
	defaultTxMaxAttempts = 3
	dbMaxRetry           = 10
	dbRetryInterval      = 2 * time.Second
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func envInt(key string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		logrus.Infof("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}

func openDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = gorm.Open(gormmysql.Open(dsn), &gorm.Config{
				SkipDefaultTransaction: true,
				Logger:                 logger.Default.LogMode(logger.Warn),
			})
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			if err := sqlDB.Ping(); err != nil {
				_ = sqlDB.Close()
				return err
			}
			return nil
		},
		retry.Attempts(dbMaxRetry),
		retry.Delay(dbRetryInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logrus.Warnf("failed to connect to database (attempt %d/%d): %v", n+1, dbMaxRetry, err)
		}),
	)
	return db, err
}

func main() {
	// prepare database
	db, err := openDB()
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

	if os.Getenv("DATABASE_AUTO_MIGRATE") == "true" {
		err = db.AutoMigrate(
			&model.User{}, &model.Post{}, &model.Comment{}, &model.CommentContent{},
			&model.Like{}, &model.Follow{}, &model.PostStats{}, &model.UserStats{},
		)
		if err != nil {
			logrus.Fatal("failed to migrate tables: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("CACHE_HOST") + ":" + os.Getenv("CACHE_PORT"),
		Password: os.Getenv("CACHE_PASS"),
		DB:       int(envInt("CACHE_DB", defaultCacheDB)),
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	// 启动前并发检查数据库和缓存
	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(gctx)
	})
	g.Go(func() error {
		return client.Ping(gctx).Err()
	})
	if err := g.Wait(); err != nil {
		logrus.Fatal("startup check failed: ", err)
	}

	ids, err := idgen.NewSnowflake(idgen.DefaultEpoch, envInt("NODE_ID", 1))
	if err != nil {
		logrus.Fatal("failed to init id generator: ", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// prepare gin
	route := gin.New()
	route.Use(gin.Logger(), gin.Recovery(), middleware.CORS(), middleware.Metrics(collector))
	timeoutContext := time.Duration(envInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))
	route.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Prepare Repository
	tx := mysqlRepo.NewTransactor(db, uint(envInt("TX_MAX_ATTEMPTS", defaultTxMaxAttempts)))
	userRepo := mysqlRepo.NewUserRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	counterRepo := mysqlRepo.NewCounterRepository(db)

	// Stats 的三层: DB 计数 -> Redis 缓存 -> 协调层
	statsTTL := time.Duration(envInt("STATS_CACHE_TTL", defaultStatsCacheTTL)) * time.Second
	statsCache := myRedisCache.NewStatsCache(client, statsTTL)
	statsRepo := repository.NewStatsRepository(counterRepo, statsCache)

	bloomRepo := myRedisCache.NewPostBloomRepo(client, uint64(envInt("BLOOM_FILTER_SIZE", defaultBloomBitSize)))

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	invalidator := workers.NewStatsInvalidator(statsCache, workers.DefaultFlushInterval, workers.DefaultBatchSize)
	workerDone := make(chan struct{})
	go func() {
		invalidator.Start(ctx)
		close(workerDone)
	}()

	// Build service Layer
	postSvc := post.NewService(post.Deps{
		Tx:      tx,
		Posts:   postRepo,
		Users:   userRepo,
		Bloom:   bloomRepo,
		IDs:     ids,
		Metrics: collector,
	})
	commentSvc := comment.NewService(comment.Deps{
		Tx:          tx,
		Comments:    commentRepo,
		Posts:       postRepo,
		Users:       userRepo,
		Counters:    counterRepo,
		Bloom:       bloomRepo,
		IDs:         ids,
		Invalidator: invalidator,
		Metrics:     collector,
	})
	likeSvc := like.NewService(like.Deps{
		Tx:          tx,
		Likes:       likeRepo,
		Posts:       postRepo,
		Comments:    commentRepo,
		Users:       userRepo,
		Counters:    counterRepo,
		Bloom:       bloomRepo,
		IDs:         ids,
		Invalidator: invalidator,
		Metrics:     collector,
	})
	followSvc := follow.NewService(follow.Deps{
		Tx:          tx,
		Follows:     followRepo,
		Users:       userRepo,
		Counters:    counterRepo,
		IDs:         ids,
		Invalidator: invalidator,
		Metrics:     collector,
	})
	statsSvc := stats.NewService(statsRepo, postRepo, userRepo, bloomRepo)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}
	err = rest.RegisterRoutes(route, rest.Handlers{
		Post:    rest.NewPostHandler(postSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Like:    rest.NewLikeHandler(likeSvc),
		Follow:  rest.NewFollowHandler(followSvc),
		Stats:   rest.NewStatsHandler(statsSvc),
	}, jwtSecret)
	if err != nil {
		logrus.Fatal("failed to register routes: ", err)
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
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logrus.Warn("worker cleanup timed out")
	}

	logrus.Info("Server exiting")
}
