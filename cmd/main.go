package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"conduit/internal/handlers"
	"conduit/internal/jwt"
	"conduit/internal/logger"
	"conduit/internal/middlewares"
	"conduit/internal/repositories"
	"conduit/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title conduit API
// @version 1.0.0
// @description Social blogging backend: users, profiles, articles, comments, favorites and tags
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		tagCacheTTL,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		tagCacheTTL,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
	); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	tagCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "conduit")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	var ttlSecond int
	if ttlSecond, err = strconv.Atoi(getEnv("TAG_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}
	tagCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config; an empty broker list disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "conduit.events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	tagCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events; nil when no brokers are configured
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	articleReadRepo := repositories.NewArticleReadRepository(db)
	articleWriteRepo := repositories.NewArticleWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	tagReadRepo := repositories.NewTagReadRepository(db)
	tagCacheRepo := repositories.NewTagCacheRepository(rdb, tagCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, kafkaWriter)
	profileService := services.NewProfileService(userReadRepo, followRepo)
	articleService := services.NewArticleService(
		userReadRepo, articleReadRepo, articleWriteRepo,
		favoriteRepo, followRepo, tagReadRepo, tagCacheRepo, kafkaWriter,
	)
	commentService := services.NewCommentService(
		userReadRepo, articleReadRepo, commentReadRepo, commentWriteRepo, followRepo,
	)

	// Setup router
	requireAuth := middlewares.AuthMiddleware(tokener)
	optionalAuth := middlewares.OptionalAuthMiddleware(tokener)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/users", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))
		r.Get("/tags", handlers.NewTagsHandler(articleService))

		// Optionally authenticated reads
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/profiles/{username}", handlers.NewProfileHandler(profileService))
			r.Get("/articles", handlers.NewListArticlesHandler(articleService))
			r.Get("/articles/{slug}", handlers.NewGetArticleHandler(articleService))
			r.Get("/articles/{slug}/comments", handlers.NewListCommentsHandler(commentService))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/user", handlers.NewCurrentUserHandler(authService))
			r.Put("/user", handlers.NewUpdateUserHandler(authService))
			r.Post("/profiles/{username}/follow", handlers.NewFollowHandler(profileService))
			r.Delete("/profiles/{username}/follow", handlers.NewUnfollowHandler(profileService))
			r.Get("/articles/feed", handlers.NewFeedHandler(articleService))
			r.Post("/articles", handlers.NewCreateArticleHandler(articleService))
			r.Put("/articles/{slug}", handlers.NewUpdateArticleHandler(articleService))
			r.Delete("/articles/{slug}", handlers.NewDeleteArticleHandler(articleService))
			r.Post("/articles/{slug}/favorite", handlers.NewFavoriteArticleHandler(articleService))
			r.Delete("/articles/{slug}/favorite", handlers.NewUnfavoriteArticleHandler(articleService))
			r.Post("/articles/{slug}/comments", handlers.NewAddCommentHandler(commentService))
			r.Delete("/articles/{slug}/comments/{id}", handlers.NewDeleteCommentHandler(commentService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
