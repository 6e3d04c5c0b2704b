package main

import (
	"context"
	"flag"
	"fmt"
	"log"
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

	"github.com/sbilibin2017/gw-book-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-book-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
	"github.com/sbilibin2017/gw-book-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-book-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-book-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	LogDevelopment bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

// @title gw-book-tracker API
// @version 1.0.0
// @description Personal library service: shelves, tracked books, readings and catalog moderation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
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

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, logging, and JWT configuration.
// Variables already set in the environment win over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.LogDevelopment, err = strconv.ParseBool(getEnv("APP_LOG_DEVELOPMENT", "false")); err != nil {
		return cfg, fmt.Errorf("APP_LOG_DEVELOPMENT: %w", err)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return cfg, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return cfg, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return cfg, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return cfg, err
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "300"); err != nil {
		return cfg, err
	}

	// Kafka config, no brokers disables activity events
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "book-tracker.activity")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogDevelopment); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for activity events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.Hash{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing activity events to %s", cfg.KafkaTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS is empty, activity events are disabled")
	}

	tokens := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	bookshelfRepo := repositories.NewBookshelfRepository(db, txGetter)
	collectionRepo := repositories.NewCollectionRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	userBookRepo := repositories.NewUserBookRepository(db, txGetter)
	readingRepo := repositories.NewReadingRepository(db, txGetter)
	bookRepo := repositories.NewBookRepository(db, txGetter)
	bookCache := repositories.NewBookCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	changeRequestRepo := repositories.NewChangeRequestRepository(db, txGetter)

	// Initialize services
	events := services.NewActivityPublisher(kafkaWriter, middlewares.AfterCommit)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, bookshelfRepo, tokens)
	userBookService := services.NewUserBookService(userBookRepo, bookshelfRepo, collectionRepo, events)
	readingService := services.NewReadingService(userBookRepo, readingRepo)
	libraryService := services.NewLibraryService(bookshelfRepo, collectionRepo, genreRepo)
	catalogService := services.NewCatalogService(bookRepo, bookCache, changeRequestRepo, events)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, db, tokens,
			authService, userBookService, readingService, libraryService, catalogService),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// authenticator is what the public auth routes need.
type authenticator interface {
	handlers.Registerer
	handlers.Loginer
}

// newRouter mounts every route under /api/v1. Write routes run inside a
// request-scoped transaction joined by the repositories.
func newRouter(
	cfg config,
	db *sqlx.DB,
	tokens middlewares.Tokener,
	auth authenticator,
	userBooks handlers.UserBookManager,
	readings handlers.ReadingManager,
	library handlers.Librarian,
	catalog handlers.Cataloger,
) http.Handler {
	tx := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(tx).Post("/register", handlers.NewRegisterHandler(auth))
		r.Post("/login", handlers.NewLoginHandler(auth))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Route("/user-books", func(r chi.Router) {
				r.Get("/", handlers.NewListUserBooksHandler(userBooks))
				r.With(tx).Post("/", handlers.NewCreateUserBookHandler(userBooks))
				r.Get("/{id}", handlers.NewGetUserBookHandler(userBooks))
				r.With(tx).Put("/{id}", handlers.NewUpdateUserBookHandler(userBooks))
				r.With(tx).Delete("/{id}", handlers.NewDeleteUserBookHandler(userBooks))
				r.With(tx).Put("/{id}/readings", handlers.NewSaveReadingHandler(readings))
				r.With(tx).Delete("/{id}/readings/{readingId}", handlers.NewDeleteReadingHandler(readings))
			})

			r.Get("/bookshelves", handlers.NewListBookshelvesHandler(library))
			r.Post("/bookshelves", handlers.NewCreateBookshelfHandler(library))
			r.Get("/collections", handlers.NewListCollectionsHandler(library))
			r.Post("/collections", handlers.NewCreateCollectionHandler(library))
			r.Get("/genres", handlers.NewListGenresHandler(library))

			r.Get("/books", handlers.NewSearchBooksHandler(catalog))
			r.Get("/books/{id}", handlers.NewGetBookHandler(catalog))
			r.Post("/books/{id}/change-requests", handlers.NewSubmitChangeRequestHandler(catalog))

			// Moderation
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireRole(models.RoleAdmin))
				r.Get("/change-requests", handlers.NewListChangeRequestsHandler(catalog))
				r.With(tx).Post("/change-requests/{id}/approve", handlers.NewApproveChangeRequestHandler(catalog))
				r.With(tx).Post("/change-requests/{id}/deny", handlers.NewDenyChangeRequestHandler(catalog))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
