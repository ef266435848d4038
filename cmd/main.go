package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-blog/docs"
	"github.com/sbilibin2017/gw-blog/internal/handlers"
	"github.com/sbilibin2017/gw-blog/internal/health"
	"github.com/sbilibin2017/gw-blog/internal/jwt"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/mailer"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/migrations"
	"github.com/sbilibin2017/gw-blog/internal/notifications"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
	"github.com/sbilibin2017/gw-blog/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
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
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string
	PublicURL string

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
	RedisSessionTTL   time.Duration

	KafkaBrokers       []string
	KafkaCommentsTopic string
	KafkaGroupID       string
	NotifyQueueSize    int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPTimeout  time.Duration

	JWTSecretKey   string
	VerifyTokenTTL time.Duration

	GRPCHealthPort      string
	HealthCheckInterval time.Duration
}

// @title gw-blog API
// @version 1.0.0
// @description Blog backend: signup with email verification, session tokens, posts and comments
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig returns the application configuration. Non-empty environment
// variables win over the file at path, which wins over defaults.
func parseConfig(path string) (cfg config, err error) {
	fileEnv, _ := godotenv.Read(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		if val := fileEnv[key]; val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getDuration := func(key, defaultValue string) (time.Duration, error) {
		v, err := time.ParseDuration(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.PublicURL = strings.TrimRight(getEnv("APP_PUBLIC_URL", "http://localhost:8080"), "/")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisSessionTTL, err = getDuration("REDIS_SESSION_TTL", "24h"); err != nil {
		return
	}

	// Notifications config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaCommentsTopic = getEnv("KAFKA_COMMENTS_TOPIC", "blog.comments.created")
	cfg.KafkaGroupID = getEnv("KAFKA_GROUP_ID", "gw-blog-notifier")
	if cfg.NotifyQueueSize, err = getInt("NOTIFY_QUEUE_SIZE", "100"); err != nil {
		return
	}

	// SMTP config, empty host logs mail instead of sending it
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "noreply@blog.local")
	if cfg.SMTPPort, err = getInt("SMTP_PORT", "587"); err != nil {
		return
	}
	if cfg.SMTPTimeout, err = getDuration("SMTP_TIMEOUT", "10s"); err != nil {
		return
	}

	// Verification token config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.VerifyTokenTTL, err = getDuration("VERIFY_TOKEN_TTL", "72h"); err != nil {
		return
	}

	// Health config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")
	if cfg.HealthCheckInterval, err = getDuration("HEALTH_CHECK_INTERVAL", "10s"); err != nil {
		return
	}

	return
}

// worker is a background loop stopped through its context.
type worker interface {
	Run(ctx context.Context) error
}

// run initializes the logger, database, Redis, notifications, health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	sessionRepo := repositories.NewSessionTokenRepository(db, txGetter)
	sessionCacheRepo := repositories.NewSessionTokenCacheRepository(rdb, sessionRepo, cfg.RedisSessionTTL)
	postReadRepo := repositories.NewPostReadRepository(db, txGetter)
	postWriteRepo := repositories.NewPostWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewCommentReadRepository(db, txGetter)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, txGetter)

	// Initialize verification tokens and mail
	tokener := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.VerifyTokenTTL))

	var m services.Mailer
	if cfg.SMTPHost != "" {
		m, err = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPTimeout)
		if err != nil {
			return err
		}
	} else {
		logger.Log.Warn("SMTP_HOST is empty, outgoing mail is only logged")
		m = mailer.NewLogMailer()
	}

	// Initialize notifications
	notifier := services.NewNotificationService(commentReadRepo, m, cfg.PublicURL)

	var (
		publisher services.CommentEventPublisher
		bg        worker
	)
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaCommentsTopic,
			Balancer: &kafka.Hash{},
			Async:    true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Log.Warnw("failed to deliver comment events", "count", len(messages), "err", err)
				}
			},
		}
		kafkaPublisher := notifications.NewKafkaPublisher(writer)
		defer kafkaPublisher.Close()

		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.KafkaBrokers,
			GroupID: cfg.KafkaGroupID,
			Topic:   cfg.KafkaCommentsTopic,
		})
		consumer := notifications.NewConsumer(reader, notifier)
		defer consumer.Close()

		publisher, bg = kafkaPublisher, consumer
		logger.Log.Infow("Comment notifications use Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaCommentsTopic)
	} else {
		dispatcher := notifications.NewChannelDispatcher(notifier, cfg.NotifyQueueSize)
		publisher, bg = dispatcher, dispatcher
		logger.Log.Infow("Comment notifications use in-process queue", "size", cfg.NotifyQueueSize)
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionCacheRepo, tokener, m, cfg.PublicURL)
	postService := services.NewPostService(postReadRepo, postWriteRepo)
	commentService := services.NewCommentService(commentReadRepo, commentWriteRepo, postReadRepo, publisher)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, db, authService, postService, commentService),
	}

	healthSrv := health.NewServer(
		net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort),
		cfg.HealthCheckInterval,
		map[string]health.CheckFunc{
			"postgres": db.PingContext,
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
	)

	// Graceful shutdown
	errChan := make(chan error, 3)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	bgCtx, cancelBg := context.WithCancel(context.Background())
	defer cancelBg()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := bg.Run(bgCtx); err != nil {
			errChan <- fmt.Errorf("notification worker failed: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := healthSrv.Run(bgCtx); err != nil {
			errChan <- fmt.Errorf("health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case runErr = <-errChan:
		logger.Log.Errorw("Component failed, shutting down", "err", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "err", err)
	}
	logger.Log.Info("HTTP server stopped gracefully")

	cancelBg()
	wg.Wait()
	logger.Log.Info("Background workers stopped")

	return runErr
}

// newRouter builds the HTTP routes.
func newRouter(
	cfg config,
	db *sqlx.DB,
	authService *services.AuthService,
	postService *services.PostService,
	commentService *services.CommentService,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.With(middlewares.TxMiddleware(db)).Post("/signup/", handlers.NewSignupHandler(authService))
		r.Get("/verify-email/{uid}/{token}/", handlers.NewVerifyEmailHandler(authService))
		r.Post("/login/", handlers.NewLoginHandler(authService))
	})

	// Protected routes with session token middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(authService))

		r.Post("/api/auth/logout/", handlers.NewLogoutHandler(authService))

		r.Get("/api/posts/", handlers.NewListPostsHandler(postService))
		r.Post("/api/posts/", handlers.NewCreatePostHandler(postService))
		r.Get("/api/posts/{id}/", handlers.NewGetPostHandler(postService))
		r.Put("/api/posts/{id}/", handlers.NewUpdatePostHandler(postService, false))
		r.Patch("/api/posts/{id}/", handlers.NewUpdatePostHandler(postService, true))
		r.Delete("/api/posts/{id}/", handlers.NewDeletePostHandler(postService))

		r.Get("/api/comments/", handlers.NewListCommentsHandler(commentService))
		r.Post("/api/comments/", handlers.NewCreateCommentHandler(commentService))
		r.Get("/api/comments/{id}/", handlers.NewGetCommentHandler(commentService))
		r.Put("/api/comments/{id}/", handlers.NewUpdateCommentHandler(commentService, false))
		r.Patch("/api/comments/{id}/", handlers.NewUpdateCommentHandler(commentService, true))
		r.Delete("/api/comments/{id}/", handlers.NewDeleteCommentHandler(commentService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.PublicURL+"/swagger/doc.json"),
	))

	return r
}
