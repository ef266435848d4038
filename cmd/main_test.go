package main

import (
	"bytes"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_LOG_FORMAT", "APP_PUBLIC_URL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE",
	"REDIS_MIN_IDLE_CONNS", "REDIS_SESSION_TTL",
	"KAFKA_BROKERS", "KAFKA_COMMENTS_TOPIC", "KAFKA_GROUP_ID", "NOTIFY_QUEUE_SIZE",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM", "SMTP_TIMEOUT",
	"JWT_SECRET_KEY", "VERIFY_TOKEN_TTL", "GRPC_HEALTH_PORT", "HEALTH_CHECK_INTERVAL",
}

// resetEnv blanks every variable parseConfig reads; empty values fall back to the file, then defaults.
func resetEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	oldVersion, oldCommit, oldDate := buildVersion, buildCommit, buildDate
	defer func() { buildVersion, buildCommit, buildDate = oldVersion, oldCommit, oldDate }()

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:8080", cfg.PublicURL)

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)
	assert.Equal(t, 24*time.Hour, cfg.RedisSessionTTL)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "blog.comments.created", cfg.KafkaCommentsTopic)
	assert.Equal(t, "gw-blog-notifier", cfg.KafkaGroupID)
	assert.Equal(t, 100, cfg.NotifyQueueSize)

	assert.Empty(t, cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "noreply@blog.local", cfg.SMTPFrom)
	assert.Equal(t, 10*time.Second, cfg.SMTPTimeout)

	assert.Equal(t, "my_super_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 72*time.Hour, cfg.VerifyTokenTTL)

	assert.Equal(t, "50051", cfg.GRPCHealthPort)
	assert.Equal(t, 10*time.Second, cfg.HealthCheckInterval)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FORMAT", "console")
	t.Setenv("APP_PUBLIC_URL", "https://blog.example.com/")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "mydb")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "redispass")
	t.Setenv("REDIS_POOL_SIZE", "15")
	t.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	t.Setenv("REDIS_SESSION_TTL", "30m")

	t.Setenv("KAFKA_BROKERS", "kafka1:9092, kafka2:9092,")
	t.Setenv("KAFKA_COMMENTS_TOPIC", "comments")
	t.Setenv("KAFKA_GROUP_ID", "mailer")
	t.Setenv("NOTIFY_QUEUE_SIZE", "5")

	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "25")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "mailpass")
	t.Setenv("SMTP_FROM", "blog@example.com")
	t.Setenv("SMTP_TIMEOUT", "5s")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("VERIFY_TOKEN_TTL", "1h")
	t.Setenv("GRPC_HEALTH_PORT", "50052")
	t.Setenv("HEALTH_CHECK_INTERVAL", "3s")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:             "127.0.0.1",
		AppPort:             "9090",
		LogLevel:            "debug",
		LogFormat:           "console",
		PublicURL:           "https://blog.example.com",
		PGHost:              "pg.example.com",
		PGPort:              5433,
		PGUser:              "admin",
		PGPassword:          "secret",
		PGDB:                "mydb",
		PGMaxOpenConns:      20,
		PGMaxIdleConns:      10,
		RedisHost:           "redis.example.com",
		RedisPort:           6380,
		RedisDB:             2,
		RedisPassword:       "redispass",
		RedisPoolSize:       15,
		RedisMinIdleConns:   5,
		RedisSessionTTL:     30 * time.Minute,
		KafkaBrokers:        []string{"kafka1:9092", "kafka2:9092"},
		KafkaCommentsTopic:  "comments",
		KafkaGroupID:        "mailer",
		NotifyQueueSize:     5,
		SMTPHost:            "smtp.example.com",
		SMTPPort:            25,
		SMTPUsername:        "mailer",
		SMTPPassword:        "mailpass",
		SMTPFrom:            "blog@example.com",
		SMTPTimeout:         5 * time.Second,
		JWTSecretKey:        "supersecret",
		VerifyTokenTTL:      time.Hour,
		GRPCHealthPort:      "50052",
		HealthCheckInterval: 3 * time.Second,
	}, cfg)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv(t)

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nREDIS_SESSION_TTL=2h\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, 2*time.Hour, cfg.RedisSessionTTL)
}

func TestParseConfig_EnvOverridesFile(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_PORT", "9191")

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nAPP_HOST=0.0.0.0\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.AppPort)
	assert.Equal(t, "0.0.0.0", cfg.AppHost)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"postgres port", "POSTGRES_PORT", "abc"},
		{"redis db", "REDIS_DB", "zero"},
		{"session ttl", "REDIS_SESSION_TTL", "forever"},
		{"smtp port", "SMTP_PORT", "smtp"},
		{"smtp timeout", "SMTP_TIMEOUT", "soon"},
		{"verify ttl", "VERIFY_TOKEN_TTL", "3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userReader := services.NewMockUserReader(ctrl)
	sessions := services.NewMockSessionTokenStore(ctrl)
	postReader := services.NewMockPostReader(ctrl)

	authService := services.NewAuthService(userReader, nil, sessions, nil, nil, "http://localhost:8080")
	postService := services.NewPostService(postReader, nil)
	commentService := services.NewCommentService(nil, nil, nil, nil)

	router := newRouter(config{PublicURL: "http://localhost:8080"}, nil, authService, postService, commentService)

	userID := uuid.New()

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		setup      func()
		wantStatus int
		wantBody   string
	}{
		{
			name:       "protected route without token",
			method:     http.MethodGet,
			target:     "/api/posts/",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authentication credentials were not provided.",
		},
		{
			name:   "protected route with unknown token",
			method: http.MethodGet,
			target: "/api/comments/",
			token:  "unknown",
			setup: func() {
				sessions.EXPECT().GetUserID(gomock.Any(), "unknown").Return(uuid.Nil, models.ErrNotFound)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token.",
		},
		{
			name:   "list posts with valid token",
			method: http.MethodGet,
			target: "/api/posts/",
			token:  "valid",
			setup: func() {
				sessions.EXPECT().GetUserID(gomock.Any(), "valid").Return(userID, nil)
				userReader.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID, IsActive: true}, nil)
				postReader.EXPECT().List(gomock.Any(), userID, nil).Return([]models.PostDetail{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
		{
			name:       "verify email with malformed uid",
			method:     http.MethodGet,
			target:     "/api/auth/verify-email/bad/token/",
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid verification link.",
		},
		{
			name:       "swagger document",
			method:     http.MethodGet,
			target:     "/swagger/doc.json",
			wantStatus: http.StatusOK,
			wantBody:   "/api/comments/{id}/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}
