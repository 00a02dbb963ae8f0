package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                         string
	Env                          string
	LogLevel                     string
	MongoURI                     string
	MongoDatabase                string
	POICollection                string
	SuggestionCollection         string
	FailedNotificationCollection string
	Timeout                      time.Duration
	Timezone                     string
	JWTConfigs                   []JWTConfig
	JWTAudience                  string
	RedisAddr                    string
	RedisPassword                string
	RedisDB                      int
	HoursCacheTTL                time.Duration
	MinioEndpoint                string
	MinioAccessKey               string
	MinioSecretKey               string
	MinioUseSSL                  bool
	MinioBucket                  string
	UploadURLTTL                 time.Duration
	WebhookEndpoint              string
	WebhookChannel               string
	WebhookTimeout               time.Duration
	AdminConsoleBaseURL          string
	AllowedOrigins               []string
	SuggestionRateLimit          int
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	webhookEndpoint := strings.TrimSpace(os.Getenv("OPS_WEBHOOK_URL"))
	webhookChannel := envOrDefault("OPS_WEBHOOK_CHANNEL", "poi-suggestions")

	webhookTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPS_WEBHOOK_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			webhookTimeout = parsed
		}
	}

	hoursCacheTTL := 10 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("HOURS_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			hoursCacheTTL = parsed
		}
	}

	uploadURLTTL := 15 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("UPLOAD_URL_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			uploadURLTTL = parsed
		}
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_CONSOLE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_CONSOLE_JWT_ISSUER", "poi-console-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_SSO_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_SSO_JWT_ISSUER", "org-sso"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_CONSOLE_JWT_SECRET or AUTH_SSO_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	redisDB := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			redisDB = parsed
		}
	}

	suggestionRateLimit := 5
	if raw := strings.TrimSpace(os.Getenv("SUGGESTION_RATE_LIMIT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			suggestionRateLimit = parsed
		}
	}

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		Env:                          envOrDefault("APP_ENV", "development"),
		LogLevel:                     envOrDefault("LOG_LEVEL", "info"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "poi-console"),
		POICollection:                envOrDefault("POI_COLLECTION", "pois"),
		SuggestionCollection:         envOrDefault("SUGGESTION_COLLECTION", "suggestions"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		Timezone:                     envOrDefault("TIMEZONE", "America/New_York"),
		JWTConfigs:                   jwtConfigs,
		JWTAudience:                  jwtAudience,
		RedisAddr:                    envOrDefault("REDIS_ADDR", "redis:6379"),
		RedisPassword:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                      redisDB,
		HoursCacheTTL:                hoursCacheTTL,
		MinioEndpoint:                envOrDefault("MINIO_ENDPOINT", "minio:9000"),
		MinioAccessKey:               os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:               os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:                  strings.EqualFold(strings.TrimSpace(os.Getenv("MINIO_USE_SSL")), "true"),
		MinioBucket:                  envOrDefault("MINIO_BUCKET", "poi-photos"),
		UploadURLTTL:                 uploadURLTTL,
		WebhookEndpoint:              webhookEndpoint,
		WebhookChannel:               webhookChannel,
		WebhookTimeout:               webhookTimeout,
		AdminConsoleBaseURL:          strings.TrimSpace(os.Getenv("ADMIN_CONSOLE_BASE_URL")),
		AllowedOrigins:               parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		SuggestionRateLimit:          suggestionRateLimit,
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
