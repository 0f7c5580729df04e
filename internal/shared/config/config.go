package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resume-dashboard/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string

	AnalysisAPIURL            string
	AnalysisAPIKey            string
	AnalysisAPITimeout        time.Duration
	AnalysisOAuthTokenURL     string
	AnalysisOAuthClientID     string
	AnalysisOAuthClientSecret string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	RateLimitPerMinute int
	InspectUploads     bool
	ReportArchive      bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:            v.GetString("PORT"),
		Env:             normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:        v.GetString("LOG_LEVEL"),

		AnalysisAPIURL:            strings.TrimRight(strings.TrimSpace(v.GetString("ANALYSIS_API_URL")), "/"),
		AnalysisAPIKey:            v.GetString("ANALYSIS_API_KEY"),
		AnalysisAPITimeout:        v.GetDuration("ANALYSIS_API_TIMEOUT"),
		AnalysisOAuthTokenURL:     v.GetString("ANALYSIS_OAUTH_TOKEN_URL"),
		AnalysisOAuthClientID:     v.GetString("ANALYSIS_OAUTH_CLIENT_ID"),
		AnalysisOAuthClientSecret: v.GetString("ANALYSIS_OAUTH_CLIENT_SECRET"),

		DatabaseURL: v.GetString("DATABASE_URL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),

		ObjectStoreType: normalizeStoreType(v.GetString("OBJECT_STORE")),
		LocalStoreDir:   v.GetString("LOCAL_STORE_DIR"),
		AWSRegion:       v.GetString("AWS_REGION"),
		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Prefix:        v.GetString("S3_PREFIX"),
		SSEKMSKeyID:     v.GetString("SSE_KMS_KEY_ID"),

		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		InspectUploads:     v.GetBool("INSPECT_UPLOADS"),
		ReportArchive:      v.GetBool("REPORT_ARCHIVE"),
	}

	if cfg.Env == "production" && cfg.AnalysisAPIURL == "" {
		telemetry.Warn("config.missing", map[string]any{"key": "ANALYSIS_API_URL"})
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ANALYSIS_API_URL", "http://127.0.0.1:5000")
	v.SetDefault("ANALYSIS_API_TIMEOUT", "60s")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("OBJECT_STORE", "local")
	v.SetDefault("LOCAL_STORE_DIR", "./data")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	v.SetDefault("INSPECT_UPLOADS", true)
	v.SetDefault("REPORT_ARCHIVE", false)
}

// IsDevLike reports whether env permits in-memory fallbacks.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
