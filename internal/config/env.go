package config

import (
	"github.com/JaimeStill/antique-feed/pkg/logging"
	"github.com/JaimeStill/antique-feed/pkg/metrics"
	"github.com/JaimeStill/antique-feed/pkg/middleware"
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/storage"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

var loggingEnv = &logging.Env{
	Level:     "LOG_LEVEL",
	Format:    "LOG_FORMAT",
	AddSource: "LOG_ADD_SOURCE",
}

var supabaseEnv = &supabase.Env{
	URL:          "SUPABASE_URL",
	Key:          "SUPABASE_KEY",
	Timeout:      "SUPABASE_TIMEOUT",
	MaxConns:     "SUPABASE_MAX_CONNS",
	MaxIdleConns: "SUPABASE_MAX_IDLE_CONNS",
}

var storageEnv = &storage.Env{
	Bucket:        "STORAGE_BUCKET",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
	UniqueNames:   "STORAGE_UNIQUE_NAMES",
}

var metricsEnv = &metrics.Env{
	Enabled:   "METRICS_ENABLED",
	Path:      "METRICS_PATH",
	Namespace: "METRICS_NAMESPACE",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled:           "API_RATE_LIMIT_ENABLED",
	RequestsPerSecond: "API_RATE_LIMIT_RPS",
	Burst:             "API_RATE_LIMIT_BURST",
	IdleTTL:           "API_RATE_LIMIT_IDLE_TTL",
	TrustForwarded:    "API_RATE_LIMIT_TRUST_FORWARDED",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
	Output:      "API_OPENAPI_OUTPUT",
}
