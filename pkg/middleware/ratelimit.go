package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/JaimeStill/antique-feed/pkg/lifecycle"
)

// RateLimitEnv maps environment variable names for rate limit configuration.
type RateLimitEnv struct {
	Enabled           string
	RequestsPerSecond string
	Burst             string
	IdleTTL           string
	TrustForwarded    string
}

// RateLimitConfig contains per-client request rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	IdleTTL           string  `toml:"idle_ttl"`
	TrustForwarded    bool    `toml:"trust_forwarded"`
}

// IdleTTLDuration parses and returns the idle limiter lifetime.
func (c *RateLimitConfig) IdleTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.RequestsPerSecond > 0 {
		c.RequestsPerSecond = overlay.RequestsPerSecond
	}
	if overlay.Burst > 0 {
		c.Burst = overlay.Burst
	}
	if overlay.IdleTTL != "" {
		c.IdleTTL = overlay.IdleTTL
	}
	if overlay.TrustForwarded {
		c.TrustForwarded = true
	}
}

func (c *RateLimitConfig) loadDefaults() {
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 20
	}
	if c.Burst <= 0 {
		c.Burst = 40
	}
	if c.IdleTTL == "" {
		c.IdleTTL = "10m"
	}
}

func (c *RateLimitConfig) loadEnv(env *RateLimitEnv) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Enabled = b
			}
		}
	}
	if env.RequestsPerSecond != "" {
		if v := os.Getenv(env.RequestsPerSecond); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.RequestsPerSecond = f
			}
		}
	}
	if env.Burst != "" {
		if v := os.Getenv(env.Burst); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.Burst = n
			}
		}
	}
	if env.IdleTTL != "" {
		if v := os.Getenv(env.IdleTTL); v != "" {
			c.IdleTTL = v
		}
	}
	if env.TrustForwarded != "" {
		if v := os.Getenv(env.TrustForwarded); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.TrustForwarded = b
			}
		}
	}
}

func (c *RateLimitConfig) validate() error {
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	if d, err := time.ParseDuration(c.IdleTTL); err != nil {
		return fmt.Errorf("invalid idle_ttl: %w", err)
	} else if d <= 0 {
		return fmt.Errorf("idle_ttl must be positive")
	}
	return nil
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client address.
type RateLimiter struct {
	cfg     *RateLimitConfig
	logger  *slog.Logger
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
}

// NewRateLimiter creates a limiter from a finalized configuration.
func NewRateLimiter(cfg *RateLimitConfig, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		cfg:     cfg,
		logger:  logger,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// Start runs the idle-client sweep until the coordinator shuts down.
func (rl *RateLimiter) Start(lc *lifecycle.Coordinator) {
	if !rl.cfg.Enabled {
		return
	}

	ttl := rl.cfg.IdleTTLDuration()
	lc.OnShutdown(func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for {
			select {
			case <-lc.Context().Done():
				return
			case <-ticker.C:
				rl.Sweep()
			}
		}
	})
}

// Sweep drops limiters for clients idle longer than the configured TTL.
func (rl *RateLimiter) Sweep() int {
	cutoff := rl.now().Add(-rl.cfg.IdleTTLDuration())

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		rl.clients[key] = c
	}
	c.lastSeen = rl.now()
	rl.mu.Unlock()

	return c.limiter.Allow()
}

// Handler returns the rate limiting middleware. A disabled limiter passes requests through.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.clientKey(r)
		if !rl.Allow(key) {
			rl.logger.Warn("rate limit exceeded", "client", key, "method", r.Method, "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.cfg.TrustForwarded {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
