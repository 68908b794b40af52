package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig defines rate limiting rules for a specific endpoint.
// A Limit of 0 or below means the endpoint is not rate limited.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds the rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	EndpointConfigs []EndpointConfig
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	CleanupInterval time.Duration
}

// DefaultEndpointConfigs returns the per-endpoint limits. Plan generation is
// expensive (multiple upstream API calls per request) so it gets a strict
// budget; read endpoints are generous.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/plan", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/api/careers", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/runs/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	config := &Config{
		Enabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 100),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	return config
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseList(value string) map[string]bool {
	result := make(map[string]bool)
	if value == "" {
		return result
	}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result[item] = true
		}
	}
	return result
}
