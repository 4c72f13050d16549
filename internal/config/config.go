package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultPostCacheTTL = 600
	defaultDBMaxRetry   = 10
	defaultDBPoolSize   = 10
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Address        string
	ContextTimeout time.Duration

	// Database configuration
	DBType     string // mysql, postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string // file path for sqlite
	DBMaxRetry int
	DBPoolSize int

	// Cache configuration
	CacheHost    string
	CachePort    string
	CachePass    string
	CacheDB      int
	CacheKeyNS   string
	PostCacheTTL time.Duration
	BloomBitSize uint64
}

// Load reads configuration from environment variables, falling back to defaults
func Load() *Config {
	return &Config{
		Address:        getEnv("SERVER_ADDRESS", defaultAddress),
		ContextTimeout: time.Duration(getEnvAsInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,

		DBType:     getEnv("DB_TYPE", "mysql"),
		DBHost:     getEnv("DATABASE_HOST", "localhost"),
		DBPort:     getEnv("DATABASE_PORT", "3306"),
		DBUser:     getEnv("DATABASE_USER", ""),
		DBPass:     getEnv("DATABASE_PASS", ""),
		DBName:     getEnv("DATABASE_NAME", "fritter"),
		DBMaxRetry: getEnvAsInt("DB_MAX_RETRY", defaultDBMaxRetry),
		DBPoolSize: getEnvAsInt("DB_POOL_SIZE", defaultDBPoolSize),

		CacheHost:    getEnv("CACHE_HOST", "localhost"),
		CachePort:    getEnv("CACHE_PORT", "6379"),
		CachePass:    getEnv("CACHE_PASS", ""),
		CacheDB:      getEnvAsInt("CACHE_DB", defaultCacheDB),
		CacheKeyNS:   getEnv("CACHE_KEY_NAMESPACE", ""),
		PostCacheTTL: time.Duration(getEnvAsInt("POST_CACHE_TTL", defaultPostCacheTTL)) * time.Second,
		BloomBitSize: getEnvAsUint("BLOOM_FILTER_SIZE", defaultBloomBitSize),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
