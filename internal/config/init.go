package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// defaultIndexCacheTTL matches the observed behavior of the index page
// cache: entries live for 20 seconds unless flushed explicitly.
const defaultIndexCacheTTL = 20 * time.Second

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}

// AppPort returns the HTTP listen port, defaulting to 8080.
func AppPort() string {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// IndexCacheTTL returns the time-to-live for the cached index page.
func IndexCacheTTL() time.Duration {
	raw := os.Getenv("INDEX_CACHE_TTL_SECONDS")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return defaultIndexCacheTTL
	}
	return time.Duration(seconds) * time.Second
}
