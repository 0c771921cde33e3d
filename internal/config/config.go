package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the API process reads from the environment.
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	StorageBaseURL    string
	LowStockThreshold int
	RunMigrations     bool
	AdminEmail        string
	AdminPassword     string
}

// Load reads configuration from environment variables with development defaults.
// Call godotenv.Load before this if a .env file should be honoured.
func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		StorageBaseURL:    strings.TrimRight(os.Getenv("STORAGE_BASE_URL"), "/"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
		RunMigrations:     getEnvBool("MIGRATIONS"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.DatabaseURL == "" {
		// URL form so golang-migrate can use it as well
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(getEnv("DB_USER", "postgres"), os.Getenv("DB_PASSWORD")),
			Host:     fmt.Sprintf("%s:%s", getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
			Path:     "/" + getEnv("DB_NAME", "sales_admin"),
			RawQuery: url.Values{"sslmode": {"disable"}, "TimeZone": {getEnv("DB_TIMEZONE", "Asia/Kolkata")}}.Encode(),
		}
		cfg.DatabaseURL = dsn.String()
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		log.Printf("invalid PORT value %q, defaulting to 3000", cfg.Port)
		cfg.Port = "3000"
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET not set, using the development default")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("invalid %s value %q, defaulting to %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
