package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Activity ActivityConfig
	GitHub   GitHubConfig
	Workers  WorkersConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

type SessionConfig struct {
	Secret string
}

// ActivityConfig selects where contribution counts come from.
// Source is "random" (demo generator) or "stored" (imported log).
type ActivityConfig struct {
	Source   string
	MaxCount int
	Seed     int64
}

type GitHubConfig struct {
	Token               string
	Username            string
	Repositories        []string
	SyncIntervalMinutes int
}

// Enabled reports whether enough is configured to import activity from GitHub.
func (c GitHubConfig) Enabled() bool {
	return c.Token != "" && c.Username != "" && len(c.Repositories) > 0
}

type WorkersConfig struct {
	ActivitySync int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./gexplore.db"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default-secret-key"),
		},
		Activity: ActivityConfig{
			Source:   getEnv("ACTIVITY_SOURCE", "random"),
			MaxCount: getEnvAsInt("ACTIVITY_MAX_COUNT", 4),
			Seed:     getEnvAsInt64("ACTIVITY_SEED", 0),
		},
		GitHub: GitHubConfig{
			Token:               getEnv("GITHUB_TOKEN", ""),
			Username:            getEnv("GITHUB_USERNAME", ""),
			Repositories:        getEnvAsList("GITHUB_REPOSITORIES"),
			SyncIntervalMinutes: getEnvAsInt("GITHUB_SYNC_INTERVAL_MINUTES", 360),
		},
		Workers: WorkersConfig{
			ActivitySync: getEnvAsInt("ACTIVITY_SYNC_WORKERS", 1),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var values []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
