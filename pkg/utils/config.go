package utils

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Seed     SeedConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// SeedConfig carries the staff seed passwords; defaults are for development
// only and must be overridden in production.
type SeedConfig struct {
	AdminPassword      string
	SuperadminPassword string
}

type CORSConfig struct {
	Origins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "marrakech-tours")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("ADMIN_PASSWORD", "ChangeMe123!")
	viper.SetDefault("SUPERADMIN_PASSWORD", "ChangeMe123!")
	viper.SetDefault("CLIENT_URL", "http://localhost:5173")

	// .env is optional; environment variables alone are enough.
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	origins := strings.Split(viper.GetString("CLIENT_URL"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Seed: SeedConfig{
			AdminPassword:      viper.GetString("ADMIN_PASSWORD"),
			SuperadminPassword: viper.GetString("SUPERADMIN_PASSWORD"),
		},
		CORS: CORSConfig{
			Origins: origins,
		},
	}

	return config, nil
}
