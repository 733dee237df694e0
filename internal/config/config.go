package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Client   ClientConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadDir          string
	ShareWorkerURL     string
}

type DatabaseConfig struct {
	Path string
}

type ClientConfig struct {
	ServerURL   string
	SnapGrid    int
	LogFilePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "pinboard-server.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
			ShareWorkerURL:     getEnv("SHARE_WORKER_URL", ""),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "pinboard.db"),
		},
		Client: ClientConfig{
			ServerURL:   getEnv("PINBOARD_SERVER", "http://localhost:3000"),
			SnapGrid:    getEnvAsInt("SNAP_GRID", 20),
			LogFilePath: getEnv("CLIENT_LOG_FILE_PATH", "pinboard-client.log"),
		},
	}
}

func (c *Config) IsProd() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
