package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	// GitHub: App-авторизация имеет приоритет, если заданы все три значения,
	// иначе используется статический токен.
	GithubAppID            string
	GithubInstallationID   string
	GithubPrivateKeyBase64 string
	GithubToken            string
	GithubAPIURL           string

	GeminiAPIKey string
	GeminiModel  string
	GeminiAPIURL string

	StorageEndpoint  string
	StorageBucket    string
	StorageToken     string
	StoragePublicURL string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "mission_review"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		GithubAppID:            getEnv("GITHUB_APP_ID", ""),
		GithubInstallationID:   getEnv("GITHUB_INSTALLATION_ID", ""),
		GithubPrivateKeyBase64: getEnv("GITHUB_PRIVATE_KEY_BASE64", ""),
		GithubToken:            getEnv("GITHUB_TOKEN", ""),
		GithubAPIURL:           getEnv("GITHUB_API_URL", "https://api.github.com"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiAPIURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", "uploads"),
		StorageToken:     getEnv("STORAGE_TOKEN", ""),
		StoragePublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
