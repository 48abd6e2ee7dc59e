package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string
	CORSOrigin string

	// Catalog source selection: csv (default), sqlite or postgres.
	CatalogSource string
	DataFile      string
	SQLitePath    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	DefaultTopN int
	MaxTopN     int
	SearchLimit int
}

var GlobalConfig *Config

func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("ENV", "development")

	defaultTopN := getEnvInt("RECOMMEND_DEFAULT_TOP_N", 10)
	maxTopN := getEnvInt("RECOMMEND_MAX_TOP_N", 50)
	searchLimit := getEnvInt("SEARCH_RESULT_LIMIT", 50)

	// Set DB defaults based on environment
	var dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode string
	if env == "production" {
		dbHost = getEnv("DB_HOST", "")
		dbPort = getEnv("DB_PORT", "5432")
		dbUser = getEnv("DB_USER", "")
		dbPassword = getEnv("DB_PASSWORD", "")
		dbName = getEnv("DB_NAME", "music_app")
		dbSSLMode = getEnv("DB_SSLMODE", "require")
	} else {
		dbHost = getEnv("DB_HOST", "localhost")
		dbPort = getEnv("DB_PORT", "5432")
		dbUser = getEnv("DB_USER", "postgres")
		dbPassword = getEnv("DB_PASSWORD", "password")
		dbName = getEnv("DB_NAME", "music_app")
		dbSSLMode = getEnv("DB_SSLMODE", "disable")
	}

	GlobalConfig = &Config{
		Env:        env,
		ServerPort: getEnv("SERVER_PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", ""),

		CatalogSource: getEnv("CATALOG_SOURCE", "csv"),
		DataFile:      getEnv("MUSIC_DATA_FILE", "music_data.csv"),
		SQLitePath:    getEnv("SQLITE_PATH", "music_data.db"),

		DBHost:     dbHost,
		DBPort:     dbPort,
		DBUser:     dbUser,
		DBPassword: dbPassword,
		DBName:     dbName,
		DBSSLMode:  dbSSLMode,

		DefaultTopN: defaultTopN,
		MaxTopN:     maxTopN,
		SearchLimit: searchLimit,
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
