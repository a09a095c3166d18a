package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	Env        string
	MongoURI   string
	DBUsername string
	DBPassword string
	DBHost     string
	DBName     string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "5000"),
		Env:        getEnv("ENV", "development"),
		MongoURI:   getEnv("MONGODB_URI", ""),
		DBUsername: getEnv("DB_USERNAME", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "cluster0.dwmxail.mongodb.net"),
		DBName:     getEnv("DB_NAME", "gadgetverse_db"),
	}
}

// DatabaseURI returns the connection string, preferring an explicit
// MONGODB_URI over one assembled from the credential parts.
func (c *Config) DatabaseURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?appName=Cluster0", c.DBUsername, c.DBPassword, c.DBHost)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
