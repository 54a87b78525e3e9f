package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseName  string
	SQLitePath    string
	SessionSecret string
	TemplatesDir  string
}

func LoadConfig() (*Config, error) {
	// A .env file is optional; real environment variables always win.
	_ = godotenv.Load()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = "gotodo"
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		// Default to a data directory in the current directory
		sqlitePath = filepath.Join("data", fmt.Sprintf("%s.db", databaseName))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	templatesDir := os.Getenv("TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "templates"
	}

	return &Config{
		Port:          port,
		DatabaseName:  databaseName,
		SQLitePath:    sqlitePath,
		SessionSecret: sessionSecret,
		TemplatesDir:  templatesDir,
	}, nil
}
