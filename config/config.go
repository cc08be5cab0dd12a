package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL   string
	MongoURL      string
	MongoDB       string
	DBType        string
	Port          string
	SessionSecret string
	AdminUsername string
	AdminPassword string
	UploadDir     string
	PDFDir        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		MongoURL:      os.Getenv("MONGO_URL"),
		MongoDB:       os.Getenv("MONGO_DB"),
		DBType:        os.Getenv("DB_TYPE"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		PDFDir:        os.Getenv("PDF_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "mongo"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "yosemite"
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "11"
	}
	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET not set, session cookies will be signed with an empty key")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "public/image"
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = "pdfs"
	}
	return cfg
}
