// Package config loads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the generator settings.
type Config struct {
	OutputDir   string
	CatalogPath string
	LogLevel    log.Level
	Export      bool
	Mongo       MongoConfig
}

// MongoConfig locates the ground-truth export collection.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// Load reads .env from the working directory when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		OutputDir:   "output",
		CatalogPath: os.Getenv("SERVICEDOCS_CATALOG_PATH"),
		LogLevel:    log.InfoLevel,
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "servicedocs",
			Collection: "ground_truth",
		},
	}

	if dir := os.Getenv("SERVICEDOCS_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if level := os.Getenv("SERVICEDOCS_LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVICEDOCS_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = parsed
	}
	if v := os.Getenv("SERVICEDOCS_EXPORT"); v != "" {
		export, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVICEDOCS_EXPORT: %w", err)
		}
		cfg.Export = export
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if name := os.Getenv("MONGO_DATABASE"); name != "" {
		cfg.Mongo.Database = name
	}
	if name := os.Getenv("MONGO_COLLECTION"); name != "" {
		cfg.Mongo.Collection = name
	}

	return cfg, nil
}
