package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVICEDOCS_OUTPUT_DIR", "SERVICEDOCS_CATALOG_PATH", "SERVICEDOCS_LOG_LEVEL",
		"SERVICEDOCS_EXPORT", "MONGO_URI", "MONGO_DATABASE", "MONGO_COLLECTION",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.Export)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "servicedocs", cfg.Mongo.Database)
	assert.Equal(t, "ground_truth", cfg.Mongo.Collection)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICEDOCS_OUTPUT_DIR", "docs")
	t.Setenv("SERVICEDOCS_CATALOG_PATH", "catalog.yaml")
	t.Setenv("SERVICEDOCS_LOG_LEVEL", "debug")
	t.Setenv("SERVICEDOCS_EXPORT", "true")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DATABASE", "qa")
	t.Setenv("MONGO_COLLECTION", "truth")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "docs", cfg.OutputDir)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Export)
	assert.Equal(t, MongoConfig{URI: "mongodb://mongo:27017", Database: "qa", Collection: "truth"}, cfg.Mongo)
}

func TestFromEnv_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICEDOCS_LOG_LEVEL", "loud")
	_, err := FromEnv()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("SERVICEDOCS_EXPORT", "sometimes")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SERVICEDOCS_OUTPUT_DIR")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVICEDOCS_OUTPUT_DIR=from-dotenv\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.OutputDir)
}
