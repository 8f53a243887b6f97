package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary config file
	tempFile, err := os.CreateTemp("", "config.env")
	if err != nil {
		t.Fatalf("Failed to create temporary config file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	configData := []byte(`
PORT=:8080
ENVIRONMENT=development
VERSION=1.0.0
API_BASE_URL=https://api.example.com/v1
API_TIMEOUT=10s
CACHE_TTL=5m
`)
	if _, err := tempFile.Write(configData); err != nil {
		t.Fatalf("Failed to write test configuration to temporary file: %v", err)
	}

	config, err := loadConfig(tempFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, ":8080", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "1.0.0", config.Version)
	assert.Equal(t, "https://api.example.com/v1", config.APIBaseURL)
	assert.Equal(t, 10*time.Second, config.APITimeout)
	assert.Equal(t, 5*time.Minute, config.CacheTTL)
}

func TestLoadConfigDefaults(t *testing.T) {
	tempFile, err := os.CreateTemp("", "config.env")
	if err != nil {
		t.Fatalf("Failed to create temporary config file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write([]byte("API_BASE_URL=https://api.example.com/v1\n")); err != nil {
		t.Fatalf("Failed to write test configuration to temporary file: %v", err)
	}

	config, err := loadConfig(tempFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, ":4000", config.Port)
	assert.Equal(t, 5*time.Minute, config.CacheTTL)
}
