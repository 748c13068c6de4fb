// Command creator drives the music creator API from a terminal, keeping
// presets and the last results in a local SQLite store.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	defaultServer = "http://localhost:8080"
	storeFile     = "creator.db"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultStorePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "music-creator", storeFile)
	}
	return storeFile
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
