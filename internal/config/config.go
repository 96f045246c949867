package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	DungeonFile  string // empty means the built-in dungeon
	DungeonDir   string
	Seed         int64
	GeminiAPIKey string
	LogLevel     string
	LogFormat    string
	LogFile      string
}

// LoadConfig loads the configuration from environment variables.
// DUNGEON names a file in DUNGEON_DIR and is overridden by DUNGEON_FILE.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DungeonDir:   getenv("DUNGEON_DIR", "dungeons"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
		LogFile:      os.Getenv("LOG_FILE"),
		Seed:         time.Now().UnixNano(),
	}

	if name := os.Getenv("DUNGEON"); name != "" {
		cfg.DungeonFile = filepath.Join(cfg.DungeonDir, name+".yaml")
	}
	if path := os.Getenv("DUNGEON_FILE"); path != "" {
		cfg.DungeonFile = path
	}

	if s := os.Getenv("DUNGEON_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("DUNGEON_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
