package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment.
type Config struct {
	DBPath      string
	Addr        string
	LogUseCases bool
	GinMode     string
}

// DefaultConfig returns the settings used when nothing is configured.
// The database lives under ~/.promotrack unless home is empty.
func DefaultConfig(home string) Config {
	dbPath := "promotrack.db"
	if home != "" {
		dbPath = filepath.Join(home, ".promotrack", "promotrack.db")
	}
	return Config{
		DBPath:  dbPath,
		Addr:    ":8080",
		GinMode: "release",
	}
}

// Load reads dotenv files (default ".env") into the environment without
// overriding variables that are already set, then builds a Config from
// PROMOTRACK_* variables. Missing dotenv files are not an error.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	home, _ := os.UserHomeDir()
	cfg := DefaultConfig(home)

	if v := os.Getenv("PROMOTRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PROMOTRACK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PROMOTRACK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PROMOTRACK_GIN_MODE"); v != "" {
		switch v {
		case "debug", "release", "test":
			cfg.GinMode = v
		}
	}
	return cfg, nil
}
