// config.go
// Environment-backed configuration for the skrafl-engine server and
// CLI entrypoints.

package config

import (
	"bufio"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the values the server and persistence layer need at
// startup. All fields come from the environment, optionally loaded
// from a .env file first.
type Config struct {
	Port               string
	AccessKey          string
	DatastoreProjectID string
	WordListPath       string
}

// Load reads a .env file if one is present (a missing file is not an
// error) and then populates Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	cfg := &Config{
		Port:               os.Getenv("PORT"),
		AccessKey:          os.Getenv("ACCESS_KEY"),
		DatastoreProjectID: os.Getenv("DATASTORE_PROJECT_ID"),
		WordListPath:       os.Getenv("WORD_LIST_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// defaultWordList is used when no WordListPath is configured, enough
// to smoke-test move generation without a real dictionary on hand.
var defaultWordList = []string{
	"CAT", "CATS", "DOG", "DOGS", "BAT", "BATS", "RAT", "RATS",
	"TAR", "TARS", "ART", "ARTS", "STAR", "STARE", "RATE", "RATES",
	"TEA", "TEAS", "SEAT", "EAT", "EATS", "ATE",
}

// LoadWords reads one word per line from cfg.WordListPath, or returns
// the built-in smoke-test word list if no path is configured.
func (cfg *Config) LoadWords() ([]string, error) {
	if cfg.WordListPath == "" {
		return defaultWordList, nil
	}
	f, err := os.Open(cfg.WordListPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := scanner.Text(); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}
