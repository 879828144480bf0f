package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config of the command line client, read from TAUTHY_* variables and an optional .env file.
type Config struct {
	Addr      string        `envconfig:"ADDR" default:"localhost:8080"`
	Token     string        `envconfig:"TOKEN"`
	TokenFile string        `envconfig:"TOKEN_FILE"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"90s"`
	Colours   bool          `envconfig:"COLOURS" default:"true"`
	// offline classification
	ModelPath          string `envconfig:"MODEL_PATH"`
	ThaiDictionaryPath string `envconfig:"THAI_DICTIONARY_PATH"`
	MinTokens          int    `envconfig:"MIN_TOKENS" default:"5"`
}

func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("tauthy", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("locate home directory: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".tauthy", "token")
	}
	return cfg, nil
}

// SavedToken returns TAUTHY_TOKEN, or the token left by the last login.
func (c Config) SavedToken() string {
	if c.Token != "" {
		return c.Token
	}
	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (c Config) SaveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(c.TokenFile, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}
