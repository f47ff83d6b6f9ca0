package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed explicitly to the layers
// that need it; there is no ambient global configuration.
type Config struct {
	Host         string
	Port         int
	SecretKey    string
	GoogleAPIKey string
	GeminiModel  string
	SQLitePath   string

	// SecretGenerated marks a per-process random secret: every existing
	// session becomes invalid on restart until SECRET_KEY is pinned.
	SecretGenerated bool
}

// Load reads configuration from the environment. The Gemini API key is
// the only required setting; everything else has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("SQLITE_PATH", "users.db")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	cfg := &Config{
		Host:         v.GetString("HOST"),
		Port:         v.GetInt("PORT"),
		SecretKey:    v.GetString("SECRET_KEY"),
		GoogleAPIKey: v.GetString("GOOGLE_API_KEY"),
		GeminiModel:  v.GetString("GEMINI_MODEL"),
		SQLitePath:   v.GetString("SQLITE_PATH"),
	}
	if cfg.GoogleAPIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY environment variable is required")
	}
	if cfg.SecretKey == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		cfg.SecretKey = hex.EncodeToString(raw)
		cfg.SecretGenerated = true
	}
	return cfg, nil
}
