package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultListenAddr     = ":8080"
	defaultDatabaseURL    = "dms.db"
	defaultUploadDir      = "uploads"
	defaultMaxUploadBytes = 16 << 20 // 16 MiB
)

type Config struct {
	ListenAddr     string
	DatabaseURL    string
	SessionSecret  string
	UploadDir      string
	MaxUploadBytes int64
}

// Load reads configuration from the environment, applying defaults.
// When SESSION_SECRET is unset a random per-process secret is generated,
// which means sessions do not survive a restart.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
	}

	cfg.SessionSecret = strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if cfg.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
	}

	maxUpload := getEnv("MAX_UPLOAD_BYTES", "")
	if maxUpload == "" {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	} else {
		n, err := strconv.ParseInt(maxUpload, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES %q", maxUpload)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func randomSecret() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
