package conf

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultPort           = 5000
	DefaultListenAddr     = "0.0.0.0"
	DefaultMaxSubmissions = 1000
)

// Config holds everything the server needs at startup. Values come from an
// optional TOML file first, then environment variables on top.
type Config struct {
	ListenAddr string `toml:"listen_addr"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug"`

	// SecretKey signs flash-notice cookies. Never persisted to the TOML
	// file template; env only in deployments.
	SecretKey string `toml:"secret_key"`

	// AdminPwdBcrypt is the bcrypt hash that gates the clear-all action.
	// Empty means the action is refused.
	AdminPwdBcrypt string `toml:"admin_password_hash"`

	MaxSubmissions int `toml:"max_submissions"`
}

// Load builds the config from the optional TOML file at TOPFIVE_CONFIG and
// the environment. A missing secret key gets a random per-process value so
// flash cookies still work, at the cost of not surviving restarts.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     DefaultListenAddr,
		Port:           DefaultPort,
		MaxSubmissions: DefaultMaxSubmissions,
	}

	if path := os.Getenv("TOPFIVE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.AdminPwdBcrypt = v
	}
	if v := os.Getenv("MAX_SUBMISSIONS"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MAX_SUBMISSIONS %q: %w", v, err)
		}
		cfg.MaxSubmissions = limit
	}

	if cfg.MaxSubmissions <= 0 {
		return Config{}, fmt.Errorf(
			"max submissions must be positive, got %d", cfg.MaxSubmissions)
	}

	if cfg.SecretKey == "" {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return Config{}, fmt.Errorf("generate fallback secret key: %w", err)
		}
		cfg.SecretKey = hex.EncodeToString(key)
		slog.Warn("SECRET_KEY is not set, using a random per-process key; " +
			"flash notices will not survive a restart")
	}

	return cfg, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.ListenAddr, c.Port)
}
