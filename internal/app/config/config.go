package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	CORSAllowOrigin string
	LogLevel        string
	LogFormat       string
	FontDir         string
	SessionTTL      time.Duration
	MaxUploadBytes  int64
	NotifyKeep      int
}

var defaults = map[string]any{
	"HTTP_ADDR":         ":8080",
	"DATABASE_URL":      "",
	"CORS_ALLOW_ORIGIN": "*",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
	"FONT_DIR":          "",
	"SESSION_TTL":       "12h",
	"MAX_UPLOAD_BYTES":  10 << 20,
	"NOTIFY_KEEP":       20,
}

// Load reads a .env file if present, then an optional quotation.yaml from the
// working directory or ./configs, then the environment. Later sources win.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigName("quotation")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		FontDir:         v.GetString("FONT_DIR"),
		SessionTTL:      v.GetDuration("SESSION_TTL"),
		MaxUploadBytes:  v.GetInt64("MAX_UPLOAD_BYTES"),
		NotifyKeep:      v.GetInt("NOTIFY_KEEP"),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, errors.New("HTTP_ADDR must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %q", v.GetString("SESSION_TTL"))
	}
	if cfg.MaxUploadBytes <= 0 {
		return Config{}, errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	return cfg, nil
}
