package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultAPIBaseURL = "http://127.0.0.1:8000/api/v1"

type Config struct {
	Server ServerConfig
	API    APIConfig
	Upload UploadConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// APIConfig points at the remote inventory REST API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Origin is the scheme and host of BaseURL. Uploaded files are served
// from there under /media/.
func (c APIConfig) Origin() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

type UploadConfig struct {
	MaxBytes int64
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("UPLOAD_MAX_BYTES", 32<<20)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
	}

	maxBytes := v.GetInt64("UPLOAD_MAX_BYTES")
	if maxBytes <= 0 {
		maxBytes = 32 << 20
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Timeout: timeout,
		},
		Upload: UploadConfig{
			MaxBytes: maxBytes,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
