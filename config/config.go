package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	APIURL            string        `envconfig:"API_URL"             default:"http://localhost:3005"`
	Port              string        `envconfig:"BACKOFFICE_PORT"     default:":8080"`
	LogLevel          string        `envconfig:"LOG_LEVEL"           default:"info"`
	APITimeout        time.Duration `envconfig:"API_TIMEOUT"         default:"10s"`
	ProductsPageLimit int           `envconfig:"PRODUCTS_PAGE_LIMIT" default:"10"`
	RedirectDelay     time.Duration `envconfig:"REDIRECT_DELAY"      default:"2s"`
	SessionCookie     string        `envconfig:"SESSION_COOKIE"      default:"token"`
	SessionSecret     string        `envconfig:"SESSION_SECRET"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads .env (when present) and the environment once.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: API URL=%s, Port=%s, LogLevel=%s", config.APIURL, config.Port, config.LogLevel)
		if config.SessionSecret == "" {
			logger.Warn("Configuration: SESSION_SECRET is not set, session tokens are read without signature check")
		}
	})
	return &config
}

// Process reads the configuration from the environment only.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.ProductsPageLimit <= 0 {
		cfg.ProductsPageLimit = 10
	}
	return &cfg, nil
}
