package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	HandlerServer    = "server"
	HandlerScraper   = "scraper"
	HandlerScheduler = "scheduler"
)

type Config struct {
	Handler     string        `env:"_HANDLER" envDefault:"server"`
	Region      string        `env:"AWS_REGION"`
	BucketName  string        `env:"BUCKET_NAME"`
	PokeApiUrl  string        `env:"POKEAPI_URL" envDefault:"https://pokeapi.co/api/v2/pokemon"`
	PageSize    int32         `env:"PAGE_SIZE" envDefault:"10"`
	SearchLimit int32         `env:"SEARCH_LIMIT" envDefault:"1000"`
	ListenAddr  string        `env:"LISTEN_ADDR" envDefault:":8080"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadDotEnv reads variables from the given files if they exist. Variables
// already set in the environment win.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Handler {
	case HandlerServer, HandlerScheduler:
	case HandlerScraper:
		if c.BucketName == "" {
			return errors.New("BUCKET_NAME is required for the scraper handler")
		}
	default:
		return fmt.Errorf("unknown handler %q", c.Handler)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.SearchLimit < c.PageSize {
		return fmt.Errorf("SEARCH_LIMIT %d is smaller than PAGE_SIZE %d", c.SearchLimit, c.PageSize)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}
