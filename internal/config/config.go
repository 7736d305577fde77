// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config captures runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Paths     PathsConfig
	Analytics AnalyticsConfig
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	CMSURL    string `env:"CMS_BASE_URL"`
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr            string        `env:"MAPRA_ADDR"`
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"MAPRA_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"MAPRA_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"MAPRA_IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout  time.Duration `env:"MAPRA_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"MAPRA_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig describes the public site.
type SiteConfig struct {
	Env     string `env:"MAPRA_ENV" envDefault:"local"`
	Dev     bool   `env:"MAPRA_DEV"`
	BaseURL string `env:"MAPRA_BASE_URL" envDefault:"https://marcelapedrosa.com"`
}

// PathsConfig locates templates, assets and content on disk.
type PathsConfig struct {
	Templates string `env:"MAPRA_TEMPLATES_DIR" envDefault:"templates"`
	Public    string `env:"MAPRA_PUBLIC_DIR" envDefault:"public"`
	Locales   string `env:"MAPRA_LOCALES_DIR" envDefault:"locales"`
	Content   string `env:"MAPRA_CONTENT_DIR" envDefault:"content"`
}

// AnalyticsConfig holds optional tag ids.
type AnalyticsConfig struct {
	GAMeasurementID string `env:"MAPRA_GA_MEASUREMENT_ID"`
	GTMContainerID  string `env:"MAPRA_GTM_CONTAINER_ID"`
}

// Option adjusts loading.
type Option func(*loadOptions)

type loadOptions struct {
	envFiles []string
	environ  map[string]string
}

// WithEnvFiles overrides the dotenv files consulted. Missing files are ignored.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = files }
}

// WithEnvironment replaces the process environment, mainly for tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *loadOptions) { o.environ = vars }
}

// Load reads optional dotenv files, then parses the environment into Config.
// Variables already set in the environment win over dotenv values.
func Load(opts ...Option) (Config, error) {
	o := loadOptions{envFiles: []string{defaultEnvFile}}
	for _, opt := range opts {
		opt(&o)
	}
	for _, f := range o.envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	envOpts := env.Options{}
	if o.environ != nil {
		envOpts.Environment = o.environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr resolves the HTTP listen address.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Server.Addr); addr != "" {
		return addr
	}
	return ":" + c.Server.Port
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: MAPRA_BASE_URL must be an absolute URL, got %q", c.Site.BaseURL)
	}
	if c.CMSURL != "" {
		if u, err := url.Parse(c.CMSURL); err != nil || u.Scheme == "" {
			return fmt.Errorf("config: CMS_BASE_URL must be an absolute URL, got %q", c.CMSURL)
		}
	}
	return nil
}

// IsProduction reports whether the site runs in production.
func (c Config) IsProduction() bool {
	return c.Site.Env == "prod" || c.Site.Env == "production"
}

func (c *Config) normalize() {
	c.Site.BaseURL = strings.TrimRight(strings.TrimSpace(c.Site.BaseURL), "/")
	c.Site.Env = strings.ToLower(strings.TrimSpace(c.Site.Env))
	c.CMSURL = strings.TrimSpace(c.CMSURL)
}
