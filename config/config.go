package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/bookhive/bookhive-service/pkg/auth"
	"github.com/bookhive/bookhive-service/pkg/cache"
	"github.com/bookhive/bookhive-service/pkg/logger"
	"github.com/bookhive/bookhive-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Catalog struct {
	GoogleBooksBaseURL string        `envconfig:"GOOGLE_BOOKS_BASE_URL" default:"https://www.googleapis.com/books/v1"`
	GoogleBooksAPIKey  string        `envconfig:"GOOGLE_BOOKS_API_KEY"`
	NYTBaseURL         string        `envconfig:"NYT_BOOKS_BASE_URL" default:"https://api.nytimes.com/svc/books/v3"`
	NYTAPIKey          string        `envconfig:"NYT_BOOKS_API_KEY"`
	Timeout            time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

type Gemini struct {
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	APIKey  string        `envconfig:"GOOGLE_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash-latest"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
}

type Twilio struct {
	BaseURL    string        `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	AccountSID string        `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken  string        `envconfig:"TWILIO_AUTH_TOKEN"`
	FromNumber string        `envconfig:"TWILIO_PHONE_NUMBER"`
	Timeout    time.Duration `envconfig:"TWILIO_TIMEOUT" default:"10s"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Cache    cache.Config `yaml:"cache"`
	Catalog  Catalog      `yaml:"catalog"`
	Gemini   Gemini       `yaml:"gemini"`
	Twilio   Twilio       `yaml:"twilio"`
	JWT      auth.Config  `yaml:"jwt"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}
