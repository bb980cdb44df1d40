package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session        SessionConfig
	Store          StoreConfig
	Recommendation RecommendationConfig
	Completion     CompletionConfig
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=24h"`
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=memory"`
	Mongo   MongoConfig
	Redis   RedisConfig
	SQLite  SQLiteConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=futureproof"`
	Collection string `env:"MONGO_COLLECTION, default=session_documents"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=data/futureproof.db"`
}

type RecommendationConfig struct {
	Latency time.Duration `env:"RECOMMENDATION_LATENCY, default=1s"`
}

type CompletionConfig struct {
	Provider     string        `env:"COMPLETION_PROVIDER,     default=openai"`
	Model        string        `env:"COMPLETION_MODEL"`
	BaseURL      string        `env:"COMPLETION_BASE_URL"`
	OpenAIKey    string        `env:"OPENAI_API_KEY"`
	AnthropicKey string        `env:"ANTHROPIC_API_KEY"`
	GeminiKey    string        `env:"GEMINI_API_KEY"`
	Temperature  float64       `env:"COMPLETION_TEMPERATURE,  default=0.7"`
	MaxTokens    int           `env:"COMPLETION_MAX_TOKENS,   default=500"`
	Timeout      time.Duration `env:"COMPLETION_TIMEOUT,      default=0s"`
	MaxAttempts  int           `env:"COMPLETION_MAX_ATTEMPTS, default=1"`
}

var storeBackends = []string{"memory", "redis", "mongo", "sqlite"}

var completionProviders = []string{"openai", "anthropic", "gemini", "mock"}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// MustLoad is Load for main packages.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) validate() error {
	c.Store.Backend = strings.ToLower(c.Store.Backend)
	c.Completion.Provider = strings.ToLower(c.Completion.Provider)

	if !contains(storeBackends, c.Store.Backend) {
		return fmt.Errorf("STORE_BACKEND must be one of %s, got %q", strings.Join(storeBackends, "|"), c.Store.Backend)
	}
	if !contains(completionProviders, c.Completion.Provider) {
		return fmt.Errorf("COMPLETION_PROVIDER must be one of %s, got %q", strings.Join(completionProviders, "|"), c.Completion.Provider)
	}
	if c.IsProduction() && c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required when ENV=production")
	}
	if c.Completion.MaxAttempts < 1 {
		c.Completion.MaxAttempts = 1
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
