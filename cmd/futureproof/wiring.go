package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/core/service"
	"github.com/futureproof/careerguide/internal/infrastructure/completion"
	"github.com/futureproof/careerguide/internal/infrastructure/db/memory"
	mongostore "github.com/futureproof/careerguide/internal/infrastructure/db/mongo"
	redisstore "github.com/futureproof/careerguide/internal/infrastructure/db/redis"
	"github.com/futureproof/careerguide/internal/infrastructure/db/sqlite"
	"github.com/futureproof/careerguide/internal/pkg/config"
)

// closeFunc releases a backend opened by openStore.
type closeFunc func(ctx context.Context) error

// openStore connects the configured KV backend.
func openStore(ctx context.Context, c config.StoreConfig, log zerolog.Logger) (ports.KVStore, closeFunc, error) {
	switch c.Backend {
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", c.Redis.Addr).Msg("redis store connected")
		return redisstore.NewKVStore(client), func(context.Context) error { return client.Close() }, nil

	case "mongo":
		kv, closeFn, err := mongostore.Open(ctx, mongostore.Config{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("database", c.Mongo.Database).Msg("mongo store connected")
		return kv, closeFn, nil

	case "sqlite":
		kv, err := sqlite.Open(ctx, c.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", c.SQLite.Path).Msg("sqlite store opened")
		return kv, func(context.Context) error { return kv.Close() }, nil

	case "memory":
		log.Warn().Msg("using in-memory store; state is lost on restart")
		return memory.NewKVStore(), func(context.Context) error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", c.Backend)
	}
}

// newCompleter builds the chat completion provider from configuration.
func newCompleter(ctx context.Context, c config.CompletionConfig, log zerolog.Logger) (ports.Completer, error) {
	retry := completion.DefaultRetryConfig()
	retry.MaxAttempts = c.MaxAttempts

	return completion.NewProvider(ctx, completion.Config{
		Provider:     c.Provider,
		Model:        c.Model,
		BaseURL:      c.BaseURL,
		OpenAIKey:    c.OpenAIKey,
		AnthropicKey: c.AnthropicKey,
		GeminiKey:    c.GeminiKey,
		Timeout:      c.Timeout,
		Retry:        retry,
	}, log)
}

func newChatService(ctx context.Context, c config.CompletionConfig, log zerolog.Logger) (ports.ChatService, error) {
	completer, err := newCompleter(ctx, c, log)
	if err != nil {
		return nil, err
	}
	return service.NewChatService(completer, service.ChatConfig{
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}, log.With().Str("component", "chat").Logger()), nil
}

// sessionSecret returns the configured secret or, outside production, an
// ephemeral one that invalidates sessions on restart.
func sessionSecret(c *config.Config, log zerolog.Logger) string {
	if c.Session.Secret != "" {
		return c.Session.Secret
	}
	log.Warn().Msg("SESSION_SECRET not set; using an ephemeral secret")
	return uuid.NewString()
}
