package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/keep-objectives/internal/config"
	"github.com/KirkDiggler/keep-objectives/internal/entities/option"
	"github.com/KirkDiggler/keep-objectives/internal/errors"
	"github.com/KirkDiggler/keep-objectives/internal/games/catalog"
	"github.com/KirkDiggler/keep-objectives/internal/orchestrators/objectives"
	"github.com/KirkDiggler/keep-objectives/internal/pkg/logger"
	"github.com/KirkDiggler/keep-objectives/internal/redis"
	"github.com/KirkDiggler/keep-objectives/internal/repositories/profiles"
)

// app holds everything a command needs; close releases it
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	service objectives.Service
	closers []func() error
}

func newApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	mode, level := cfg.Log.Mode, cfg.Log.Level
	if flags.logMode != "" {
		mode = flags.logMode
	}
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	log, err := logger.New(mode, level)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, func() error {
		_ = log.Sync() // nolint:errcheck // safe to ignore in cleanup
		return nil
	})

	registry, err := catalog.NewRegistry()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build game registry")
	}

	var repo profiles.Repository
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
			UseTLS:   cfg.Redis.UseTLS,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)

		if err := redis.Ping(ctx, client); err != nil {
			a.close()
			return nil, err
		}

		repo, err = profiles.NewRedisRepository(&profiles.Config{
			Client: client,
			TTL:    cfg.Redis.ProfileTTL,
		})
		if err != nil {
			a.close()
			return nil, err
		}
		log.Debug("profile storage enabled", zap.String("addr", cfg.Redis.Addr))
	}

	service, err := objectives.New(&objectives.Config{
		Registry:    registry,
		ProfileRepo: repo,
		Logger:      log,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.service = service

	return a, nil
}

// close runs the closers in reverse order
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("failed to release resource", zap.Error(err))
		}
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}

// withApp builds the app for a command, runs fn and releases it
func withApp(cmd *cobra.Command, flags *rootFlags, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close()

	return fn(ctx, a)
}

func warningStrings(warnings []option.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}
