package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/linkdrop-bot/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/linkdrop-bot/internal/adapters/repo/toml"
	chainstore "github.com/bnema/linkdrop-bot/internal/adapters/secrets/chain"
	"github.com/bnema/linkdrop-bot/internal/config"
	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/bnema/linkdrop-bot/internal/logger"
	"github.com/bnema/linkdrop-bot/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var errTokenNotConfigured = errors.New("telegram bot token is not configured: set BOT_TOKEN, telegram.token or run `linkbot token set`")

type app struct {
	cfg         config.Config
	log         zerolog.Logger
	secretStore ports.SecretStore
	roster      *tomlrepo.RosterRepository
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(os.Stderr, logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	roster, err := tomlrepo.NewRosterRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire roster repository: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(dir, "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:         cfg,
		log:         log,
		secretStore: secretStore,
		roster:      roster,
	}, nil
}

// resolveToken prefers an explicit token from config or environment over
// the secret store. A token that is simply absent is not an error.
func (a *app) resolveToken(ctx context.Context) (string, string, error) {
	if a.cfg.Telegram.Token != "" {
		return a.cfg.Telegram.Token, summary.TokenFromConfig, nil
	}

	token, err := a.secretStore.Get(ctx, a.cfg.Telegram.TokenSecret)
	if err != nil {
		if errors.Is(err, ports.ErrSecretNotFound) {
			return "", summary.TokenMissing, nil
		}
		return "", summary.TokenMissing, fmt.Errorf("read bot token from secret store: %w", err)
	}
	return token, summary.TokenFromSecret, nil
}

// excludedUsers merges the configured list with the persisted roster.
func (a *app) excludedUsers(ctx context.Context) ([]domain.UserID, error) {
	roster, err := a.roster.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	set := domain.NewUserSet(a.cfg.Access.Excluded...)
	for _, userID := range roster.Excluded {
		set.Add(userID)
	}
	return set.Sorted(), nil
}
