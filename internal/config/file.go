package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

var ErrConfigExists = errors.New("config file already exists")

const (
	fileMode = 0o600
	dirMode  = 0o700
)

type fileSchema struct {
	Telegram telegramSchema `toml:"telegram"`
	Access   accessSchema   `toml:"access"`
	Links    linksSchema    `toml:"links"`
	Texts    textsSchema    `toml:"texts"`
	Log      logSchema      `toml:"log"`
	Metrics  metricsSchema  `toml:"metrics"`
}

type telegramSchema struct {
	TokenSecret string `toml:"token_secret" comment:"pass / file secret key holding the bot token; telegram.token or BOT_TOKEN override it"`
	PollTimeout int    `toml:"poll_timeout"`
	ChunkSize   int    `toml:"chunk_size"`
	Debug       bool   `toml:"debug"`
}

type accessSchema struct {
	Admins   []int64 `toml:"admins" comment:"user ids allowed to run commands"`
	Excluded []int64 `toml:"excluded" comment:"user ids never listed or muted; /exclude adds to the roster file instead"`
}

type linksSchema struct {
	Hosts []string `toml:"hosts"`
}

type textsSchema struct {
	Rules string `toml:"rules,multiline"`
	Slots string `toml:"slots,multiline"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format" comment:"json or console"`
}

type metricsSchema struct {
	Listen string `toml:"listen" comment:"host:port for /metrics, empty disables"`
}

// DefaultFile renders the starter config written by `config init`.
func DefaultFile(admins []int64) ([]byte, error) {
	if admins == nil {
		admins = []int64{}
	}

	data, err := toml.Marshal(fileSchema{
		Telegram: telegramSchema{TokenSecret: DefaultTokenSecret, PollTimeout: 60, ChunkSize: 3900},
		Access:   accessSchema{Admins: admins, Excluded: []int64{}},
		Links:    linksSchema{Hosts: []string{"x.com"}},
		Texts:    textsSchema{Rules: DefaultRules, Slots: DefaultSlots},
		Log:      logSchema{Level: "info", Format: "json"},
	})
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}
	return data, nil
}

// WriteDefault writes the starter config to path through a temp file and a
// rename. An existing file is kept unless force is set.
func WriteDefault(path string, admins []int64, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := DefaultFile(admins)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}
