package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/linkbot"
	envPrefix  = "LINKBOT"

	KeyToken       = "telegram.token"
	KeyTokenSecret = "telegram.token_secret"
	KeyPollTimeout = "telegram.poll_timeout"
	KeyDebug       = "telegram.debug"
	KeyChunkSize   = "telegram.chunk_size"
	KeyAdmins      = "access.admins"
	KeyExcluded    = "access.excluded"
	KeyRosterPath  = "roster.path"
	KeyLinkHosts   = "links.hosts"
	KeyRules       = "texts.rules"
	KeySlots       = "texts.slots"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyMetrics     = "metrics.listen"

	DefaultTokenSecret = "linkbot/telegram_token"
	maxChunkSize       = 4096
)

// legacyEnv maps keys to the environment names older deployments used.
var legacyEnv = map[string]string{
	KeyToken:    "BOT_TOKEN",
	KeyAdmins:   "AUTHORIZED_IDS",
	KeyExcluded: "EXCLUDED_USER_IDS",
}

type Config struct {
	Telegram Telegram
	Access   Access
	Roster   Roster
	Links    Links
	Texts    Texts
	Log      Log
	Metrics  Metrics
	// File is the config file that was read, empty when none was found.
	File string
}

type Telegram struct {
	Token       string
	TokenSecret string
	PollTimeout int
	Debug       bool
	ChunkSize   int
}

type Access struct {
	Admins   []domain.UserID
	Excluded []domain.UserID
}

type Roster struct {
	Path string
}

type Links struct {
	Hosts []string
}

type Texts struct {
	Rules string
	Slots string
}

type Log struct {
	Level  string
	Format string
}

type Metrics struct {
	Listen string
}

// Dir is where the config file, the roster and file-backed secrets live.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+"."+configType), nil
}

// Load reads config.toml from the config directory, if present, layered
// under LINKBOT_* environment variables and the legacy names.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	setDefaults(v, dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), legacy); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", legacy, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	admins, err := userIDs(v.Get(KeyAdmins))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyAdmins, err)
	}
	excluded, err := userIDs(v.Get(KeyExcluded))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyExcluded, err)
	}
	hosts, err := cast.ToStringSliceE(splitList(v.Get(KeyLinkHosts)))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLinkHosts, err)
	}

	return Config{
		Telegram: Telegram{
			Token:       strings.TrimSpace(v.GetString(KeyToken)),
			TokenSecret: v.GetString(KeyTokenSecret),
			PollTimeout: v.GetInt(KeyPollTimeout),
			Debug:       v.GetBool(KeyDebug),
			ChunkSize:   v.GetInt(KeyChunkSize),
		},
		Access:  Access{Admins: admins, Excluded: excluded},
		Roster:  Roster{Path: v.GetString(KeyRosterPath)},
		Links:   Links{Hosts: hosts},
		Texts:   Texts{Rules: v.GetString(KeyRules), Slots: v.GetString(KeySlots)},
		Log:     Log{Level: v.GetString(KeyLogLevel), Format: v.GetString(KeyLogFormat)},
		Metrics: Metrics{Listen: v.GetString(KeyMetrics)},
		File:    v.ConfigFileUsed(),
	}, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyTokenSecret, DefaultTokenSecret)
	v.SetDefault(KeyPollTimeout, 60)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyChunkSize, 3900)
	v.SetDefault(KeyRosterPath, filepath.Join(dir, "roster.toml"))
	v.SetDefault(KeyLinkHosts, []string{"x.com"})
	v.SetDefault(KeyRules, DefaultRules)
	v.SetDefault(KeySlots, DefaultSlots)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyMetrics, "")
}

// Validate checks everything except the token, which may still come from
// the secret store.
func (c Config) Validate() error {
	var problems []string

	if len(c.Access.Admins) == 0 {
		problems = append(problems, fmt.Sprintf("%s: at least one admin user id is required", KeyAdmins))
	}
	if c.Telegram.PollTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("%s: must be positive, got %d", KeyPollTimeout, c.Telegram.PollTimeout))
	}
	if c.Telegram.ChunkSize <= 0 || c.Telegram.ChunkSize > maxChunkSize {
		problems = append(problems, fmt.Sprintf("%s: must be between 1 and %d, got %d", KeyChunkSize, maxChunkSize, c.Telegram.ChunkSize))
	}
	if strings.TrimSpace(c.Roster.Path) == "" {
		problems = append(problems, fmt.Sprintf("%s: must not be empty", KeyRosterPath))
	}
	if len(c.Links.Hosts) == 0 {
		problems = append(problems, fmt.Sprintf("%s: at least one host is required", KeyLinkHosts))
	}
	for _, host := range c.Links.Hosts {
		if strings.TrimSpace(host) == "" || strings.ContainsAny(host, "/ ") {
			problems = append(problems, fmt.Sprintf("%s: invalid host %q", KeyLinkHosts, host))
		}
	}
	if c.Metrics.Listen != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Listen); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", KeyMetrics, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// userIDs accepts a TOML array or a comma/space separated string.
func userIDs(raw any) ([]domain.UserID, error) {
	items, err := cast.ToStringSliceE(splitList(raw))
	if err != nil {
		return nil, err
	}

	set := domain.NewUserSet()
	for _, item := range items {
		id, err := domain.ParseUserID(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", item, err)
		}
		set.Add(id)
	}
	return set.Sorted(), nil
}

func splitList(raw any) any {
	switch value := raw.(type) {
	case nil:
		return []string{}
	case string:
		return strings.Fields(strings.ReplaceAll(value, ",", " "))
	default:
		return raw
	}
}
