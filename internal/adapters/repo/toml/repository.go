package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/bnema/linkdrop-bot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	RosterPathKey = "roster.path"

	rosterFileMode   = 0o600
	rosterDirMode    = 0o700
	rosterConfigDir  = ".config/linkbot"
	rosterConfigFile = "roster.toml"
	tempFilePattern  = ".roster-*.toml.tmp"
)

// RosterRepository stores the excluded-user roster as a versioned TOML file.
// Writes go through a temp file and a rename, serialized per path across
// instances.
type RosterRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RosterRepository = (*RosterRepository)(nil)

func NewRosterRepository(cfg *viper.Viper) (*RosterRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(RosterPathKey, filepath.Join(homeDir, rosterConfigDir, rosterConfigFile))

	path := cfg.GetString(RosterPathKey)
	if path == "" {
		return nil, errors.New("roster path is empty")
	}
	path, err = normalizeRosterPath(path)
	if err != nil {
		return nil, err
	}

	return &RosterRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *RosterRepository) Path() string {
	return r.path
}

// Load returns an empty roster when the file does not exist yet.
func (r *RosterRepository) Load(ctx context.Context) (domain.Roster, error) {
	if err := ctx.Err(); err != nil {
		return domain.Roster{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Roster{}, err
	}

	return fromSchema(file), nil
}

func (r *RosterRepository) Save(ctx context.Context, roster domain.Roster) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Reject a file written by a newer build instead of clobbering it.
	if _, err := r.readSchema(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(toSchema(roster))
}

func (r *RosterRepository) readSchema() (rosterSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rosterSchema{}, nil
		}
		return rosterSchema{}, fmt.Errorf("read roster file: %w", err)
	}

	var file rosterSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return rosterSchema{}, fmt.Errorf("decode roster file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return rosterSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *RosterRepository) writeSchema(file rosterSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), rosterDirMode); err != nil {
		return fmt.Errorf("create roster directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode roster file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp roster file: %w", err)
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
		return fmt.Errorf("write temp roster file: %w", err)
	}
	if err := tempFile.Chmod(rosterFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp roster file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp roster file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace roster file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizeRosterPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve roster path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(roster domain.Roster) rosterSchema {
	roster.Normalize()

	excluded := make([]int64, 0, len(roster.Excluded))
	for _, userID := range roster.Excluded {
		excluded = append(excluded, int64(userID))
	}

	return rosterSchema{
		Version:   currentSchemaVersion,
		UpdatedAt: formatTime(roster.UpdatedAt),
		Excluded:  excluded,
	}
}

func fromSchema(file rosterSchema) domain.Roster {
	roster := domain.Roster{UpdatedAt: parseTime(file.UpdatedAt)}
	for _, id := range file.Excluded {
		if id <= 0 {
			continue
		}
		roster.Excluded = append(roster.Excluded, domain.UserID(id))
	}
	roster.Normalize()

	return roster
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
