package toml

import "fmt"

const currentSchemaVersion = 1

type rosterSchema struct {
	Version   int     `toml:"version"`
	UpdatedAt string  `toml:"updated_at,omitempty"`
	Excluded  []int64 `toml:"excluded"`
}

func (s *rosterSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Excluded == nil {
		s.Excluded = []int64{}
	}
}

func (s rosterSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported roster schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
