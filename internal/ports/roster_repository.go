package ports

import (
	"context"

	"github.com/bnema/linkdrop-bot/internal/domain"
)

// RosterRepository persists the excluded-user list, the only state that
// outlives a session.
type RosterRepository interface {
	Load(ctx context.Context) (domain.Roster, error)
	Save(ctx context.Context, roster domain.Roster) error
}
