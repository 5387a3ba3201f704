package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/domain"
)

// buildReport renders the /list body. It is never empty: an empty ledger
// yields a single "no data" line, since an empty reply would be dropped by
// the transport.
func (s *Service) buildReport(ctx context.Context) string {
	entries := s.session.Entries()
	if len(entries) == 0 {
		return msgNoLinks
	}

	names := map[domain.UserID]string{}
	var lines []string
	var doubles []string
	total := 0

	for _, entry := range entries {
		name := s.displayName(ctx, entry.UserID, names)
		for _, identity := range entry.Identities {
			lines = append(lines, fmt.Sprintf("%d. 📬 X ID: @%s\n  ➡️ Telegram ID: @%s \n", entry.Position, identity, name))
			total++
		}
		for _, dup := range entry.Duplicates {
			doubles = append(doubles, fmt.Sprintf("[%s] (%d times) @%s  (User ID: %d)", dup.Identity, dup.Count, name, entry.UserID))
		}
	}

	if len(doubles) > 0 {
		lines = append(lines, "\nDouble links:")
		for i, double := range doubles {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, double))
		}
	}
	lines = append(lines, fmt.Sprintf("\nTotal count: %d", total))

	return strings.Join(lines, "\n")
}
