package domain

// Ledger holds the per-session submission bookkeeping. It is not safe for
// concurrent use; the session owner serializes access.
type Ledger struct {
	extractor   *Extractor
	order       []UserID
	submissions map[UserID][]Identity
	linksSeen   map[UserID]map[LinkToken]struct{}
	identities  map[Identity]int
	totalLinks  int
}

// Submission is what a single message contributed to the ledger.
type Submission struct {
	Identities []Identity
	NewLinks   int
}

type DuplicateIdentity struct {
	Identity Identity
	Count    int
}

type LedgerEntry struct {
	Position   int
	UserID     UserID
	Identities []Identity
	Duplicates []DuplicateIdentity
}

type LinkTally struct {
	UserID UserID
	Links  int
}

func NewLedger(extractor *Extractor) *Ledger {
	if extractor == nil {
		extractor = NewExtractor()
	}

	l := &Ledger{extractor: extractor}
	l.Reset()
	return l
}

func (l *Ledger) Reset() {
	l.order = nil
	l.submissions = map[UserID][]Identity{}
	l.linksSeen = map[UserID]map[LinkToken]struct{}{}
	l.identities = map[Identity]int{}
	l.totalLinks = 0
}

func (l *Ledger) Record(userID UserID, text string) Submission {
	identities := l.extractor.ExtractIdentities(text)
	for _, identity := range identities {
		if _, ok := l.submissions[userID]; !ok {
			l.order = append(l.order, userID)
		}
		l.submissions[userID] = append(l.submissions[userID], identity)
		l.identities[identity]++
	}

	newLinks := 0
	links := l.extractor.ExtractLinkTokens(text)
	if len(links) > 0 {
		seen, ok := l.linksSeen[userID]
		if !ok {
			seen = map[LinkToken]struct{}{}
			l.linksSeen[userID] = seen
		}
		for _, link := range links {
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}
			newLinks++
		}
		l.totalLinks += newLinks
	}

	return Submission{Identities: identities, NewLinks: newLinks}
}

// Users lists everyone with at least one identity submission, in the order
// they first submitted.
func (l *Ledger) Users() []UserID {
	users := make([]UserID, len(l.order))
	copy(users, l.order)
	return users
}

func (l *Ledger) Submissions(userID UserID) []Identity {
	identities := l.submissions[userID]
	out := make([]Identity, len(identities))
	copy(out, identities)
	return out
}

func (l *Ledger) IdentityOccurrences(identity Identity) int {
	return l.identities[identity]
}

func (l *Ledger) TotalUniqueLinks() int {
	return l.totalLinks
}

// Entries builds one report entry per non-excluded submitter. Duplicates are
// keyed by identity so every repeated identity is called out.
func (l *Ledger) Entries(excluded UserSet) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(l.order))
	for _, userID := range l.order {
		if excluded.Has(userID) {
			continue
		}

		counts := map[Identity]int{}
		var unique []Identity
		for _, identity := range l.submissions[userID] {
			if counts[identity] == 0 {
				unique = append(unique, identity)
			}
			counts[identity]++
		}

		var duplicates []DuplicateIdentity
		for _, identity := range unique {
			if counts[identity] > 1 {
				duplicates = append(duplicates, DuplicateIdentity{Identity: identity, Count: counts[identity]})
			}
		}

		entries = append(entries, LedgerEntry{
			Position:   len(entries) + 1,
			UserID:     userID,
			Identities: unique,
			Duplicates: duplicates,
		})
	}

	return entries
}

// MultiLinkUsers returns non-excluded users whose unique link set holds more
// than one link, ordered by user id.
func (l *Ledger) MultiLinkUsers(excluded UserSet) []LinkTally {
	candidates := NewUserSet()
	for userID, links := range l.linksSeen {
		if len(links) > 1 && !excluded.Has(userID) {
			candidates.Add(userID)
		}
	}

	tallies := make([]LinkTally, 0, len(candidates))
	for _, userID := range candidates.Sorted() {
		tallies = append(tallies, LinkTally{UserID: userID, Links: len(l.linksSeen[userID])})
	}
	return tallies
}
