package domain

type SessionState string

const (
	SessionIdle   SessionState = "idle"
	SessionActive SessionState = "active"
)

// Session is the single owned aggregate for link-drop state. Ledger,
// checkpoint and bans live only between Start and End; the excluded set
// survives across sessions.
type Session struct {
	state      SessionState
	ledger     *Ledger
	checkpoint *Checkpoint
	banned     UserSet
	excluded   UserSet
}

func NewSession(extractor *Extractor, excluded ...UserID) *Session {
	return &Session{
		state:      SessionIdle,
		ledger:     NewLedger(extractor),
		checkpoint: NewCheckpoint(),
		banned:     NewUserSet(),
		excluded:   NewUserSet(excluded...),
	}
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) Active() bool {
	return s.state == SessionActive
}

func (s *Session) Start() error {
	if s.Active() {
		return ErrSessionActive
	}
	s.reset()
	s.state = SessionActive
	return nil
}

// End reports whether a session was actually ended.
func (s *Session) End() bool {
	if !s.Active() {
		return false
	}
	s.reset()
	s.state = SessionIdle
	return true
}

func (s *Session) reset() {
	s.ledger.Reset()
	s.checkpoint.Reset()
	s.banned = NewUserSet()
}

// Record feeds a text message into the ledger. The second return value is
// false when the message was ignored.
func (s *Session) Record(userID UserID, text string) (Submission, bool) {
	if !s.accepts(userID) {
		return Submission{}, false
	}
	submission := s.ledger.Record(userID, text)
	s.checkpoint.Observe(userID)
	return submission, true
}

func (s *Session) RecordMedia(userID UserID) bool {
	if !s.accepts(userID) {
		return false
	}
	s.checkpoint.Observe(userID)
	return true
}

func (s *Session) accepts(userID UserID) bool {
	return s.Active() && !s.banned.Has(userID)
}

func (s *Session) IssueCheckpoint() error {
	if !s.Active() {
		return ErrNoSession
	}
	s.checkpoint.Issue(s.ledger.Users())
	return nil
}

// UnsafeUsers lists unsafe users in ledger order.
func (s *Session) UnsafeUsers() ([]UserID, error) {
	if !s.Active() {
		return nil, ErrNoSession
	}

	var unsafe []UserID
	for _, userID := range s.ledger.Users() {
		if s.checkpoint.IsUnsafe(userID, s.excluded) {
			unsafe = append(unsafe, userID)
		}
	}
	return unsafe, nil
}

func (s *Session) CheckpointState() CheckpointState {
	return s.checkpoint.State()
}

func (s *Session) Entries() []LedgerEntry {
	return s.ledger.Entries(s.excluded)
}

func (s *Session) TotalUniqueLinks() int {
	return s.ledger.TotalUniqueLinks()
}

func (s *Session) MultiLinkUsers() []LinkTally {
	return s.ledger.MultiLinkUsers(s.excluded)
}

func (s *Session) Ban(userID UserID) {
	s.banned.Add(userID)
}

func (s *Session) Unban(userID UserID) {
	s.banned.Remove(userID)
}

func (s *Session) IsBanned(userID UserID) bool {
	return s.banned.Has(userID)
}

func (s *Session) Exclude(userID UserID) {
	s.excluded.Add(userID)
}

func (s *Session) Include(userID UserID) {
	s.excluded.Remove(userID)
}

func (s *Session) IsExcluded(userID UserID) bool {
	return s.excluded.Has(userID)
}

func (s *Session) Excluded() []UserID {
	return s.excluded.Sorted()
}
