package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/bnema/linkdrop-bot/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Scheduler applies mutes and releases timed ones on its own. The registry
// is the only state shared with release goroutines; a release that wakes up
// to find a newer restriction for the same user does nothing. Platform calls
// for one user and the matching registry update run under that user's lock,
// so the last restriction applied is also the last one the platform sees.
type Scheduler struct {
	gateway ports.ChatGateway
	clock   ports.Clock
	metrics ports.Metrics
	log     zerolog.Logger
	newID   func() string

	mu       sync.Mutex
	registry map[domain.UserID]domain.Restriction
	userMu   map[domain.UserID]*sync.Mutex

	tasks     sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once
}

type BulkResult struct {
	Succeeded int
	Failed    int
}

func NewScheduler(gateway ports.ChatGateway, clock ports.Clock, metrics ports.Metrics, log zerolog.Logger) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &Scheduler{
		gateway:  gateway,
		clock:    clock,
		metrics:  metrics,
		log:      log.With().Str("component", "scheduler").Logger(),
		newID:    func() string { return uuid.NewString() },
		registry: map[domain.UserID]domain.Restriction{},
		userMu:   map[domain.UserID]*sync.Mutex{},
		done:     make(chan struct{}),
	}
}

// Apply mutes the user and schedules the release. It returns as soon as the
// platform call does.
func (s *Scheduler) Apply(ctx context.Context, userID domain.UserID, chatID domain.ChatID, d time.Duration) (domain.Restriction, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	if err := s.gateway.Restrict(ctx, chatID, userID, domain.NoPermissions()); err != nil {
		s.metrics.PlatformCallFailed("restrict")
		return domain.Restriction{}, fmt.Errorf("restrict user %d: %w", userID, err)
	}

	now := s.clock.Now()
	restriction := domain.Restriction{
		ID:        s.newID(),
		UserID:    userID,
		ChatID:    chatID,
		AppliedAt: now,
		ExpiresAt: now.Add(d),
	}
	s.put(restriction)
	s.metrics.RestrictionApplied(true)

	wake := s.clock.After(d)
	s.tasks.Add(1)
	go s.release(restriction, wake)

	s.log.Info().
		Int64("user_id", int64(userID)).
		Int64("chat_id", int64(chatID)).
		Dur("duration", d).
		Str("restriction_id", restriction.ID).
		Msg("restriction applied")

	return restriction, nil
}

// ApplyPermanent denies every capability and never releases on its own.
func (s *Scheduler) ApplyPermanent(ctx context.Context, userID domain.UserID, chatID domain.ChatID) (domain.Restriction, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	if err := s.gateway.Restrict(ctx, chatID, userID, domain.NoPermissions()); err != nil {
		s.metrics.PlatformCallFailed("restrict")
		return domain.Restriction{}, fmt.Errorf("restrict user %d: %w", userID, err)
	}

	restriction := domain.Restriction{
		ID:        s.newID(),
		UserID:    userID,
		ChatID:    chatID,
		AppliedAt: s.clock.Now(),
	}
	s.put(restriction)
	s.metrics.RestrictionApplied(false)

	s.log.Info().
		Int64("user_id", int64(userID)).
		Int64("chat_id", int64(chatID)).
		Str("restriction_id", restriction.ID).
		Msg("permanent restriction applied")

	return restriction, nil
}

// ApplyToSet mutes every user, continuing past individual failures.
func (s *Scheduler) ApplyToSet(ctx context.Context, userIDs []domain.UserID, chatID domain.ChatID, d time.Duration) BulkResult {
	var result BulkResult
	for _, userID := range userIDs {
		if _, err := s.Apply(ctx, userID, chatID, d); err != nil {
			s.log.Warn().Err(err).Int64("user_id", int64(userID)).Msg("bulk restriction failed")
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result
}

// Retract drops the registry entry, if any, and restores full permissions.
// The pending release task is left to wake up and find nothing to do.
func (s *Scheduler) Retract(ctx context.Context, userID domain.UserID, chatID domain.ChatID) error {
	unlock := s.lockUser(userID)
	defer unlock()

	s.mu.Lock()
	delete(s.registry, userID)
	s.mu.Unlock()

	if err := s.gateway.Restrict(ctx, chatID, userID, domain.FullPermissions()); err != nil {
		s.metrics.PlatformCallFailed("unrestrict")
		return fmt.Errorf("unrestrict user %d: %w", userID, err)
	}
	return nil
}

func (s *Scheduler) IsRestricted(userID domain.UserID) bool {
	_, ok := s.Lookup(userID)
	return ok
}

func (s *Scheduler) Lookup(userID domain.UserID) (domain.Restriction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restriction, ok := s.registry[userID]
	return restriction, ok
}

func (s *Scheduler) Active() []domain.Restriction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Restriction, 0, len(s.registry))
	for _, userID := range s.registryUsers() {
		out = append(out, s.registry[userID])
	}
	return out
}

func (s *Scheduler) registryUsers() []domain.UserID {
	users := domain.NewUserSet()
	for userID := range s.registry {
		users.Add(userID)
	}
	return users.Sorted()
}

// Forget clears the bookkeeping without touching the platform. Release tasks
// already in flight still fire.
func (s *Scheduler) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = map[domain.UserID]domain.Restriction{}
}

// Close stops release tasks that are still waiting and blocks until every
// task has returned.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() { close(s.done) })
	s.tasks.Wait()
}

// Wait blocks until every scheduled release has run.
func (s *Scheduler) Wait() {
	s.tasks.Wait()
}

// lockUser serializes platform calls for one user. Locks are kept for the
// life of the scheduler.
func (s *Scheduler) lockUser(userID domain.UserID) func() {
	s.mu.Lock()
	m, ok := s.userMu[userID]
	if !ok {
		m = &sync.Mutex{}
		s.userMu[userID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (s *Scheduler) put(restriction domain.Restriction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry[restriction.UserID] = restriction
}

func (s *Scheduler) release(restriction domain.Restriction, wake <-chan time.Time) {
	defer s.tasks.Done()

	log := s.log.With().
		Int64("user_id", int64(restriction.UserID)).
		Str("restriction_id", restriction.ID).
		Logger()

	select {
	case <-wake:
	case <-s.done:
		s.metrics.RestrictionReleased(ports.ReleaseOutcomeShutdown)
		log.Debug().Msg("release abandoned on shutdown")
		return
	}

	unlock := s.lockUser(restriction.UserID)
	defer unlock()

	if current, ok := s.Lookup(restriction.UserID); ok && current.ID != restriction.ID {
		s.metrics.RestrictionReleased(ports.ReleaseOutcomeSuperseded)
		log.Debug().Str("superseded_by", current.ID).Msg("release skipped")
		return
	}

	err := s.gateway.Restrict(context.Background(), restriction.ChatID, restriction.UserID, domain.FullPermissions())

	s.mu.Lock()
	if current, ok := s.registry[restriction.UserID]; ok && current.ID == restriction.ID {
		delete(s.registry, restriction.UserID)
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.PlatformCallFailed("unrestrict")
		s.metrics.RestrictionReleased(ports.ReleaseOutcomeFailed)
		log.Error().Err(err).Msg("scheduled release failed")
		return
	}

	s.metrics.RestrictionReleased(ports.ReleaseOutcomeReleased)
	log.Info().Msg("restriction released")
}
