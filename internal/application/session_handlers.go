package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/domain"
)

func (s *Service) recordText(msg domain.TextMessage) {
	if !s.session.Active() || s.scheduler.IsRestricted(msg.UserID) {
		return
	}

	submission, ok := s.session.Record(msg.UserID, msg.Text)
	if !ok {
		return
	}
	s.metrics.SubmissionRecorded(len(submission.Identities), submission.NewLinks)
}

func (s *Service) recordMedia(msg domain.MediaMessage) {
	if !s.session.Active() || s.scheduler.IsRestricted(msg.UserID) {
		return
	}
	s.session.RecordMedia(msg.UserID)
}

func (s *Service) handleStart(ctx context.Context, cmd domain.Command) error {
	if err := s.session.Start(); err != nil {
		if errors.Is(err, domain.ErrSessionActive) {
			return s.reply(ctx, cmd.ChatID, msgSessionAlreadyActive)
		}
		return err
	}

	s.scheduler.Forget()
	s.metrics.SessionStarted()
	s.log.Info().Int64("chat_id", int64(cmd.ChatID)).Msg("session started")

	return s.reply(ctx, cmd.ChatID, msgSessionStarted)
}

// handleEnd wipes session bookkeeping. Restrictions already applied stay in
// place on the platform and their release tasks still fire.
func (s *Service) handleEnd(ctx context.Context, cmd domain.Command) error {
	if !s.session.End() {
		return nil
	}

	s.scheduler.Forget()
	s.metrics.SessionEnded()
	s.log.Info().Int64("chat_id", int64(cmd.ChatID)).Msg("session ended")

	return s.reply(ctx, cmd.ChatID, msgSessionEnded)
}

func (s *Service) handleList(ctx context.Context, cmd domain.Command) error {
	if !s.session.Active() {
		return nil
	}
	return s.reply(ctx, cmd.ChatID, s.buildReport(ctx))
}

func (s *Service) handleTotal(ctx context.Context, cmd domain.Command) error {
	if !s.session.Active() {
		return nil
	}
	return s.replyf(ctx, cmd.ChatID, "Total links shared: %d", s.session.TotalUniqueLinks())
}

func (s *Service) handleDoubleLinks(ctx context.Context, cmd domain.Command) error {
	if !s.session.Active() {
		return nil
	}

	tallies := s.session.MultiLinkUsers()
	if len(tallies) == 0 {
		return s.reply(ctx, cmd.ChatID, msgNoDoubleLinks)
	}

	names := map[domain.UserID]string{}
	lines := make([]string, 0, len(tallies)+1)
	lines = append(lines, "Users with multiple links:")
	for _, tally := range tallies {
		lines = append(lines, fmt.Sprintf("User ID: %d, Username: %s, Links: %d",
			tally.UserID, s.displayName(ctx, tally.UserID, names), tally.Links))
	}

	return s.reply(ctx, cmd.ChatID, strings.Join(lines, "\n"))
}

func (s *Service) handleCheck(ctx context.Context, cmd domain.Command) error {
	if err := s.session.IssueCheckpoint(); err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return s.reply(ctx, cmd.ChatID, msgNoSession)
		}
		return err
	}

	s.log.Info().Int64("chat_id", int64(cmd.ChatID)).Msg("checkpoint issued")
	return s.reply(ctx, cmd.ChatID, msgCheckStarted)
}

func (s *Service) handleUnsafeList(ctx context.Context, cmd domain.Command) error {
	unsafe, err := s.session.UnsafeUsers()
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return s.reply(ctx, cmd.ChatID, msgNoSession)
		}
		return err
	}
	if len(unsafe) == 0 {
		return s.reply(ctx, cmd.ChatID, msgEveryoneDone)
	}

	names := map[domain.UserID]string{}
	lines := make([]string, 0, len(unsafe)+1)
	lines = append(lines, "Unsafe list:")
	for i, userID := range unsafe {
		lines = append(lines, fmt.Sprintf("%d) @%s (User ID: %d)", i+1, s.displayName(ctx, userID, names), userID))
	}

	return s.reply(ctx, cmd.ChatID, strings.Join(lines, "\n"))
}
