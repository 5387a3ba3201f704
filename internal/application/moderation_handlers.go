package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/domain"
)

func (s *Service) handleMuteAll(ctx context.Context, cmd domain.Command) error {
	if !s.session.Active() {
		return s.reply(ctx, cmd.ChatID, msgNoSession)
	}
	if len(cmd.Args) < 1 {
		return s.reply(ctx, cmd.ChatID, msgUsageMuteAll)
	}

	token := cmd.Args[0]
	d, err := domain.ParseDuration(token)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgInvalidDuration)
	}

	unsafe, err := s.session.UnsafeUsers()
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return s.reply(ctx, cmd.ChatID, msgNoSession)
		}
		return err
	}
	if len(unsafe) == 0 {
		return s.reply(ctx, cmd.ChatID, msgNoUnsafeToMute)
	}

	result := s.scheduler.ApplyToSet(ctx, unsafe, cmd.ChatID, d)
	s.log.Info().
		Int("muted", result.Succeeded).
		Int("failed", result.Failed).
		Dur("duration", d).
		Msg("bulk mute finished")

	if result.Failed > 0 {
		return s.replyf(ctx, cmd.ChatID, "Muted %d users for %s. %d could not be muted.", result.Succeeded, token, result.Failed)
	}
	return s.replyf(ctx, cmd.ChatID, "Muted %d users for %s.", result.Succeeded, token)
}

func (s *Service) handleMute(ctx context.Context, cmd domain.Command) error {
	if len(cmd.Args) < 2 {
		return s.reply(ctx, cmd.ChatID, msgUsageMute)
	}

	userID, err := domain.ParseUserID(cmd.Args[0])
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgInvalidUserID)
	}
	token := cmd.Args[1]
	d, err := domain.ParseDuration(token)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgInvalidDuration)
	}

	if _, err := s.scheduler.Apply(ctx, userID, cmd.ChatID, d); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to mute user %d: %v", userID, errors.Unwrap(err))
	}
	return s.replyf(ctx, cmd.ChatID, "User %d has been muted for %s.", userID, token)
}

func (s *Service) handleUnmute(ctx context.Context, cmd domain.Command) error {
	userID, err := userIDArg(cmd)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgUnmuteNeedsID)
	}

	if err := s.scheduler.Retract(ctx, userID, cmd.ChatID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to unmute user %d: %v", userID, errors.Unwrap(err))
	}
	return s.replyf(ctx, cmd.ChatID, "User %d has been unmuted.", userID)
}

func (s *Service) handleBan(ctx context.Context, cmd domain.Command) error {
	userID, err := userIDArg(cmd)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgBanNeedsID)
	}

	if err := s.ban(ctx, cmd.ChatID, userID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to ban user %d: %v", userID, err)
	}
	return s.replyf(ctx, cmd.ChatID, "User %d has been removed and banned from the group.", userID)
}

func (s *Service) handleUnban(ctx context.Context, cmd domain.Command) error {
	userID, err := userIDArg(cmd)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgUnbanNeedsID)
	}

	if err := s.unban(ctx, cmd.ChatID, userID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to unban user %d: %v", userID, err)
	}
	return s.replyf(ctx, cmd.ChatID, "User %d has been unbanned and can rejoin the group.", userID)
}

func (s *Service) handleReplyMute(ctx context.Context, cmd domain.Command) error {
	if cmd.ReplyTo == nil {
		return s.reply(ctx, cmd.ChatID, msgReplyToMute)
	}

	target := cmd.ReplyTo
	if _, err := s.scheduler.ApplyPermanent(ctx, target.ID, cmd.ChatID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to mute user %d: %v", target.ID, errors.Unwrap(err))
	}
	return s.replyHTML(ctx, cmd.ChatID, fmt.Sprintf("User %s has been muted.", mention(target)))
}

func (s *Service) handleReplyUnmute(ctx context.Context, cmd domain.Command) error {
	if cmd.ReplyTo == nil {
		return s.reply(ctx, cmd.ChatID, msgReplyToUnmute)
	}

	target := cmd.ReplyTo
	if err := s.scheduler.Retract(ctx, target.ID, cmd.ChatID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to unmute user %d: %v", target.ID, errors.Unwrap(err))
	}
	return s.replyHTML(ctx, cmd.ChatID, fmt.Sprintf("User %s has been unmuted.", mention(target)))
}

func (s *Service) handleReplyBan(ctx context.Context, cmd domain.Command) error {
	if cmd.ReplyTo == nil {
		return s.reply(ctx, cmd.ChatID, msgReplyToBan)
	}

	target := cmd.ReplyTo
	if err := s.ban(ctx, cmd.ChatID, target.ID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to ban user %d: %v", target.ID, err)
	}
	return s.replyHTML(ctx, cmd.ChatID, fmt.Sprintf("User %s has been banned from the group.", mention(target)))
}

func (s *Service) handleReplyUnban(ctx context.Context, cmd domain.Command) error {
	if cmd.ReplyTo == nil {
		return s.reply(ctx, cmd.ChatID, msgReplyToUnban)
	}

	target := cmd.ReplyTo
	if err := s.unban(ctx, cmd.ChatID, target.ID); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to unban user %d: %v", target.ID, err)
	}
	return s.replyHTML(ctx, cmd.ChatID, fmt.Sprintf("User %s has been unbanned and can rejoin the group.", mention(target)))
}

func (s *Service) handleLock(ctx context.Context, cmd domain.Command) error {
	if err := s.setChatPermissions(ctx, cmd.ChatID, domain.NoPermissions()); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to lock the group: %v", err)
	}
	return s.reply(ctx, cmd.ChatID, msgLocked)
}

func (s *Service) handleOpen(ctx context.Context, cmd domain.Command) error {
	if err := s.setChatPermissions(ctx, cmd.ChatID, domain.TextOnlyPermissions()); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to open the group for text messages: %v", err)
	}
	return s.reply(ctx, cmd.ChatID, msgOpenText)
}

func (s *Service) handleOpenAll(ctx context.Context, cmd domain.Command) error {
	if err := s.setChatPermissions(ctx, cmd.ChatID, domain.FullPermissions()); err != nil {
		return s.replyf(ctx, cmd.ChatID, "Failed to open the group for all messages: %v", err)
	}
	return s.reply(ctx, cmd.ChatID, msgOpenAll)
}

func (s *Service) handleRules(ctx context.Context, cmd domain.Command) error {
	if strings.TrimSpace(s.rules) == "" {
		return s.reply(ctx, cmd.ChatID, msgNoRulesConfigured)
	}
	return s.reply(ctx, cmd.ChatID, s.rules)
}

func (s *Service) handleSlot(ctx context.Context, cmd domain.Command) error {
	if strings.TrimSpace(s.slots) == "" {
		return s.reply(ctx, cmd.ChatID, msgNoSlotsConfigured)
	}
	return s.reply(ctx, cmd.ChatID, s.slots)
}

func (s *Service) handleExclude(ctx context.Context, cmd domain.Command) error {
	userID, err := userIDArg(cmd)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgExcludeNeedsID)
	}

	s.session.Exclude(userID)
	if err := s.saveRoster(ctx); err != nil {
		return s.replyf(ctx, cmd.ChatID, "User %d is excluded for now, but saving the roster failed: %v", userID, err)
	}
	return s.replyf(ctx, cmd.ChatID, "User %d is now excluded from reports and enforcement.", userID)
}

func (s *Service) handleInclude(ctx context.Context, cmd domain.Command) error {
	userID, err := userIDArg(cmd)
	if err != nil {
		return s.reply(ctx, cmd.ChatID, msgIncludeNeedsID)
	}

	s.session.Include(userID)
	if err := s.saveRoster(ctx); err != nil {
		return s.replyf(ctx, cmd.ChatID, "User %d is included for now, but saving the roster failed: %v", userID, err)
	}
	return s.replyf(ctx, cmd.ChatID, "User %d is no longer excluded.", userID)
}

func (s *Service) handleHelp(ctx context.Context, cmd domain.Command) error {
	lines := make([]string, 0, len(commandDescriptions)+1)
	lines = append(lines, "Commands:")
	for _, desc := range commandDescriptions {
		lines = append(lines, fmt.Sprintf("/%s %s", desc.Name, desc.Help))
	}
	return s.reply(ctx, cmd.ChatID, strings.Join(lines, "\n"))
}

func (s *Service) ban(ctx context.Context, chatID domain.ChatID, userID domain.UserID) error {
	if err := s.gateway.Ban(ctx, chatID, userID); err != nil {
		s.metrics.PlatformCallFailed("ban")
		s.log.Warn().Err(err).Int64("user_id", int64(userID)).Msg("ban failed")
		return err
	}
	s.session.Ban(userID)
	return nil
}

func (s *Service) unban(ctx context.Context, chatID domain.ChatID, userID domain.UserID) error {
	if err := s.gateway.Unban(ctx, chatID, userID); err != nil {
		s.metrics.PlatformCallFailed("unban")
		s.log.Warn().Err(err).Int64("user_id", int64(userID)).Msg("unban failed")
		return err
	}
	s.session.Unban(userID)
	return nil
}

func (s *Service) setChatPermissions(ctx context.Context, chatID domain.ChatID, perms domain.Permissions) error {
	if err := s.gateway.SetChatPermissions(ctx, chatID, perms); err != nil {
		s.metrics.PlatformCallFailed("set_chat_permissions")
		return err
	}
	return nil
}

func (s *Service) saveRoster(ctx context.Context) error {
	if s.roster == nil {
		return nil
	}

	roster := domain.Roster{Excluded: s.session.Excluded(), UpdatedAt: s.clock.Now()}
	if err := s.roster.Save(ctx, roster); err != nil {
		s.log.Error().Err(err).Msg("save roster")
		return err
	}
	return nil
}

func mention(ref *domain.UserRef) string {
	if strings.TrimSpace(ref.Mention) != "" {
		return ref.Mention
	}
	return fmt.Sprintf("%d", ref.ID)
}
