package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/bnema/linkdrop-bot/internal/ports"
	"github.com/rs/zerolog"
)

type Config struct {
	Admins []domain.UserID
	Rules  string
	Slots  string
}

type Deps struct {
	Gateway   ports.ChatGateway
	Scheduler *Scheduler
	Session   *domain.Session
	Roster    ports.RosterRepository
	Clock     ports.Clock
	Metrics   ports.Metrics
	Log       zerolog.Logger
}

type commandHandler func(ctx context.Context, cmd domain.Command) error

// Service is the session controller. HandleEvent must be called from a
// single goroutine; the session aggregate is not locked.
type Service struct {
	gateway   ports.ChatGateway
	scheduler *Scheduler
	session   *domain.Session
	roster    ports.RosterRepository
	clock     ports.Clock
	metrics   ports.Metrics
	log       zerolog.Logger

	admins   domain.UserSet
	rules    string
	slots    string
	commands map[string]commandHandler
}

func NewService(deps Deps, cfg Config) *Service {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if deps.Session == nil {
		deps.Session = domain.NewSession(nil)
	}
	if deps.Scheduler == nil {
		deps.Scheduler = NewScheduler(deps.Gateway, deps.Clock, deps.Metrics, deps.Log)
	}

	s := &Service{
		gateway:   deps.Gateway,
		scheduler: deps.Scheduler,
		session:   deps.Session,
		roster:    deps.Roster,
		clock:     deps.Clock,
		metrics:   deps.Metrics,
		log:       deps.Log,
		admins:    domain.NewUserSet(cfg.Admins...),
		rules:     cfg.Rules,
		slots:     cfg.Slots,
	}
	s.commands = map[string]commandHandler{
		CommandStart:       s.handleStart,
		CommandEnd:         s.handleEnd,
		CommandList:        s.handleList,
		CommandTotal:       s.handleTotal,
		CommandDoubleLinks: s.handleDoubleLinks,
		CommandCheck:       s.handleCheck,
		CommandUnsafeList:  s.handleUnsafeList,
		CommandMuteAll:     s.handleMuteAll,
		CommandBan:         s.handleBan,
		CommandUnban:       s.handleUnban,
		CommandMute:        s.handleMute,
		CommandUnmute:      s.handleUnmute,
		CommandReplyMute:   s.handleReplyMute,
		CommandReplyUnmute: s.handleReplyUnmute,
		CommandReplyBan:    s.handleReplyBan,
		CommandReplyUnban:  s.handleReplyUnban,
		CommandLock:        s.handleLock,
		CommandOpen:        s.handleOpen,
		CommandOpenAll:     s.handleOpenAll,
		CommandRules:       s.handleRules,
		CommandSlot:        s.handleSlot,
		CommandExclude:     s.handleExclude,
		CommandInclude:     s.handleInclude,
		CommandHelp:        s.handleHelp,
	}

	return s
}

func (s *Service) Session() *domain.Session {
	return s.session
}

func (s *Service) Scheduler() *Scheduler {
	return s.scheduler
}

// HandleEvent routes one inbound event. Returned errors are reply delivery
// failures; platform call failures are reported to the issuing admin.
func (s *Service) HandleEvent(ctx context.Context, event domain.Event) error {
	switch ev := event.(type) {
	case domain.TextMessage:
		s.recordText(ev)
		return nil
	case domain.MediaMessage:
		s.recordMedia(ev)
		return nil
	case domain.Command:
		return s.handleCommand(ctx, ev)
	default:
		return fmt.Errorf("unsupported event %T", event)
	}
}

func (s *Service) IsAdmin(userID domain.UserID) bool {
	return s.admins.Has(userID)
}

func (s *Service) handleCommand(ctx context.Context, cmd domain.Command) error {
	if !s.IsAdmin(cmd.IssuerID) {
		return nil
	}

	handler, ok := s.commands[strings.ToLower(cmd.Name)]
	if !ok {
		return nil
	}

	s.log.Debug().
		Str("command", cmd.Name).
		Int64("issuer_id", int64(cmd.IssuerID)).
		Int64("chat_id", int64(cmd.ChatID)).
		Msg("handling command")

	return handler(ctx, cmd)
}

func (s *Service) reply(ctx context.Context, chatID domain.ChatID, text string) error {
	if err := s.gateway.SendMessage(ctx, chatID, text); err != nil {
		s.metrics.PlatformCallFailed("send")
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

func (s *Service) replyf(ctx context.Context, chatID domain.ChatID, format string, args ...any) error {
	return s.reply(ctx, chatID, fmt.Sprintf(format, args...))
}

func (s *Service) replyHTML(ctx context.Context, chatID domain.ChatID, html string) error {
	if err := s.gateway.SendHTML(ctx, chatID, html); err != nil {
		s.metrics.PlatformCallFailed("send")
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

// displayName never fails; lookups that error or come back empty degrade to
// a placeholder.
func (s *Service) displayName(ctx context.Context, userID domain.UserID, cache map[domain.UserID]string) string {
	if name, ok := cache[userID]; ok {
		return name
	}

	name, err := s.gateway.ResolveDisplayName(ctx, userID)
	if err != nil || strings.TrimSpace(name) == "" {
		if err != nil {
			s.log.Debug().Err(err).Int64("user_id", int64(userID)).Msg("display name lookup failed")
		}
		name = UnknownDisplayName
	}
	if cache != nil {
		cache[userID] = name
	}
	return name
}

func userIDArg(cmd domain.Command) (domain.UserID, error) {
	if len(cmd.Args) < 1 {
		return 0, domain.ErrMissingArguments
	}
	return domain.ParseUserID(cmd.Args[0])
}
