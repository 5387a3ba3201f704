// Package summary renders the effective bot configuration for `config show`.
package summary

import (
	"fmt"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/config"
	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Token sources reported next to the masked token.
const (
	TokenFromConfig = "config/env"
	TokenFromSecret = "secret store"
	TokenMissing    = ""
)

type Input struct {
	Config      config.Config
	Token       string
	TokenSource string
	// Roster is the excluded list persisted by /exclude, nil when unreadable.
	Roster []domain.UserID
}

func Render(in Input) string {
	s := newStyles()
	cfg := in.Config

	file := cfg.File
	if file == "" {
		file = "none (defaults and environment only)"
	}

	lines := []string{
		s.title.Render("linkbot configuration"),
		s.header.Render("file: " + file),

		s.section.Render("Telegram"),
		row(s, "token", tokenValue(s, in.Token, in.TokenSource)),
		row(s, "token secret", cfg.Telegram.TokenSecret),
		row(s, "poll timeout", fmt.Sprintf("%ds", cfg.Telegram.PollTimeout)),
		row(s, "chunk size", fmt.Sprintf("%d", cfg.Telegram.ChunkSize)),
		row(s, "debug", fmt.Sprintf("%t", cfg.Telegram.Debug)),

		s.section.Render("Access"),
		row(s, "admins", idList(cfg.Access.Admins, s.warning.Render("none, every command will be ignored"))),
		row(s, "excluded", idList(cfg.Access.Excluded, s.empty.Render("none"))),
		row(s, "roster", cfg.Roster.Path),
	}
	if in.Roster != nil {
		lines = append(lines, row(s, "roster entries", idList(in.Roster, s.empty.Render("none"))))
	}

	lines = append(lines,
		s.section.Render("Links"),
		row(s, "hosts", strings.Join(cfg.Links.Hosts, ", ")),

		s.section.Render("Runtime"),
		row(s, "log", fmt.Sprintf("%s (%s)", cfg.Log.Level, cfg.Log.Format)),
		row(s, "metrics", orDisabled(s, cfg.Metrics.Listen)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func row(s styles, key string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key), s.value.Render(value))
}

// MaskToken keeps the bot id and the last four characters of the secret.
func MaskToken(token string) string {
	id, secret, ok := strings.Cut(token, ":")
	if !ok || len(secret) <= 4 {
		return strings.Repeat("*", 8)
	}
	return fmt.Sprintf("%s:****%s", id, secret[len(secret)-4:])
}

func tokenValue(s styles, token string, source string) string {
	if token == "" || source == TokenMissing {
		return s.warning.Render("not set (run `linkbot token set` or export BOT_TOKEN)")
	}
	return fmt.Sprintf("%s (%s)", MaskToken(token), source)
}

func idList(ids []domain.UserID, whenEmpty string) string {
	if len(ids) == 0 {
		return whenEmpty
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}

func orDisabled(s styles, listen string) string {
	if listen == "" {
		return s.empty.Render("disabled")
	}
	return "http://" + listen + "/metrics"
}
