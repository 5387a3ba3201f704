package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the Telegram bot token in the secret store",
	}

	cmd.AddCommand(newTokenSetCmd(app), newTokenClearCmd(app))

	return cmd
}

func newTokenSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the bot token (pass first, file fallback)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := strings.TrimSpace(value)
			if token == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("no token given: pass --value or pipe it on stdin")
				}
				token = strings.TrimSpace(line)
			}
			if !strings.Contains(token, ":") {
				return errors.New("token does not look like a bot token (<bot id>:<secret>)")
			}

			key := app.cfg.Telegram.TokenSecret
			if err := app.secretStore.Put(cmd.Context(), key, token); err != nil {
				return fmt.Errorf("store bot token: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored bot token under %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Bot token; read from stdin when omitted")

	return cmd
}

func newTokenClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored bot token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := app.cfg.Telegram.TokenSecret
			if err := app.secretStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("clear bot token: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cleared bot token %s\n", key)
			return err
		},
	}
}
