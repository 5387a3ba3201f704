package cmd

import (
	"fmt"

	"github.com/bnema/linkdrop-bot/internal/adapters/render/summary"
	"github.com/bnema/linkdrop-bot/internal/config"
	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the bot configuration",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(app))

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var admins []string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config.toml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := make([]int64, 0, len(admins))
			for _, raw := range admins {
				id, err := domain.ParseUserID(raw)
				if err != nil {
					return fmt.Errorf("--admin: %w", err)
				}
				ids = append(ids, int64(id))
			}

			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path, ids, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&admins, "admin", nil, "Telegram user id allowed to run bot commands (repeatable)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with the token masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := summary.Input{Config: app.cfg}

			token, source, err := app.resolveToken(cmd.Context())
			if err != nil {
				app.log.Warn().Err(err).Msg("token lookup failed")
			}
			in.Token, in.TokenSource = token, source

			if roster, err := app.roster.Load(cmd.Context()); err == nil {
				in.Roster = roster.Excluded
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary.Render(in))
			return err
		},
	}
}
