package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linkbot",
		Short:         "Link-drop session and moderation bot for Telegram groups",
		Long:          "linkbot runs link-drop sessions in a Telegram group: it records submitted post links, tracks who followed up after a checkpoint and mutes or bans members on admin command, lifting timed mutes on its own.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newTokenCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
