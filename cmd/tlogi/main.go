package main

import (
	"os"

	"github.com/spf13/cobra"

	"tlogi/internal/interfaces/cli/bot"
	"tlogi/internal/interfaces/cli/migrate"
	"tlogi/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tlogi",
		Short: "Tlogi - Discord support ticket system",
		Long:  `Tlogi runs a Discord helpdesk: a bot that opens private ticket channels and a dashboard API for staff to work the queue.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
