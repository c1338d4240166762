package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpcenter/internal/interfaces/cli/migrate"
	"helpcenter/internal/interfaces/cli/seed"
	"helpcenter/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpcenter",
		Short: "Marketplace help center and support desk",
		Long:  `helpcenter serves help articles, onboarding guides and videos, and runs the support ticket desk.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
