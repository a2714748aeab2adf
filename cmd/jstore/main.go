package main

import (
	"os"

	"github.com/spf13/cobra"

	"jstore/internal/interfaces/cli/migrate"
	"jstore/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jstore",
		Short: "JStore - order and payment backend",
		Long:  `JStore is the backend for the JStore storefront: checkout, payment reconciliation, and gated downloads.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
