package main

import (
	"os"

	"github.com/spf13/cobra"

	"genturix/internal/interfaces/cli/migrate"
	"genturix/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "genturix",
		Short: "Genturix - condominium security and administration platform",
		Long:  `Genturix is a multi-tenant platform for condominium security, visitor control, staff management and seat-based billing.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
