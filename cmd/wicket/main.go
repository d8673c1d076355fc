package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wicket/internal/interfaces/cli/migrate"
	"wicket/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wicket",
		Short: "Magic-link gated notes service",
		Long:  `wicket is a small notes service protected by passwordless magic-link authentication.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
