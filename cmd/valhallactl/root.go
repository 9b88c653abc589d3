package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "valhallactl",
	Short: "Admin tasks for the Projekt Valhalla site",
	Long: `Admin tasks for the Projekt Valhalla site.

Reads the same environment as the server; a .env file in the working
directory is loaded first when present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}
