package main

import (
	"os"
	"valhalla/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and seed the program grid",
	RunE:  runMigrate,
}

var migrateDSN string

func init() {
	migrateCmd.Flags().StringVar(&migrateDSN, "db", "", "database DSN (default $DATABASE_URL)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dsn := migrateDSN
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		color.Yellow("DATABASE_URL not set, using the local postgres default")
		db.Init()
	} else if err := db.InitWithDSN(dsn); err != nil {
		return err
	}

	color.Green("Database is up to date")
	return nil
}
