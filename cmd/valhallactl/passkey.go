package main

import (
	"context"
	"errors"
	"fmt"
	"time"
	"valhalla/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errDenied = errors.New("access denied")

var hashPasskeyCmd = &cobra.Command{
	Use:   "hash-passkey <passkey>",
	Short: "Print a bcrypt hash for SECRET_PASSKEY_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPasskey,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <passkey>",
	Short: "Check a passkey against the configured verifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

var verifyTimeout time.Duration

func init() {
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 15*time.Second, "overall deadline for the check")

	rootCmd.AddCommand(hashPasskeyCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runHashPasskey(cmd *cobra.Command, args []string) error {
	hash, err := services.HashPasskey(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	ok, err := services.NewPasskeyVerifierFromEnv().Verify(ctx, args[0])
	if err != nil {
		return fmt.Errorf("verify passkey: %w", err)
	}
	if !ok {
		color.Red("Access denied")
		return errDenied
	}

	color.Green("Access granted")
	return nil
}
