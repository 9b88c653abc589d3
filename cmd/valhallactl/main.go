package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDenied) {
			color.Red("Error: %v", err)
		}
		os.Exit(1)
	}
}
