package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/askov/ordkort/internal/cli"
	"codeberg.org/askov/ordkort/internal/processor"
	"codeberg.org/askov/ordkort/internal/scrape"
	"codeberg.org/askov/ordkort/internal/vocab"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Overlay config-file and environment settings now that viper has
	// loaded them; explicit flags keep precedence.
	cli.ApplyConfig(flags)

	// Read the vocabulary before launching a browser so a bad input file
	// fails fast.
	entries, err := vocab.ReadFile(flags.InputCSV)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d vocabulary entries from %s\n", len(entries), flags.InputCSV)

	// One browser session serves the whole run.
	browser, err := scrape.NewBrowser(flags.RenderWait)
	if err != nil {
		return fmt.Errorf("failed to start browser session: %w", err)
	}
	defer browser.Close()

	proc, err := processor.New(flags, browser)
	if err != nil {
		return err
	}
	defer proc.Close()

	return proc.Run(cmd.Context(), entries)
}
