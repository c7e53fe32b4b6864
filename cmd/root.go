package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/tagging-football-cli/config"
	"github.com/user/tagging-football-cli/deps"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "tagging-football-cli",
	Short: "A CLI tool for tagging football match videos",
	Long: `tagging-football-cli is a CLI tool for football coaches and analysts
to tag game footage via mpv with timestamped events stored in SQLite.

Features:
  - Create matches and open their videos in mpv
  - Tag events with single-key shortcuts while the video plays
  - Point events and in/out range events
  - Filter, sort, and jump between tagged events
  - Export a match's events to CSV`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tagging-football-cli version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (mpv) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckMpv(); err != nil {
			fmt.Println("✗ mpv: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ mpv: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

// loadConfig loads the runtime configuration for a command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
