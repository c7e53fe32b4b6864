package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/mpv"
	"github.com/user/tagging-football-cli/pkg/export"
	"github.com/user/tagging-football-cli/pkg/timeutil"
	"github.com/user/tagging-football-cli/tui"
	"github.com/user/tagging-football-cli/tui/forms"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Manage matches",
	Long:  `Create, list, open, export, and delete matches.`,
}

var matchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new match",
	Long:  `Create a new match through an interactive form. The video file is chosen with a file picker limited to the configured video extensions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var result forms.MatchFormResult
		if err := forms.NewMatchForm(&result, cfg.VideoExtensions).Run(); err != nil {
			return fmt.Errorf("form aborted: %w", err)
		}

		absPath, err := filepath.Abs(result.VideoPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		info, err := os.Stat(absPath)
		if os.IsNotExist(err) {
			return fmt.Errorf("video file not found: %s", absPath)
		}
		if err != nil {
			return fmt.Errorf("failed to access video file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("path is a directory, not a video file: %s", absPath)
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		id, err := db.CreateMatch(database, result.Name, result.Date, nil, absPath)
		if err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}

		fmt.Printf("Match created: ID %d (%s, %s)\n", id, result.Name, result.Date)
		fmt.Printf("  Video: %s\n", filepath.Base(absPath))
		fmt.Printf("Open it with: tagging-football-cli match open %d\n", id)
		return nil
	},
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all matches",
	Long:  `Display all matches as a table, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		matches, err := db.ListMatches(database)
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}

		if len(matches) == 0 {
			fmt.Println("No matches yet. Create one with: tagging-football-cli match create")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tDate\tDuration\tVideo")
		fmt.Fprintln(w, "--\t----\t----\t--------\t-----")
		for _, m := range matches {
			durationStr := "-"
			if m.Duration != nil {
				durationStr = timeutil.FormatTime(float64(*m.Duration))
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				m.ID, m.Name, m.Date, durationStr, filepath.Base(m.VideoPath))
		}
		w.Flush()

		fmt.Printf("\n%d match(es).\n", len(matches))
		return nil
	},
}

var matchOpenCmd = &cobra.Command{
	Use:   "open <match-id>",
	Short: "Open a match for tagging",
	Long:  `Launch the match's video in mpv and start the tagging interface.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match ID: %s", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		match, err := db.GetMatch(database, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("match %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load match: %w", err)
		}

		if _, err := os.Stat(match.VideoPath); os.IsNotExist(err) {
			return fmt.Errorf("video file not found: %s", match.VideoPath)
		}

		fmt.Printf("Opening video: %s\n", filepath.Base(match.VideoPath))
		process, err := mpv.Launch(match.VideoPath, cfg.MpvSocket)
		if err != nil {
			return fmt.Errorf("failed to launch mpv: %w", err)
		}

		// Wait briefly for the IPC socket to be ready
		client := mpv.NewClient(cfg.MpvSocket)
		var connectErr error
		for i := 0; i < 50; i++ { // Wait up to 5 seconds
			time.Sleep(100 * time.Millisecond)
			connectErr = client.Connect()
			if connectErr == nil {
				break
			}
		}
		if connectErr != nil {
			if process.Process != nil {
				process.Process.Kill()
			}
			return fmt.Errorf("failed to connect to mpv: %w", connectErr)
		}
		defer client.Close()

		// Record the video duration on first open.
		if match.Duration == nil {
			if duration, err := client.Duration(); err == nil && duration > 0 {
				seconds := int64(duration)
				_, uerr := database.Exec(`UPDATE matches SET duration = ? WHERE id = ?`, seconds, match.ID)
				if uerr == nil {
					match.Duration = &seconds
				}
			}
		}

		if err := tui.Run(client, database, cfg, match); err != nil {
			return fmt.Errorf("session failed: %w", err)
		}

		if process.Process != nil {
			process.Process.Kill()
		}
		return nil
	},
}

var matchExportCmd = &cobra.Command{
	Use:   "export <match-id>",
	Short: "Export a match's events to CSV",
	Long:  `Write all events of a match to a CSV file, ordered by start timestamp.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match ID: %s", args[0])
		}
		outputPath, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		match, err := db.GetMatch(database, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("match %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load match: %w", err)
		}

		events, err := db.ListEvents(database, match.ID)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		if len(events) == 0 {
			return fmt.Errorf("no events to export for match %d", match.ID)
		}

		if outputPath == "" {
			outputPath = fmt.Sprintf("match-%d-events.csv", match.ID)
		}
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := export.WriteEventsCSV(file, events); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}

		fmt.Printf("Exported %d event(s) for %s to %s\n", len(events), match.Name, outputPath)
		return nil
	},
}

var matchStatsCmd = &cobra.Command{
	Use:   "stats <match-id>",
	Short: "Show per-template event counts for a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match ID: %s", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		match, err := db.GetMatch(database, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("match %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load match: %w", err)
		}

		counts, err := db.CountEventsByTemplate(database, match.ID)
		if err != nil {
			return fmt.Errorf("failed to count events: %w", err)
		}
		if len(counts) == 0 {
			fmt.Printf("No events tagged for %s yet.\n", match.Name)
			return nil
		}

		fmt.Printf("Event counts for %s (%s)\n\n", match.Name, match.Date)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Template\tEvents")
		fmt.Fprintln(w, "--------\t------")
		total := 0
		for _, c := range counts {
			fmt.Fprintf(w, "%s\t%d\n", c.Name, c.Total)
			total += c.Total
		}
		fmt.Fprintln(w, "--------\t------")
		fmt.Fprintf(w, "Total\t%d\n", total)
		w.Flush()
		return nil
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete <match-id>",
	Short: "Delete a match and all its events",
	Long:  `Delete a match after confirmation. All of the match's events are removed with it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match ID: %s", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		match, err := db.GetMatch(database, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("match %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load match: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			confirmed := false
			what := fmt.Sprintf("%s (%s) and all its events", match.Name, match.Date)
			if err := forms.NewConfirmDeleteForm(what, &confirmed).Run(); err != nil {
				return fmt.Errorf("form aborted: %w", err)
			}
			if !confirmed {
				fmt.Println("Kept.")
				return nil
			}
		}

		if err := db.DeleteMatch(database, match.ID); err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}
		fmt.Printf("Deleted match %d (%s).\n", match.ID, match.Name)
		return nil
	},
}

func init() {
	matchExportCmd.Flags().StringP("output", "o", "", "Output file path (default: match-<id>-events.csv)")
	matchDeleteCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")

	matchCmd.AddCommand(matchCreateCmd)
	matchCmd.AddCommand(matchListCmd)
	matchCmd.AddCommand(matchOpenCmd)
	matchCmd.AddCommand(matchExportCmd)
	matchCmd.AddCommand(matchStatsCmd)
	matchCmd.AddCommand(matchDeleteCmd)
	rootCmd.AddCommand(matchCmd)
}
