package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/tui/forms"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage the player roster",
	Long:  `Add and list players. Events can reference a roster player for attribution.`,
}

var playerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a player to the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var result forms.PlayerFormResult
		if err := forms.NewPlayerForm(&result).Run(); err != nil {
			return fmt.Errorf("form aborted: %w", err)
		}

		jersey, err := result.JerseyNumber()
		if err != nil {
			return err
		}
		var team *string
		if result.Team != "" {
			team = &result.Team
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		id, err := db.CreatePlayer(database, result.Name, team, jersey)
		if err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}

		fmt.Printf("Player created: ID %d (%s)\n", id, result.Name)
		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the player roster",
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

		players, err := db.ListPlayers(database)
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}

		if len(players) == 0 {
			fmt.Println("No players yet. Add one with: tagging-football-cli player add")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tTeam\tJersey")
		fmt.Fprintln(w, "--\t----\t----\t------")
		for _, p := range players {
			team := "-"
			if p.Team != nil && *p.Team != "" {
				team = *p.Team
			}
			jersey := "-"
			if p.JerseyNumber != nil {
				jersey = fmt.Sprintf("%d", *p.JerseyNumber)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, team, jersey)
		}
		w.Flush()

		fmt.Printf("\n%d player(s).\n", len(players))
		return nil
	},
}

func init() {
	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	rootCmd.AddCommand(playerCmd)
}
