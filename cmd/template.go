package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/tui/forms"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage event templates",
	Long:  `Add and list event templates. Six defaults are seeded the first time the catalog is read.`,
}

var templateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new event template",
	Long:  `Create a new event template through an interactive form. Names must be unique; the shortcut key is optional.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var result forms.TemplateFormResult
		if err := forms.NewTemplateForm(&result).Run(); err != nil {
			return fmt.Errorf("form aborted: %w", err)
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		var shortcut *string
		if result.Shortcut != "" {
			shortcut = &result.Shortcut
		}

		id, err := db.CreateTemplate(database, result.Name, result.Color, shortcut, nil)
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		fmt.Printf("Template created: ID %d (%s, %s)\n", id, result.Name, result.Color)
		if shortcut != nil {
			fmt.Printf("  Shortcut: %s\n", *shortcut)
		}
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all event templates",
	Long:  `Display all event templates as a table, ordered by name.`,
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

		templates, err := db.ListTemplates(database)
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tColor\tShortcut")
		fmt.Fprintln(w, "--\t----\t-----\t--------")
		for _, t := range templates {
			shortcut := "-"
			if t.ShortcutKey != nil && *t.ShortcutKey != "" {
				shortcut = *t.ShortcutKey
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Color, shortcut)
		}
		w.Flush()

		fmt.Printf("\n%d template(s).\n", len(templates))
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateListCmd)
	rootCmd.AddCommand(templateCmd)
}
