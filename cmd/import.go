package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexraskin/linkcraft/internal/database"
)

var importCmd = &cobra.Command{
	Use:   "import <state.json>",
	Short: "Replace the saved page with a state file",
	Long: `Import reads a state file in the JSON format the editor stores and
saves it as the current page, replacing the profile, links and settings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context(), args[0])
	},
}

func runImport(ctx context.Context, path string) error {
	state, err := readStateFile(path)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	db, err := database.NewDatabase(ctx, appConfig.DatabaseURL, appConfig.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return db.SaveState(ctx, state)
}

func init() {
	rootCmd.AddCommand(importCmd)
}
