package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexraskin/linkcraft/internal/database"
	"github.com/alexraskin/linkcraft/internal/models"
	"github.com/alexraskin/linkcraft/internal/page"
)

var (
	exportOutput string
	exportState  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the saved page to a standalone HTML file",
	Long: `Export renders the page saved by the editor, or a state file in the
same JSON format, and writes the HTML to a file or to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadExportState(cmd.Context())
		if err != nil {
			return err
		}
		return writeExport(cmd.OutOrStdout(), exportOutput, state)
	},
}

func loadExportState(ctx context.Context) (models.State, error) {
	if exportState != "" {
		return readStateFile(exportState)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	db, err := database.NewDatabase(ctx, appConfig.DatabaseURL, appConfig.CacheTTL)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return db.LoadState(ctx)
}

func readStateFile(path string) (models.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.State{}, fmt.Errorf("error reading state file %s: %w", path, err)
	}
	state, err := models.DecodeState(data)
	if err != nil {
		return models.State{}, fmt.Errorf("error decoding state file %s: %w", path, err)
	}
	return state, nil
}

// writeExport writes the document to path, or to stdout when path is empty
// or "-".
func writeExport(stdout io.Writer, path string, state models.State) error {
	doc := page.RenderState(state)

	if path == "" || path == "-" {
		_, err := fmt.Fprintln(stdout, doc)
		return err
	}

	if err := os.WriteFile(path, []byte(doc+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&exportState, "state", "", "render this state JSON file instead of the saved page")
	rootCmd.AddCommand(exportCmd)
}
