package cmd

import (
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/alexraskin/linkcraft/internal/config"
)

var (
	appVersion   string
	templatesFS  fs.FS
	staticFS     fs.FS
	appConfig    config.Config
	databaseFlag string
)

var rootCmd = &cobra.Command{
	Use:   "linkcraft",
	Short: "Build a link-in-bio page and export it as a single HTML file",
	Long: `LinkCraft lets you compose a personal link page (name, avatar, bio,
links with icons, theme and accent colour) in a local editor with a live
preview, and export the result as one self-contained HTML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if databaseFlag != "" {
			cfg.DatabaseURL = databaseFlag
		}
		appConfig = cfg
		return nil
	},
}

// Execute runs the CLI with the embedded editor templates and static assets.
func Execute(version string, templates, static fs.FS) error {
	appVersion = version
	templatesFS = templates
	staticFS = static
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseFlag, "db", "", "database URL (postgres://... or sqlite://path); overrides LINKCRAFT_DATABASE_URL")
}
