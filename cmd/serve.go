package cmd

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexraskin/linkcraft/internal/database"
	"github.com/alexraskin/linkcraft/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor with live preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			appConfig.Port = servePort
		}
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := database.NewDatabase(openCtx, appConfig.DatabaseURL, appConfig.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	requireAuth, err := configureAuth(openCtx, db, appConfig.Password)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Config{
		Version:        appVersion,
		Port:           appConfig.Port,
		ExportFilename: appConfig.ExportFilename,
		RequireAuth:    requireAuth,
	}, http.FS(staticFS), tmpl.ExecuteTemplate, db)

	go srv.Start()

	slog.Info("Started editor", slog.String("listen_addr", ":"+appConfig.Port), slog.String("version", appVersion))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down editor")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// configureAuth stores password when one is given and reports whether the
// editor needs a login. A hash saved by an earlier run keeps the editor
// locked even when no password is configured now.
func configureAuth(ctx context.Context, db database.Database, password string) (bool, error) {
	if password != "" {
		if err := db.SetPassword(ctx, password); err != nil {
			return false, fmt.Errorf("failed to set editor password: %w", err)
		}
	}

	has, err := db.HasPassword(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read editor password: %w", err)
	}
	return has, nil
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on; overrides LINKCRAFT_PORT")
	rootCmd.AddCommand(serveCmd)
}
