package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/alexraskin/linkcraft/internal/database"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Config struct {
	Version        string
	Port           string
	ExportFilename string
	// RequireAuth puts the editor behind the login page.
	RequireAuth bool
}

type Server struct {
	version        string
	port           string
	exportFilename string
	requireAuth    bool
	server         *http.Server
	assets         http.FileSystem
	tmplFunc       ExecuteTemplateFunc
	sessions       map[string]time.Time
	sessionsMu     sync.RWMutex
	db             database.Database
}

func NewServer(cfg Config, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, db database.Database) *Server {

	s := &Server{
		version:        cfg.Version,
		port:           cfg.Port,
		exportFilename: cfg.ExportFilename,
		requireAuth:    cfg.RequireAuth,
		assets:         assets,
		tmplFunc:       tmplFunc,
		sessions:       make(map[string]time.Time),
		sessionsMu:     sync.RWMutex{},
		db:             db,
	}

	s.server = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.Routes(),
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
