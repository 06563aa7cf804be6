package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(500, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))

	r.Get("/login", s.HandleLoginPage)
	r.Post("/login", s.HandleLogin)
	r.Get("/logout", s.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.RequireAuth)
		r.Get("/", s.HandleEditor)
		r.Get("/preview", s.HandlePreview)
		r.Get("/export", s.HandleExport)
		r.Get("/export/source", s.HandleSource)
		r.Post("/profile", s.HandleUpdateProfile)
		r.Post("/links/add", s.HandleAddLink)
		r.Post("/links/remove", s.HandleRemoveLink)
		r.Post("/links/update", s.HandleUpdateLink)
		r.Post("/settings", s.HandleUpdateSettings)
		r.Post("/reset", s.HandleReset)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})

	return r
}
