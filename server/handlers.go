package server

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexraskin/linkcraft/internal/database"
	"github.com/alexraskin/linkcraft/internal/models"
	"github.com/alexraskin/linkcraft/internal/page"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

// loadState writes an error page and reports false when the state cannot be
// read.
func (s *Server) loadState(w http.ResponseWriter, r *http.Request) (models.State, bool) {
	state, err := s.db.LoadState(r.Context())
	if err != nil {
		slog.Error("Failed to load state", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return state, false
	}
	return state, true
}

func (s *Server) HandleEditor(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadState(w, r)
	if !ok {
		return
	}

	data := models.EditorPageData{
		State:    state,
		Source:   page.RenderState(state),
		Icons:    models.IconOptions,
		Colors:   models.ColorOptions,
		Message:  r.URL.Query().Get("message"),
		Error:    r.URL.Query().Get("error"),
		AuthMode: s.requireAuth,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "editor.html", data); err != nil {
		slog.Error("Failed to render editor template", "error", err)
	}
}

func (s *Server) HandlePreview(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadState(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page.RenderState(state))
}

func (s *Server) HandleExport(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadState(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": s.exportFilename}))
	_, _ = io.WriteString(w, page.RenderState(state))
}

func (s *Server) HandleSource(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadState(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, page.RenderState(state))
}

func (s *Server) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth || s.validateSession(s.getSessionFromRequest(r)) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "login.html", nil); err != nil {
		slog.Error("Failed to render login template", "error", err)
	}
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	valid, err := s.db.VerifyPassword(r.Context(), password)
	if err != nil {
		slog.Error("Failed to verify password", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	if !valid {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmplFunc(w, "login.html", map[string]string{"Error": "Invalid password"}); err != nil {
			slog.Error("Failed to render login template", "error", err)
		}
		return
	}

	token := s.createSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionTTL.Seconds()),
		SameSite: http.SameSiteStrictMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s.deleteSession(s.getSessionFromRequest(r))

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile := models.Profile{
		Name:   r.FormValue("name"),
		Avatar: r.FormValue("avatar"),
		Bio:    r.FormValue("bio"),
	}

	if err := s.db.UpdateProfile(r.Context(), profile); err != nil {
		slog.Error("Failed to update profile", "error", err)
		http.Redirect(w, r, "/?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?message=Profile+updated", http.StatusSeeOther)
}

func (s *Server) HandleAddLink(w http.ResponseWriter, r *http.Request) {
	link := models.NewLink()
	link.Title = r.FormValue("title")
	link.URL = r.FormValue("url")
	link.Icon = models.IconFromForm(r.FormValue("icon"), r.FormValue("custom_icon"))

	if _, err := s.db.AddLink(r.Context(), link); err != nil {
		slog.Error("Failed to add link", "error", err)
		http.Redirect(w, r, "/?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?message=Link+added", http.StatusSeeOther)
}

func (s *Server) HandleRemoveLink(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Redirect(w, r, "/?error=Invalid+link", http.StatusSeeOther)
		return
	}

	if err := s.db.RemoveLink(r.Context(), index); err != nil {
		if errors.Is(err, database.ErrLinkNotFound) {
			http.Redirect(w, r, "/?error=Link+not+found", http.StatusSeeOther)
			return
		}
		slog.Error("Failed to remove link", "error", err)
		http.Redirect(w, r, "/?error=Failed+to+delete", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?message=Link+removed", http.StatusSeeOther)
}

func (s *Server) HandleUpdateLink(w http.ResponseWriter, r *http.Request) {
	link := models.Link{
		ID:    r.FormValue("id"),
		Title: r.FormValue("title"),
		URL:   r.FormValue("url"),
		Icon:  models.IconFromForm(r.FormValue("icon"), r.FormValue("custom_icon")),
	}

	if err := s.db.UpdateLink(r.Context(), link); err != nil {
		if errors.Is(err, database.ErrLinkNotFound) {
			http.Redirect(w, r, "/?error=Link+not+found", http.StatusSeeOther)
			return
		}
		slog.Error("Failed to update link", "error", err)
		http.Redirect(w, r, "/?error=Failed+to+update", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?message=Link+updated", http.StatusSeeOther)
}

func (s *Server) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	theme := models.ThemeDark
	if r.FormValue("theme") == string(models.ThemeLight) {
		theme = models.ThemeLight
	}

	settings := models.Settings{
		Theme:       theme,
		AccentColor: strings.TrimSpace(r.FormValue("accent_color")),
		ShowCredit:  r.FormValue("show_credit") == "true",
	}
	if settings.AccentColor == "" {
		settings.AccentColor = models.DefaultAccentColor
	}

	if err := s.db.UpdateSettings(r.Context(), settings); err != nil {
		slog.Error("Failed to update settings", "error", err)
		http.Redirect(w, r, "/?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?message=Settings+updated", http.StatusSeeOther)
}

func (s *Server) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.db.ResetState(r.Context()); err != nil {
		slog.Error("Failed to reset state", "error", err)
		http.Redirect(w, r, "/?error=Failed+to+reset", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?message=All+data+has+been+cleared", http.StatusSeeOther)
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
