package handler

import (
	"bytes"
	"net/http"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/render"
)

// renderPage executes a page into a buffer and only then writes the status
// line, so a template failure can still become a clean 500.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, page, data); err != nil {
		s.log.ErrorContext(r.Context(), "render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// layout builds the navbar state for the requesting profile.
func (s *Server) layout(r *http.Request, page, title string) render.Layout {
	ctx := r.Context()
	if s.session == nil {
		return render.NewLayout(page, title, domain.User{}, false, false)
	}
	user, ok := s.session.CurrentUser(ctx)
	return render.NewLayout(page, title, user, ok, s.session.LightMode(ctx))
}

// serverError logs err and renders the error page. It is used for storage
// write failures: the change the user asked for was not saved.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log.ErrorContext(r.Context(), msg, "error", err)
	view := render.ErrorView{
		Layout:  s.layout(r, render.PageError, "Error"),
		Message: "Your change could not be saved. Please try again.",
	}
	s.renderPage(w, r, http.StatusInternalServerError, render.PageError, view)
}

// redirect sends a 303 so the browser follows with a GET.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// NotFound renders the error page for unknown paths.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	view := render.ErrorView{
		Layout:  s.layout(r, render.PageError, "Not found"),
		Message: "That page does not exist.",
	}
	s.renderPage(w, r, http.StatusNotFound, render.PageError, view)
}
