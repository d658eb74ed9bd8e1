package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkordes/travelplanner/internal/domain"
	"github.com/pkordes/travelplanner/internal/render"
)

// Landing handles GET /.
func (s *Server) Landing(w http.ResponseWriter, r *http.Request) {
	view := render.SimpleView{Layout: s.layout(r, render.PageLanding, "Home")}
	s.renderPage(w, r, http.StatusOK, render.PageLanding, view)
}

// About handles GET /about.
func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	view := render.SimpleView{Layout: s.layout(r, render.PageAbout, "About")}
	s.renderPage(w, r, http.StatusOK, render.PageAbout, view)
}

// LoginForm handles GET /login.
func (s *Server) LoginForm(w http.ResponseWriter, r *http.Request) {
	view := render.LoginView{Layout: s.layout(r, render.PageLogin, "Log in")}
	s.renderPage(w, r, http.StatusOK, render.PageLogin, view)
}

// Login handles POST /login.
// Any non-blank email and password are accepted; the email becomes the
// current user and the browser is sent to the dashboard.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	email, password := r.PostFormValue("email"), r.PostFormValue("password")

	_, err := s.session.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			view := render.LoginView{
				Layout: s.layout(r, render.PageLogin, "Log in"),
				Email:  email,
				Error:  "Please enter a valid email and password.",
			}
			s.renderPage(w, r, http.StatusUnprocessableEntity, render.PageLogin, view)
			return
		}
		s.serverError(w, r, "login failed", err)
		return
	}
	redirect(w, r, "/dashboard")
}

// Logout handles POST /logout. Trips are left untouched.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(r.Context()); err != nil {
		s.serverError(w, r, "logout failed", err)
		return
	}
	redirect(w, r, "/")
}

// ToggleTheme handles POST /theme and sends the browser back where it came from.
func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := s.session.ToggleTheme(r.Context()); err != nil {
		s.serverError(w, r, "toggle theme failed", err)
		return
	}
	redirect(w, r, sameSiteReferer(r))
}

// sameSiteReferer returns the path of the Referer when it points at this
// host, and "/" otherwise, so the redirect cannot leave the site.
// Paths starting with "//" or "/\" are protocol-relative to a browser.
func sameSiteReferer(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(u.Path, "/") || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	if strings.HasPrefix(u.Path, "//") || strings.HasPrefix(u.Path, "/\\") {
		return "/"
	}
	return u.RequestURI()
}
