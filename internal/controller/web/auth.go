package web

import (
	"net/http"

	"github.com/jrammler/userdesk/internal/controller/web/templates"
)

func (s *Server) AddAuthHandlers() {
	s.mux.HandleFunc("GET /login", s.handleLoginGet)
	s.mux.HandleFunc("POST /login", s.handleLoginPost)
	s.mux.HandleFunc("GET /logout", s.handleLogoutGet)
}

func (s *Server) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, templates.Login(false))
}

func (s *Server) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	username := r.Form.Get("username")
	password := r.Form.Get("password")

	sessionToken, expiration, err := s.service.AuthService.LoginOperator(r.Context(), username, password)
	if err != nil {
		render(w, r, http.StatusUnauthorized, templates.Login(true))
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionToken,
		HttpOnly: true,
		Path:     "/", // valid for all paths
		SameSite: http.SameSiteLaxMode,
		Expires:  *expiration,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (s *Server) handleLogoutGet(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	s.service.AuthService.LogoutOperator(r.Context(), sessionCookie.Value)

	// clear session cookie
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		MaxAge:   -1,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/login", http.StatusFound)
}
