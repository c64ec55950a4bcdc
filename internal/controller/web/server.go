package web

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/jrammler/userdesk/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionCookieName = "session_token"

//go:embed static
var staticFiles embed.FS

type Server struct {
	service  *service.Service
	mux      *http.ServeMux
	gatherer prometheus.Gatherer
}

func NewServer(service *service.Service, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		service:  service,
		mux:      http.NewServeMux(),
		gatherer: gatherer,
	}
	s.mux.Handle("GET /static/", http.FileServerFS(staticFiles))
	s.AddAuthHandlers()
	s.AddUserHandlers()
	s.mux.HandleFunc("GET /{$}", s.requireSession(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/users", http.StatusFound)
	}))
	if gatherer != nil {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) Serve(addr string) error {
	slog.Info("Starting web server", "addr", addr)
	return http.ListenAndServe(addr, s)
}

// requireSession redirects to the login page unless the request carries a
// valid session cookie.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionCookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		_, err = s.service.AuthService.GetSessionOperator(r.Context(), sessionCookie.Value)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := c.Render(r.Context(), w)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "path", r.URL.Path, "error", err)
	}
}
