// Package http serves the start page: the HTML page, a JSON API, a search
// redirect and a WebSocket session carrying page events and effects. It
// also provides the Fetcher used for favicon discovery.
package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/app"
	"github.com/fwojciec/startpage/search"
	"github.com/gorilla/websocket"
)

// ShutdownTimeout bounds graceful shutdown in Run.
const ShutdownTimeout = 5 * time.Second

// Server serves the start page.
type Server struct {
	controller *app.Controller
	bookmarks  startpage.BookmarkService
	settings   startpage.SettingsService
	dispatcher *search.Dispatcher
	encoders   map[startpage.Format]startpage.Encoder
	logger     *slog.Logger

	upgrader websocket.Upgrader
	handler  http.Handler

	mu       sync.Mutex
	sessions map[string]*session
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger for requests and sessions.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithEncoder makes format f available from the export endpoint.
func WithEncoder(f startpage.Format, enc startpage.Encoder) ServerOption {
	return func(s *Server) {
		s.encoders[f] = enc
	}
}

// NewServer creates a Server.
func NewServer(
	controller *app.Controller,
	bookmarks startpage.BookmarkService,
	settings startpage.SettingsService,
	dispatcher *search.Dispatcher,
	opts ...ServerOption,
) *Server {
	s := &Server{
		controller: controller,
		bookmarks:  bookmarks,
		settings:   settings,
		dispatcher: dispatcher,
		encoders:   make(map[startpage.Format]startpage.Encoder),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessions:   make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.upgrader = websocket.Upgrader{
		CheckOrigin: sameOrigin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /static/", staticHandler())
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/bookmarks", s.handleListBookmarks)
	mux.HandleFunc("POST /api/bookmarks", s.handleAddBookmark)
	mux.HandleFunc("PUT /api/bookmarks/{index}", s.handleUpdateBookmark)
	mux.HandleFunc("DELETE /api/bookmarks/{index}", s.handleDeleteBookmark)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", s.handleSaveSettings)
	mux.HandleFunc("PUT /api/engine", s.handleSelectEngine)
	s.handler = s.logRequests(s.rejectCrossSite(mux))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info("serving", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.closeSessions()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// sameOrigin reports whether r comes from a page served by this server.
// Requests without an Origin header are accepted.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	o, ok := startpage.Origin(origin)
	if !ok {
		return false
	}
	return o == "http://"+r.Host || o == "https://"+r.Host
}
