package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/occirank/Haloscan-mcp-server/internal/config/transport"
	"github.com/occirank/Haloscan-mcp-server/internal/credential"
	"github.com/occirank/Haloscan-mcp-server/internal/session"
	"github.com/occirank/Haloscan-mcp-server/internal/tools"
)

const (
	ssePath      = "/sse"
	messagesPath = "/messages"
	healthPath   = "/health"

	sessionIDParam  = "sessionId"
	shutdownTimeout = 5 * time.Second
)

// ErrMissingSessionCredential is returned when /sse is opened without a key
// in header or query credential mode.
var ErrMissingSessionCredential = errors.New("missing Haloscan API key")

// HTTPServer serves MCP over an SSE push channel plus a POST endpoint.
type HTTPServer struct {
	cfg      transport.HTTPConfig
	source   transport.CredentialSource
	registry *tools.Registry
	process  *credential.Holder
	shared   *mcp.Server // env mode: one server for every session
	sessions *session.Manager
	version  string
}

// NewHTTPServer creates an HTTPServer. process is the holder used in env
// credential mode.
func NewHTTPServer(cfg transport.HTTPConfig, reg *tools.Registry, process *credential.Holder, version string) (*HTTPServer, error) {
	source, err := transport.ParseCredentialSource(string(cfg.CredentialSource))
	if err != nil {
		return nil, err
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	s := &HTTPServer{
		cfg:      cfg,
		source:   source,
		registry: reg,
		process:  process,
		sessions: session.NewManager(),
		version:  version,
	}
	if source == transport.SourceEnv {
		s.shared = NewMCPServer(reg, process, version)
	}
	return s, nil
}

// Sessions returns the open session store.
func (s *HTTPServer) Sessions() *session.Manager { return s.sessions }

// CredentialSource returns the effective credential mode.
func (s *HTTPServer) CredentialSource() transport.CredentialSource { return s.source }

// Handler returns the HTTP handler with CORS applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ssePath, s.handleSSE)
	mux.HandleFunc("POST "+messagesPath, s.handleMessage)
	mux.HandleFunc("GET "+healthPath, s.handleHealth)
	return s.withCORS(mux)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
// Bind failures are returned immediately.
func (s *HTTPServer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts derive from ctx so open SSE channels end on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	slog.Info("http transport listening",
		"addr", ln.Addr().String(),
		"sse", ssePath, "messages", messagesPath,
		"credentialSource", s.source)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		slog.Info("http transport stopped")
		return nil
	})
	return g.Wait()
}

// handleSSE opens a push channel and keeps it until the client goes away.
func (s *HTTPServer) handleSSE(w http.ResponseWriter, r *http.Request) {
	creds, err := s.sessionCredentials(r)
	if err != nil {
		slog.Warn("sse connection rejected", "remote", r.RemoteAddr, "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	server := s.shared
	if server == nil {
		server = NewMCPServer(s.registry, creds, s.version)
	}

	id := session.NewID()
	t := &mcp.SSEServerTransport{
		Endpoint: messagesPath + "?" + sessionIDParam + "=" + url.QueryEscape(id),
		Response: w,
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s.sessions.Add(session.New(id, t, creds, r.RemoteAddr))
	defer s.sessions.Remove(id)

	ss, err := server.Connect(r.Context(), t, nil)
	if err != nil {
		slog.Error("sse connect failed", "session", id, "err", err)
		http.Error(w, "connection failed", http.StatusInternalServerError)
		return
	}
	defer ss.Close()
	slog.Info("sse session opened", "session", id, "remote", r.RemoteAddr, "open", s.sessions.Len())

	closed := make(chan struct{})
	go func() {
		_ = ss.Wait()
		close(closed)
	}()
	select {
	case <-r.Context().Done():
	case <-closed:
	}
	slog.Info("sse session closed", "session", id)
}

// handleMessage routes a posted JSON-RPC message to its session.
func (s *HTTPServer) handleMessage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(sessionIDParam)
	if id == "" {
		http.Error(w, "missing sessionId", http.StatusBadRequest)
		return
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		http.Error(w, "no transport found for sessionId", http.StatusBadRequest)
		return
	}
	sess.Transport.ServeHTTP(w, r)
}

type healthResponse struct {
	Status   string `json:"status"`
	Server   string `json:"server"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Server:   ServerName,
		Version:  s.version,
		Sessions: s.sessions.Len(),
	})
}

// sessionCredentials returns the holder a new session is bound to.
func (s *HTTPServer) sessionCredentials(r *http.Request) (*credential.Holder, error) {
	var key string
	switch s.source {
	case transport.SourceHeader:
		key = r.Header.Get(s.cfg.CredentialHeader)
		if key == "" {
			key = bearerToken(r.Header.Get("Authorization"))
		}
	case transport.SourceQuery:
		key = r.URL.Query().Get(s.cfg.CredentialQuery)
	default:
		return s.process, nil
	}
	if strings.TrimSpace(key) == "" {
		return nil, ErrMissingSessionCredential
	}
	return credential.NewHolder(key), nil
}

func bearerToken(h string) string {
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}

// withCORS answers preflight requests and decorates every response.
func (s *HTTPServer) withCORS(next http.Handler) http.Handler {
	allowHeaders := "Content-Type, Authorization"
	if s.cfg.CredentialHeader != "" {
		allowHeaders += ", " + s.cfg.CredentialHeader
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
