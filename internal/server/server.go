// Package server exposes the evaluator over HTTP and WebSocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/handrank/poker"
)

const maxRequestSize = 8192

// Server answers evaluation requests on /evaluate and /ws.
type Server struct {
	eval        *poker.Evaluator
	upgrader    websocket.Upgrader
	logger      *log.Logger
	clock       quartz.Clock
	httpServer  *http.Server
	mu          sync.Mutex
	connections map[*Connection]struct{}
}

// NewServer creates a server around eval.
func NewServer(eval *poker.Evaluator, logger *log.Logger, clock quartz.Clock) *Server {
	return &Server{
		eval: eval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		clock:       clock,
		connections: make(map[*Connection]struct{}),
	}
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/evaluate", s.handleEvaluate)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on addr until Shutdown is called, at which point it returns
// http.ErrServerClosed.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting server", "addr", addr)
	return srv.ListenAndServe()
}

// Shutdown closes open WebSocket connections and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.Close() // Ignore close errors during shutdown
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// evaluate ranks a request and logs how long it took.
func (s *Server) evaluate(req *EvaluateRequest) (*EvaluateResponse, error) {
	start := s.clock.Now()
	resp, err := evaluate(s.eval, req)
	if err != nil {
		s.logger.Debug("Rejected request", "error", err)
		return nil, err
	}
	s.logger.Debug("Evaluated", "hands", len(resp.Results), "winners", resp.Winners, "took", s.clock.Since(start))
	return resp, nil
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "use POST"})
		return
	}

	var req EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	resp, err := s.evaluate(&req)
	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, poker.ErrInvalidInput), errors.Is(err, poker.ErrInvalidHandSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) // Ignore write errors, the client is gone
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(conn, s)
	s.mu.Lock()
	s.connections[client] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "remote", r.RemoteAddr, "total", total)

	client.Start()
	go func() {
		<-client.ctx.Done()
		s.mu.Lock()
		delete(s.connections, client)
		total := len(s.connections)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "remote", r.RemoteAddr, "total", total)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
