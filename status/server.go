package status

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server exposes a Registry read-only over HTTP for debugging
type Server struct {
	reg  *Registry
	srv  *http.Server
	addr net.Addr
}

// NewServer builds the debug router
//
//	GET /status         all metrics
//	GET /status/{name}  one metric, 404 if unknown
func NewServer(reg *Registry, addr string) *Server {
	s := &Server{reg: reg}

	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleAll).Methods(http.MethodGet)
	r.HandleFunc("/status/{name}", s.handleOne).Methods(http.MethodGet)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start listens and serves in the background until Shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr()

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("status server: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address after Start
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Name implements service.Service
func (s *Server) Name() string { return "status" }

// Dependencies implements service.Service
func (s *Server) Dependencies() []string { return nil }

// Stop shuts down with a short grace period, safe before Start and when repeated
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.Snapshot())
}

func (s *Server) handleOne(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	v, ok := s.reg.Value(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown metric: " + name})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{name: v})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("status encode: %v", err)
	}
}
