package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfray/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The server binds to localhost; any local page may view it.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Server serializes access to one session and serves it over HTTP and
// WebSocket.
type Server struct {
	mu      sync.Mutex
	session *session.Session
	hub     *Hub
}

// New wires a server around a session and a running hub.
func New(s *session.Session, hub *Hub) *Server {
	return &Server{session: s, hub: hub}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/advance", s.handleAdvance).Methods(http.MethodPost)
	r.HandleFunc("/score", s.handleScore).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWs).Methods(http.MethodGet)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	view := ViewState(s.session.CurrentTurn())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

type advanceRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed body"})
		return
	}

	s.mu.Lock()
	state, err := s.session.Advance(req.Index)
	var view StateView
	if err == nil {
		view = ViewState(state)
	}
	s.mu.Unlock()

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrInvalidChoice) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	s.publish(view)
	writeJSON(w, http.StatusOK, view)
}

type scoreRequest struct {
	Horizon      int `json:"horizon"`
	InsertBudget int `json:"insertBudget"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed body"})
		return
	}

	s.mu.Lock()
	var state *session.State
	if req.Horizon > 0 {
		state = s.session.ScoreWithDepthHorizon(req.Horizon)
	} else {
		state = s.session.ScoreWithInsertBudget(req.InsertBudget)
	}
	view := ViewState(state)
	s.mu.Unlock()

	s.publish(view)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := newClient(conn)
	s.hub.register <- c
	go c.writePump()
	go c.readPump(s.hub)

	// Seed the new viewer with the current state.
	s.mu.Lock()
	view := ViewState(s.session.CurrentTurn())
	s.mu.Unlock()
	if payload, err := json.Marshal(view); err == nil {
		c.send <- payload
	}
}

func (s *Server) publish(view StateView) {
	payload, err := json.Marshal(view)
	if err != nil {
		log.Error().Err(err).Msg("state marshal failed")
		return
	}
	s.hub.Broadcast(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("response encode failed")
	}
}
