package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Chakipaki/connect-four-oo/game/config"
	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/Chakipaki/connect-four-oo/game/service"
	"github.com/Chakipaki/connect-four-oo/transport/websocket"
	"github.com/gorilla/mux"
)

// Error codes returned alongside engine error codes
const (
	CodeInvalidRequest  = "invalid_request"
	CodeSessionNotFound = "session_not_found"
	CodeConfigNotFound  = "config_not_found"
	CodeInternal        = "internal"
	CodeUnavailable     = "unavailable"
)

// Server represents the REST API server
type Server struct {
	service   service.GameService
	hub       *websocket.Hub
	router    *mux.Router
	staticDir string
}

// NewServer creates a new API server serving the board page from ./static/
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	return NewServerWithStatic(gameService, hub, "./static/")
}

// NewServerWithStatic creates a new API server serving static files from dir
func NewServerWithStatic(gameService service.GameService, hub *websocket.Hub, dir string) *Server {
	s := &Server{
		service:   gameService,
		hub:       hub,
		router:    mux.NewRouter(),
		staticDir: dir,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Game operations
	api.HandleFunc("/sessions/{id}/state", s.handleGetGameState).Methods("GET")
	api.HandleFunc("/sessions/{id}/cells/{row}/{column}", s.handleGetCell).Methods("GET")
	api.HandleFunc("/sessions/{id}/drop", s.handleDrop).Methods("POST")
	api.HandleFunc("/sessions/{id}/reset", s.handleReset).Methods("POST")

	// Configuration
	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Board page
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]string{"error": message, "code": code})
}

// respondServiceError maps service and engine errors to a status and code
func respondServiceError(w http.ResponseWriter, err error) {
	status, code := classifyError(err)
	respondError(w, status, code, err.Error())
}

func classifyError(err error) (int, string) {
	var gameErr engine.Error
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, CodeSessionNotFound
	case errors.Is(err, service.ErrSessionIDExhausted):
		return http.StatusServiceUnavailable, CodeUnavailable
	case errors.Is(err, config.ErrConfigNotFound):
		return http.StatusNotFound, CodeConfigNotFound
	case errors.Is(err, config.ErrInvalidConfig):
		return http.StatusUnprocessableEntity, CodeInvalidRequest
	case errors.As(err, &gameErr):
		switch gameErr {
		case engine.ErrColumnFull, engine.ErrGameAlreadyOver:
			return http.StatusConflict, gameErr.Code()
		default:
			return http.StatusBadRequest, gameErr.Code()
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// decodeOptional decodes a JSON body, treating an empty body as zero values
func decodeOptional(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body")
		return
	}

	session, err := s.service.CreateSession(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Printf("[SESSION] created id=%s board=%dx%d config=%s",
		session.ID, session.GameState.Width, session.GameState.Height, session.ConfigName)
	respondJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Parse query parameters
	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of sessions to return

	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	sort.Slice(sessions, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = sessions[i].CreatedAt, sessions[j].CreatedAt
		} else { // "accessed"
			ti, tj = sessions[i].LastAccessedAt, sessions[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj) // desc
	})

	total := len(sessions)
	limit := total
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < total {
			limit = l
		}
	}
	sessions = sessions[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(sessions),
		"total":    total,
		"sessions": sessions,
		"sort":     sortBy,
		"order":    order,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := s.service.GetSession(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := s.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// Game Operation Handlers

func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := s.service.GetGameState(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleGetCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]

	row, rowErr := strconv.Atoi(vars["row"])
	column, colErr := strconv.Atoi(vars["column"])
	if rowErr != nil || colErr != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, "row and column must be integers")
		return
	}

	cell, err := s.service.GetCell(r.Context(), sessionID, row, column)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"row":    row,
		"column": column,
		"cell":   cell,
		"symbol": engine.Symbol(cell),
	})
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Column *int `json:"column"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Column == nil {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, "Request body must contain an integer column")
		return
	}

	outcome, err := s.service.Drop(r.Context(), sessionID, *req.Column)
	if err != nil {
		log.Printf("[DROP] session=%s column=%d rejected: %v", sessionID, *req.Column, err)
		respondServiceError(w, err)
		return
	}

	res := outcome.Result
	log.Printf("[DROP] session=%s %s column=%d row=%d status=%s",
		sessionID, res.Player, res.Column, res.Row, res.Status)

	// Broadcast to WebSocket clients
	if s.hub != nil {
		s.hub.BroadcastEvent(sessionID, websocket.EventPieceDropped, res)
		s.hub.BroadcastToSession(sessionID, outcome.GameState)
	}

	respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Width  int `json:"width,omitempty"`
		Height int `json:"height,omitempty"`
	}
	if err := decodeOptional(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body")
		return
	}

	state, err := s.service.Reset(r.Context(), sessionID, req.Width, req.Height)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Printf("[RESET] session=%s board=%dx%d", sessionID, state.Width, state.Height)

	if s.hub != nil {
		s.hub.BroadcastToSession(sessionID, state)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Game reset successfully",
		"state":   state,
	})
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	configName := strings.TrimSuffix(mux.Vars(r)["name"], ".json")

	cfg, err := s.service.LoadConfig(r.Context(), configName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}
	if s.hub == nil {
		http.Error(w, "WebSocket not available", http.StatusServiceUnavailable)
		return
	}

	state, err := s.service.GetGameState(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, sessionID, state)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
