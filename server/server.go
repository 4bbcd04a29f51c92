package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"landbattle/config"
	"landbattle/game"
)

// Server pairs players into games and serves them over WebSocket. Games
// live in memory for the lifetime of the process; persistence is the
// deployment's concern, not the arbiter's.
type Server struct {
	rules game.Rules
	addr  string

	mu       sync.Mutex
	pending  map[string]string   // access code -> waiting player name
	assigned map[string]string   // player name -> game id
	games    map[string]*session // game id -> session

	httpServer *http.Server
}

// New builds a server from configuration.
func New(cfg config.Config) *Server {
	return &Server{
		rules:    cfg.GameRules(),
		addr:     cfg.Listen,
		pending:  make(map[string]string),
		assigned: make(map[string]string),
		games:    make(map[string]*session),
	}
}

// Start blocks serving HTTP until the listener fails or Stop is called.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/join", s.handleJoin)
	mux.HandleFunc("/game", s.handleGame)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}
	log.Info().Str("addr", s.addr).Msg("server listening")
	return s.httpServer.ListenAndServe()
}

// Stop shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleJoin pairs two players by access code. The first caller waits;
// the second caller creates the game and both are told the game id on
// their next call.
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	accessCode := r.URL.Query().Get("access_code")
	player := r.URL.Query().Get("player")
	if accessCode == "" || player == "" {
		writeJoin(w, http.StatusBadRequest, JoinResponse{Error: "access_code and player are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gameID, ok := s.assigned[player]; ok {
		writeJoin(w, http.StatusOK, JoinResponse{GameID: gameID})
		return
	}

	waiting, ok := s.pending[accessCode]
	switch {
	case !ok:
		s.pending[accessCode] = player
		writeJoin(w, http.StatusOK, JoinResponse{})
	case waiting == player:
		writeJoin(w, http.StatusOK, JoinResponse{})
	default:
		sess, err := newSession(s.rules, waiting, player)
		if err != nil {
			log.Error().Err(err).Msg("failed to start game")
			writeJoin(w, http.StatusInternalServerError, JoinResponse{Error: "failed to start game"})
			return
		}
		delete(s.pending, accessCode)
		gameID := uuid.NewString()
		sess.id = gameID
		sess.onFinished = func() { s.removeGame(gameID) }
		s.games[gameID] = sess
		s.assigned[waiting] = gameID
		s.assigned[player] = gameID
		log.Info().Str("game", gameID).Str("player1", waiting).Str("player2", player).Msg("game created")
		writeJoin(w, http.StatusOK, JoinResponse{GameID: gameID})
	}
}

// handleGame upgrades to WebSocket and runs the player's read loop until
// the connection drops.
func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	player := r.URL.Query().Get("player")

	s.mu.Lock()
	sess := s.games[gameID]
	s.mu.Unlock()
	if sess == nil {
		http.Error(w, "unknown game", http.StatusBadRequest)
		return
	}
	seat := sess.seatOf(player)
	if seat == game.NoPlayer {
		http.Error(w, "not a player of this game", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Warn().Err(err).Msg("websocket accept failed")
		return
	}

	sess.run(r.Context(), seat, conn)
}

// removeGame evicts a finished game and unbinds its players, so the same
// names can pair up for another match.
func (s *Server) removeGame(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	if !ok {
		return
	}
	delete(s.games, id)
	for _, name := range sess.names {
		if s.assigned[name] == id {
			delete(s.assigned, name)
		}
	}
	log.Info().Str("game", id).Msg("finished game removed")
}

func writeJoin(w http.ResponseWriter, status int, resp JoinResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
