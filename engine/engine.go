// Package engine drives one game: it owns the authoritative GameState and
// is the only writer to it. The surrounding transport decides when to ask
// for moves; the engine is a synchronous state transition surface.
package engine

import (
	"sync"

	"github.com/rs/zerolog/log"

	"landbattle/game"
)

// Engine holds one game instance. All methods are safe for concurrent use
// by the two player connections; a move submitted while another is still
// being applied is rejected with a Busy error rather than queued.
type Engine struct {
	mu    sync.Mutex
	state *game.GameState
}

// New wraps a started GameState.
func New(state *game.GameState) *Engine {
	return &Engine{state: state}
}

// NewStandardGame builds a game from the fixed standard placements for
// both sides, for quick-start play and self-play runs.
func NewStandardGame(rules game.Rules) (*Engine, error) {
	topo := game.CreateTopology()
	side1, err := game.BuildSide(topo, game.Player1, game.StandardPlacement(game.Player1))
	if err != nil {
		return nil, err
	}
	side2, err := game.BuildSide(topo, game.Player2, game.StandardPlacement(game.Player2))
	if err != nil {
		return nil, err
	}
	board, err := game.Merge(side1, side2)
	if err != nil {
		return nil, err
	}
	return New(game.NewGameState(topo, board, rules)), nil
}

// SubmitMove applies one move for p and returns p's updated view. On any
// MoveError the state is unchanged and the same player may retry.
func (e *Engine) SubmitMove(p game.Player, m game.Move) (game.FogView, error) {
	if !e.mu.TryLock() {
		return game.FogView{}, &game.MoveError{Kind: game.Busy, Move: m}
	}
	defer e.mu.Unlock()

	m.Player = p
	if err := e.state.ApplyMove(m); err != nil {
		log.Debug().Str("player", p.String()).Err(err).Msg("move rejected")
		return game.FogView{}, err
	}

	log.Info().
		Str("player", p.String()).
		Int("turn", e.state.Turn).
		Msgf("moved (%d,%d)->(%d,%d)", m.From.X, m.From.Y, m.To.X, m.To.Y)

	if e.state.Result != game.NoResult {
		log.Info().Str("result", e.state.Result.String()).Msg("game over")
	}
	return game.Fog(e.state, p), nil
}

// CurrentView returns p's fog-of-war projection of the position.
func (e *Engine) CurrentView(p game.Player) game.FogView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return game.Fog(e.state, p)
}

// TerminalResult returns the game result, if the game has ended.
func (e *Engine) TerminalResult() (game.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Result == game.NoResult {
		return game.NoResult, false
	}
	return e.state.Result, true
}

// IsTurn reports whether the game is running and it is p's turn, so the
// transport layer can enforce its timing policy.
func (e *Engine) IsTurn(p game.Player) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.IsTurn(p)
}

// ToMove returns the side whose turn it is.
func (e *Engine) ToMove() game.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CurrentPlayer
}

// LegalMoves lists the current player's legal moves. Used by self-play
// drivers; networked players compose their own moves.
func (e *Engine) LegalMoves() []game.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.LegalMoves(e.state.CurrentPlayer)
}
