package server

import (
	"context"
	"errors"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog/log"

	"landbattle/engine"
	"landbattle/game"
)

const writeTimeout = 10 * time.Second

// session is one running game and its two player connections. The engine
// arbitrates; the session only routes messages and enforces seats.
type session struct {
	id    string
	eng   *engine.Engine
	names [2]string

	onFinished func() // installed by the server, runs once per session

	mu       chan struct{} // semaphore guarding the fields below
	conns    [2]*websocket.Conn
	ready    [2]bool
	seen     [2]bool // seat has connected at least once
	finished bool
}

func newSession(rules game.Rules, player1, player2 string) (*session, error) {
	eng, err := engine.NewStandardGame(rules)
	if err != nil {
		return nil, err
	}
	s := &session{
		eng:   eng,
		names: [2]string{player1, player2},
		mu:    make(chan struct{}, 1),
	}
	s.mu <- struct{}{}
	return s, nil
}

func (s *session) lock() {
	<-s.mu
}

func (s *session) unlock() {
	s.mu <- struct{}{}
}

// seatOf maps a player name to a side.
func (s *session) seatOf(name string) game.Player {
	switch name {
	case s.names[0]:
		return game.Player1
	case s.names[1]:
		return game.Player2
	default:
		return game.NoPlayer
	}
}

// run services one player connection until it drops. A reconnect for a
// seat replaces that seat's previous connection.
func (s *session) run(ctx context.Context, seat game.Player, conn *websocket.Conn) {
	s.lock()
	if old := s.conns[seat-1]; old != nil {
		old.Close(websocket.StatusPolicyViolation, "replaced by a newer connection")
	}
	s.conns[seat-1] = conn
	s.seen[seat-1] = true
	s.unlock()

	s.sendTo(seat, Message{
		Type:   TypeRole,
		GameID: s.id,
		Player: seat.String(),
	})

	for {
		var msg Message
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			s.disconnect(seat, conn)
			return
		}
		s.handleMessage(seat, msg)
	}
}

func (s *session) handleMessage(seat game.Player, msg Message) {
	switch msg.Type {
	case TypeReady:
		s.lock()
		s.ready[seat-1] = true
		bothReady := s.ready[0] && s.ready[1]
		s.unlock()
		if bothReady {
			turn := s.eng.ToMove().String()
			for _, p := range []game.Player{game.Player1, game.Player2} {
				view := s.eng.CurrentView(p)
				s.sendTo(p, Message{Type: TypeStart, GameID: s.id, Turn: turn, View: viewPayload(view)})
			}
		}
	case TypeMove:
		if msg.Move == nil {
			s.sendTo(seat, Message{Type: TypeError, Error: "move payload missing"})
			return
		}
		s.applyMove(seat, *msg.Move)
	default:
		s.sendTo(seat, Message{Type: TypeError, Error: "unknown message type"})
	}
}

// applyMove feeds one move to the engine and fans the updated views out.
func (s *session) applyMove(seat game.Player, mp MovePayload) {
	move := game.Move{
		Player: seat,
		From:   game.Cell{X: mp.FromX, Y: mp.FromY},
		To:     game.Cell{X: mp.ToX, Y: mp.ToY},
	}
	if _, err := s.eng.SubmitMove(seat, move); err != nil {
		var moveErr *game.MoveError
		reply := Message{Type: TypeError, Error: err.Error()}
		if errors.As(err, &moveErr) {
			reply.ErrKind = moveErr.Kind.String()
		}
		s.sendTo(seat, reply)
		return
	}

	turn := s.eng.ToMove().String()
	result, over := s.eng.TerminalResult()
	for _, p := range []game.Player{game.Player1, game.Player2} {
		view := s.eng.CurrentView(p)
		s.sendTo(p, Message{Type: TypeView, Turn: turn, View: viewPayload(view)})
		if over {
			s.sendTo(p, Message{Type: TypeGameOver, Result: result.String()})
		}
	}
	if over {
		s.finish()
	}
}

// finish marks the session done, exactly once, and hands it back to the
// server for eviction.
func (s *session) finish() {
	s.lock()
	done := s.finished
	s.finished = true
	s.unlock()
	if done || s.onFinished == nil {
		return
	}
	s.onFinished()
}

// disconnect drops a seat's connection and tells the opponent. A stale
// connection that a reconnect already replaced is ignored. When both
// seats are gone the session is finished so the server can evict it.
func (s *session) disconnect(seat game.Player, conn *websocket.Conn) {
	conn.Close(websocket.StatusNormalClosure, "bye")
	s.lock()
	if s.conns[seat-1] != conn {
		s.unlock()
		return
	}
	s.conns[seat-1] = nil
	bothGone := s.seen[0] && s.seen[1] && s.conns[0] == nil && s.conns[1] == nil
	s.unlock()
	log.Info().Str("game", s.id).Str("player", seat.String()).Msg("player disconnected")
	s.sendTo(seat.Opponent(), Message{Type: TypeOpponentDisconnected, GameID: s.id})
	if bothGone {
		s.finish()
	}
}

func (s *session) sendTo(seat game.Player, msg Message) {
	s.lock()
	conn := s.conns[seat-1]
	s.unlock()
	if conn == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		log.Warn().Str("game", s.id).Str("player", seat.String()).Err(err).Msg("send failed")
	}
}
