// Package server exposes games over HTTP and WebSocket: players pair up
// with a shared access code, then play through a per-game socket. Each
// player only ever receives their own fog-of-war view.
package server

import (
	"landbattle/game"
)

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client to server.
	TypeReady MessageType = "ready"
	TypeMove  MessageType = "move"

	// Server to client.
	TypeRole                 MessageType = "role"
	TypeStart                MessageType = "start"
	TypeView                 MessageType = "view"
	TypeGameOver             MessageType = "game_over"
	TypeError                MessageType = "error"
	TypeOpponentDisconnected MessageType = "opponent_disconnected"
)

// Message is the WebSocket envelope. Only the fields relevant to the type
// are populated.
type Message struct {
	Type    MessageType  `json:"type"`
	GameID  string       `json:"gameId,omitempty"`
	Player  string       `json:"player,omitempty"`  // role assignment: "Player1" or "Player2"
	Turn    string       `json:"turn,omitempty"`    // side to move
	Move    *MovePayload `json:"move,omitempty"`
	View    *ViewPayload `json:"view,omitempty"`
	Result  string       `json:"result,omitempty"`
	Error   string       `json:"error,omitempty"`
	ErrKind string       `json:"errKind,omitempty"` // MoveError kind for precise client messages
}

// MovePayload is a move request in board coordinates.
type MovePayload struct {
	FromX int `json:"fromX"`
	FromY int `json:"fromY"`
	ToX   int `json:"toX"`
	ToY   int `json:"toY"`
}

// ViewCell is one cell of a fog-of-war view on the wire. A hidden enemy
// piece carries owner and the hidden marker but no rank.
type ViewCell struct {
	Terrain string `json:"terrain"`
	Owner   int    `json:"owner,omitempty"`
	Piece   string `json:"piece,omitempty"`
	Hidden  bool   `json:"hidden,omitempty"`
}

// ViewPayload is a full fog-of-war view.
type ViewPayload struct {
	Viewer string       `json:"viewer"`
	ToMove string       `json:"toMove"`
	Turn   int          `json:"turn"`
	Result string       `json:"result,omitempty"`
	Cells  [][]ViewCell `json:"cells"`
}

func viewPayload(v game.FogView) *ViewPayload {
	p := &ViewPayload{
		Viewer: v.Viewer.String(),
		ToMove: v.ToMove.String(),
		Turn:   v.Turn,
		Cells:  make([][]ViewCell, game.Rows),
	}
	if v.Result != game.NoResult {
		p.Result = v.Result.String()
	}
	for y := 0; y < game.Rows; y++ {
		row := make([]ViewCell, game.Cols)
		for x := 0; x < game.Cols; x++ {
			fc := v.Cells[y][x]
			wc := ViewCell{Terrain: fc.Terrain.String()}
			if fc.Occupied {
				wc.Owner = int(fc.Owner)
				wc.Hidden = fc.Hidden
				if !fc.Hidden {
					wc.Piece = fc.Piece.String()
				}
			}
			row[x] = wc
		}
		p.Cells[y] = row
	}
	return p
}

// JoinResponse is the HTTP reply to /join.
type JoinResponse struct {
	GameID string `json:"gameId,omitempty"`
	Error  string `json:"error,omitempty"`
}
