package game

import (
	"encoding/binary"
	"hash/fnv"
)

// GameState is the dynamic state of one game: the authoritative board plus
// turn bookkeeping. The topology and rules are static and shared; only the
// board and the counters change.
type GameState struct {
	Topology      *Topology
	Board         *Board
	Rules         Rules
	CurrentPlayer Player
	Turn          int
	Result        Result
}

// StateHash is a position fingerprint.
type StateHash uint64

// NewGameState starts a game on a merged starting board. Player1 moves
// first.
func NewGameState(t *Topology, b *Board, r Rules) *GameState {
	return &GameState{
		Topology:      t,
		Board:         b,
		Rules:         r,
		CurrentPlayer: Player1,
	}
}

// Copy returns an independent deep copy of the state.
func (gs *GameState) Copy() *GameState {
	board := *gs.Board
	c := *gs
	c.Board = &board
	return &c
}

// IsTurn reports whether it is currently p's turn to move.
func (gs *GameState) IsTurn(p Player) bool {
	return gs.Result == NoResult && gs.CurrentPlayer == p
}

// ApplyMove validates one move and, if legal, applies it: the occupant is
// relocated, combat is resolved if the destination is held, the turn
// passes and terminal conditions are checked. On a MoveError the board is
// left untouched.
func (gs *GameState) ApplyMove(m Move) error {
	if gs.Result != NoResult {
		return &MoveError{Kind: GameAlreadyOver, Move: m}
	}
	if m.Player != gs.CurrentPlayer {
		return &MoveError{Kind: OutOfTurn, Move: m}
	}
	if err := gs.checkMove(m); err != nil {
		return err
	}

	if defender, held := gs.Board.At(m.To); held {
		gs.resolveAttack(m, defender)
	} else {
		gs.Board.moveOccupant(m.From, m.To)
	}

	gs.Turn++
	gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	gs.detectTerminal()
	return nil
}

// checkMove runs the ordered legality checks: ownership, reachability,
// mobility, friendly fire. Coordinates come from untrusted transports, so
// both cells are bounds-checked before the board is touched.
func (gs *GameState) checkMove(m Move) error {
	if !m.From.InGrid() {
		return &MoveError{Kind: NotYourPiece, Move: m}
	}
	occ, held := gs.Board.At(m.From)
	if !held || occ.Player != m.Player {
		return &MoveError{Kind: NotYourPiece, Move: m}
	}
	if !m.To.InGrid() || m.To == m.From || !gs.reachable(m.From, m.To, occ.Piece) {
		return &MoveError{Kind: Unreachable, Move: m}
	}
	if defender, held := gs.Board.At(m.To); held && defender.Player != m.Player && gs.Topology.IsCamp(m.To) {
		// Camp immunity: an occupied camp cannot be the target of a
		// capturing move.
		return &MoveError{Kind: Unreachable, Move: m}
	}
	if !occ.Piece.Movable() || gs.Topology.IsHeadquarters(m.From) {
		// Flags and landmines never move, and a piece that entered a
		// headquarters stays there.
		return &MoveError{Kind: Immobile, Move: m}
	}
	if defender, held := gs.Board.At(m.To); held && defender.Player == m.Player {
		return &MoveError{Kind: FriendlyFire, Move: m}
	}
	return nil
}

// reachable reports whether to can be reached from from under movement
// rules: a single step along the adjacency graph, or a railway ride.
// Ordinary pieces ride in a straight line; the Engineer may take turns.
func (gs *GameState) reachable(from, to Cell, piece Piece) bool {
	for _, n := range gs.Topology.Adjacent(from) {
		if n == to {
			return true
		}
	}
	if !gs.Topology.IsRailway(from) || !gs.Topology.IsRailway(to) {
		return false
	}
	if piece == Engineer {
		return gs.railReachable(from, to, true)
	}
	return gs.railLine(from, to)
}

// railLine checks a straight-line railway ride: every track segment in one
// direction, all intermediate cells empty.
func (gs *GameState) railLine(from, to Cell) bool {
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		cur := from
		for {
			next := Cell{X: cur.X + d[0], Y: cur.Y + d[1]}
			if !gs.Topology.railLinked(cur, next) {
				break
			}
			if next == to {
				return true
			}
			if _, held := gs.Board.At(next); held {
				break
			}
			cur = next
		}
	}
	return false
}

// railReachable walks the railway graph from from. With turns allowed it
// is a flood fill over empty railway cells; the destination itself may be
// occupied (that is the attack).
func (gs *GameState) railReachable(from, to Cell, turns bool) bool {
	if !turns {
		return gs.railLine(from, to)
	}
	var visited [NumCells]bool
	queue := []Cell{from}
	visited[from.Index()] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range gs.Topology.RailAdjacent(cur) {
			if n == to {
				return true
			}
			if visited[n.Index()] {
				continue
			}
			visited[n.Index()] = true
			if _, held := gs.Board.At(n); held {
				continue
			}
			queue = append(queue, n)
		}
	}
	return false
}

func (t *Topology) railLinked(a, b Cell) bool {
	if !a.InGrid() || !b.InGrid() {
		return false
	}
	for _, n := range t.railAdjacent[a.Index()] {
		if n == b {
			return true
		}
	}
	return false
}

// resolveAttack applies combat on m.To. Both occupants become revealed
// before any removal; revealing is permanent for whatever survives.
func (gs *GameState) resolveAttack(m Move, defender Occupant) {
	attacker, _ := gs.Board.At(m.From)
	gs.Board.reveal(m.From)
	gs.Board.reveal(m.To)

	switch resolveCombat(gs.Rules, attacker.Piece, defender.Piece) {
	case FlagCaptured:
		gs.Board.removeAt(m.To)
		gs.Board.moveOccupant(m.From, m.To)
		gs.Result = winnerFor(m.Player)
	case AttackerWins:
		gs.Board.removeAt(m.To)
		gs.Board.moveOccupant(m.From, m.To)
		gs.pieceLost(defender)
	case DefenderWins:
		gs.Board.removeAt(m.From)
		gs.pieceLost(attacker)
	case MutualLoss:
		gs.Board.removeAt(m.From)
		gs.Board.removeAt(m.To)
		gs.pieceLost(attacker)
		gs.pieceLost(defender)
	}
}

// pieceLost handles removal side effects. Losing the FieldMarshal reveals
// the owner's Flag to the opponent.
func (gs *GameState) pieceLost(occ Occupant) {
	if occ.Piece != FieldMarshal {
		return
	}
	for _, hq := range gs.Topology.HeadquartersCells(occ.Player) {
		if gs.Board.Owner(hq) == occ.Player && gs.Board.PieceAt(hq) == Flag {
			gs.Board.reveal(hq)
		}
	}
}

// detectTerminal checks end conditions after a move: a player with no
// legal move left loses, both stuck is a draw, and the move cap forces a
// draw. Flag capture is resolved earlier, inside combat.
func (gs *GameState) detectTerminal() {
	if gs.Result != NoResult {
		return
	}
	p1Stuck := !gs.hasLegalMove(Player1)
	p2Stuck := !gs.hasLegalMove(Player2)
	switch {
	case p1Stuck && p2Stuck:
		gs.Result = Draw
	case p1Stuck:
		gs.Result = Player2Wins
	case p2Stuck:
		gs.Result = Player1Wins
	case gs.Rules.MaxMoves > 0 && gs.Turn >= gs.Rules.MaxMoves:
		gs.Result = Draw
	}
}

// LegalMoves returns every legal move for p in the current position.
func (gs *GameState) LegalMoves(p Player) []Move {
	var moves []Move
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			from := Cell{X: x, Y: y}
			if gs.Board.Owner(from) != p {
				continue
			}
			for _, to := range gs.destinations(p, from) {
				moves = append(moves, Move{Player: p, From: from, To: to})
			}
		}
	}
	return moves
}

func (gs *GameState) hasLegalMove(p Player) bool {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			from := Cell{X: x, Y: y}
			if gs.Board.Owner(from) != p {
				continue
			}
			if len(gs.destinations(p, from)) > 0 {
				return true
			}
		}
	}
	return false
}

// destinations lists the cells the occupant of from may legally move to.
func (gs *GameState) destinations(p Player, from Cell) []Cell {
	occ, held := gs.Board.At(from)
	if !held || !occ.Piece.Movable() || gs.Topology.IsHeadquarters(from) {
		return nil
	}

	var seen [NumCells]bool
	var dests []Cell
	add := func(to Cell) {
		if seen[to.Index()] {
			return
		}
		seen[to.Index()] = true
		if defender, held := gs.Board.At(to); held {
			if defender.Player == p || gs.Topology.IsCamp(to) {
				return
			}
		}
		dests = append(dests, to)
	}

	for _, n := range gs.Topology.Adjacent(from) {
		add(n)
	}

	if gs.Topology.IsRailway(from) {
		if occ.Piece == Engineer {
			gs.railFloodFill(from, add)
		} else {
			gs.railLineScan(from, add)
		}
	}
	return dests
}

func (gs *GameState) railLineScan(from Cell, add func(Cell)) {
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		cur := from
		for {
			next := Cell{X: cur.X + d[0], Y: cur.Y + d[1]}
			if !gs.Topology.railLinked(cur, next) {
				break
			}
			add(next)
			if _, held := gs.Board.At(next); held {
				break
			}
			cur = next
		}
	}
}

func (gs *GameState) railFloodFill(from Cell, add func(Cell)) {
	var visited [NumCells]bool
	queue := []Cell{from}
	visited[from.Index()] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range gs.Topology.RailAdjacent(cur) {
			if visited[n.Index()] {
				continue
			}
			visited[n.Index()] = true
			add(n)
			if _, held := gs.Board.At(n); held {
				continue
			}
			queue = append(queue, n)
		}
	}
}

// Hash fingerprints the position, the revealed set and the side to move.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	for _, line := range gs.Board.lines {
		binary.Write(hasher, binary.LittleEndian, line)
	}
	binary.Write(hasher, binary.LittleEndian, gs.Board.owners[0])
	binary.Write(hasher, binary.LittleEndian, gs.Board.owners[1])
	binary.Write(hasher, binary.LittleEndian, gs.Board.revealed)
	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	return StateHash(hasher.Sum64())
}
