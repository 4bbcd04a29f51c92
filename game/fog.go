package game

// FogCell is one cell as a player sees it. An unrevealed enemy piece
// shows presence and owner only: Hidden is set and Piece stays Empty.
type FogCell struct {
	Terrain  Terrain
	Occupied bool
	Owner    Player
	Piece    Piece
	Hidden   bool
}

// FogView is the redacted board projected for one player, plus the game
// status the player is allowed to know. It is a pure snapshot with no
// back-reference to the authoritative state.
type FogView struct {
	Viewer Player
	ToMove Player
	Turn   int
	Result Result
	Cells  [Rows][Cols]FogCell
}

// Fog projects the true state into viewer's visible board. Own pieces and
// revealed enemy pieces show their rank; every other enemy piece is an
// opaque marker. Views are recomputed on demand, never cached, since the
// revealed set changes with every combat.
func Fog(gs *GameState, viewer Player) FogView {
	view := FogView{
		Viewer: viewer,
		ToMove: gs.CurrentPlayer,
		Turn:   gs.Turn,
		Result: gs.Result,
	}
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			fc := FogCell{Terrain: gs.Topology.TerrainAt(c)}
			if occ, held := gs.Board.At(c); held {
				fc.Occupied = true
				fc.Owner = occ.Player
				if occ.Player == viewer || occ.Revealed {
					fc.Piece = occ.Piece
				} else {
					fc.Hidden = true
				}
			}
			view.Cells[y][x] = fc
		}
	}
	return view
}
