package game

// Assignment places one rank on one cell.
type Assignment struct {
	Cell  Cell
	Piece Piece
}

// Placement is one player's full initial setup in board coordinates.
type Placement []Assignment

// BuildSide validates a player's placement against the catalog and the
// topology and returns that player's half as a partial board. The build
// is all-or-nothing: any violation returns a PlacementError and no board.
//
// Placement rules: every cell on the owner's half and not a camp; the
// Flag on a headquarters cell; Landmines on the two back rows only;
// Bombs anywhere but the front row; every rank placed exactly its quota.
func BuildSide(t *Topology, p Player, placement Placement) (*Board, error) {
	if !p.Valid() {
		return nil, &PlacementError{Kind: IllegalZone, Reason: "unknown player"}
	}

	board := &Board{}
	counts := make(map[Piece]int, len(pieceQuota))

	for _, a := range placement {
		if _, err := EncodePiece(a.Piece); err != nil {
			return nil, err
		}
		if a.Piece == Empty {
			return nil, &PlacementError{Kind: EncodingOutOfRange, Cell: a.Cell, Reason: "cannot place an empty rank"}
		}
		if err := checkZone(t, p, a); err != nil {
			return nil, err
		}
		if board.PieceAt(a.Cell) != Empty {
			return nil, &PlacementError{Kind: DuplicateCell, Cell: a.Cell, Piece: a.Piece}
		}
		counts[a.Piece]++
		if counts[a.Piece] > a.Piece.Quota() {
			return nil, &PlacementError{Kind: QuotaMismatch, Cell: a.Cell, Piece: a.Piece, Reason: "over quota"}
		}
		board.place(a.Cell, p, a.Piece)
	}

	for piece, quota := range pieceQuota {
		if counts[piece] < quota {
			return nil, &PlacementError{Kind: IncompleteArmy, Piece: piece,
				Reason: "army is missing pieces of this rank"}
		}
	}

	return board, nil
}

func checkZone(t *Topology, p Player, a Assignment) error {
	if !a.Cell.InGrid() || !t.HomeHalf(p, a.Cell) {
		return &PlacementError{Kind: IllegalZone, Cell: a.Cell, Piece: a.Piece, Reason: "outside home half"}
	}
	terrain := t.TerrainAt(a.Cell)
	if terrain == TerrainCamp {
		return &PlacementError{Kind: IllegalZone, Cell: a.Cell, Piece: a.Piece, Reason: "camps start empty"}
	}
	switch a.Piece {
	case Flag:
		if terrain != TerrainHeadquarters {
			return &PlacementError{Kind: IllegalZone, Cell: a.Cell, Piece: a.Piece, Reason: "flag belongs in a headquarters"}
		}
	case Landmine:
		if !t.BackRows(p, a.Cell) {
			return &PlacementError{Kind: IllegalZone, Cell: a.Cell, Piece: a.Piece, Reason: "landmines belong on the two back rows"}
		}
	case Bomb:
		if t.FrontRow(p, a.Cell) {
			return &PlacementError{Kind: IllegalZone, Cell: a.Cell, Piece: a.Piece, Reason: "bombs may not start on the front row"}
		}
	}
	return nil
}

// StandardPlacement returns a fixed legal setup for a side, used by the
// demo, quick-start games and tests. Row 0 of the layout is the player's
// back row.
func StandardPlacement(p Player) Placement {
	placement := make(Placement, 0, ArmySize)
	for y, row := range standardLayout {
		for x, piece := range row {
			if piece == Empty {
				continue
			}
			c := Cell{X: x, Y: y}
			if p == Player2 {
				c = c.Mirror()
			}
			placement = append(placement, Assignment{Cell: c, Piece: piece})
		}
	}
	return placement
}

// standardLayout is side-local: row 0 is the back row, camps left Empty.
var standardLayout = [6][Cols]Piece{
	{Landmine, Flag, Major, Landmine, Captain},
	{Engineer, Landmine, General, Brigadier, MajorGeneral},
	{Colonel, Empty, FieldMarshal, Empty, Colonel},
	{Captain, Brigadier, Empty, MajorGeneral, Major},
	{Bomb, Empty, Bomb, Empty, Lieutenant},
	{Engineer, Lieutenant, Captain, Lieutenant, Engineer},
}
