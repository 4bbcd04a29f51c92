package game

// Board is the authoritative occupancy state. Ranks are packed four bits
// per cell into one uint64 per column, the layout the builder tool emits
// and the original wire format uses. Ownership and revealed status change
// during play and are tracked out-of-band as per-cell bit planes.
type Board struct {
	lines    [Cols]uint64
	owners   [2]uint64 // bit set at Cell.Index() when that side occupies the cell
	revealed uint64
}

// EncodePiece packs a rank (or Empty) into its 4-bit code. Ranks outside
// the catalog do not encode.
func EncodePiece(p Piece) (uint8, error) {
	if p != Empty && !p.Valid() {
		return 0, &PlacementError{Kind: EncodingOutOfRange, Piece: p}
	}
	return uint8(p), nil
}

// DecodePiece unpacks a 4-bit code back into a rank. Codes 13..15 are
// unassigned and do not decode.
func DecodePiece(code uint8) (Piece, error) {
	p := Piece(code)
	if p != Empty && !p.Valid() {
		return Empty, &PlacementError{Kind: EncodingOutOfRange, Piece: p}
	}
	return p, nil
}

// PieceAt returns the rank on c, Empty if the cell is vacant.
func (b *Board) PieceAt(c Cell) Piece {
	shift := uint(c.Y) * 4
	return Piece((b.lines[c.X] >> shift) & 0xf)
}

// Owner returns which side occupies c, NoPlayer for a vacant cell.
func (b *Board) Owner(c Cell) Player {
	bit := uint64(1) << uint(c.Index())
	if b.owners[0]&bit != 0 {
		return Player1
	}
	if b.owners[1]&bit != 0 {
		return Player2
	}
	return NoPlayer
}

// At returns the occupant of c, if any.
func (b *Board) At(c Cell) (Occupant, bool) {
	owner := b.Owner(c)
	if owner == NoPlayer {
		return Occupant{}, false
	}
	return Occupant{
		Player:   owner,
		Piece:    b.PieceAt(c),
		Revealed: b.revealed&(uint64(1)<<uint(c.Index())) != 0,
	}, true
}

// place puts a piece for a player on a vacant cell.
func (b *Board) place(c Cell, p Player, piece Piece) {
	shift := uint(c.Y) * 4
	b.lines[c.X] &^= 0xf << shift
	b.lines[c.X] |= uint64(piece) << shift
	b.owners[p-1] |= uint64(1) << uint(c.Index())
}

// removeAt clears a cell entirely, revealed bit included.
func (b *Board) removeAt(c Cell) {
	shift := uint(c.Y) * 4
	b.lines[c.X] &^= 0xf << shift
	bit := uint64(1) << uint(c.Index())
	b.owners[0] &^= bit
	b.owners[1] &^= bit
	b.revealed &^= bit
}

// moveOccupant relocates the occupant of from onto the vacant cell to,
// carrying its revealed status along.
func (b *Board) moveOccupant(from, to Cell) {
	occ, ok := b.At(from)
	if !ok {
		return
	}
	b.removeAt(from)
	b.place(to, occ.Player, occ.Piece)
	if occ.Revealed {
		b.reveal(to)
	}
}

// reveal marks the occupant of c as revealed. Revealing is monotonic; the
// bit is only ever cleared together with the occupant itself.
func (b *Board) reveal(c Cell) {
	b.revealed |= uint64(1) << uint(c.Index())
}

// Lines exposes the packed per-column encoding, the builder tool's output
// artifact.
func (b *Board) Lines() [Cols]uint64 {
	return b.lines
}

// Count returns how many pieces of the given rank p owns on the board.
func (b *Board) Count(p Player, piece Piece) int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			if b.Owner(c) == p && b.PieceAt(c) == piece {
				n++
			}
		}
	}
	return n
}

// Pack serializes the board as one nibble per cell in row-major order,
// the persisted form exchanged between the builder tool and the server.
// Even cell indices occupy the low nibble of their byte.
func (b *Board) Pack() []byte {
	out := make([]byte, NumCells/2)
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			code := uint8(b.PieceAt(c))
			idx := c.Index()
			if idx%2 == 0 {
				out[idx/2] |= code
			} else {
				out[idx/2] |= code << 4
			}
		}
	}
	return out
}

// UnpackSide rebuilds one player's partial board from its packed form.
// Every non-empty cell is attributed to p; unassigned codes fail.
func UnpackSide(data []byte, p Player) (*Board, error) {
	if len(data) != NumCells/2 {
		return nil, &PlacementError{Kind: EncodingOutOfRange, Reason: "packed board must be 30 bytes"}
	}
	b := &Board{}
	for idx := 0; idx < NumCells; idx++ {
		code := data[idx/2]
		if idx%2 == 0 {
			code &= 0xf
		} else {
			code >>= 4
		}
		piece, err := DecodePiece(code)
		if err != nil {
			return nil, err
		}
		if piece == Empty {
			continue
		}
		b.place(Cell{X: idx % Cols, Y: idx / Cols}, p, piece)
	}
	return b, nil
}

// Merge combines two independently built half boards into the full
// starting board. The halves must not overlap.
func Merge(a, b *Board) (*Board, error) {
	for x := 0; x < Cols; x++ {
		for y := 0; y < Rows; y++ {
			c := Cell{X: x, Y: y}
			if a.PieceAt(c) != Empty && b.PieceAt(c) != Empty {
				return nil, &PlacementError{Kind: DuplicateCell, Cell: c, Reason: "halves overlap"}
			}
		}
	}
	merged := &Board{revealed: a.revealed | b.revealed}
	for x := 0; x < Cols; x++ {
		merged.lines[x] = a.lines[x] | b.lines[x]
	}
	merged.owners[0] = a.owners[0] | b.owners[0]
	merged.owners[1] = a.owners[1] | b.owners[1]
	return merged, nil
}
