package game

// Piece identifies a rank. The numeric values double as the 4-bit codes
// packed into a Board line, so they must stay below 16 and keep Empty at 0.
type Piece uint8

const (
	Empty Piece = iota
	Flag
	Bomb
	Landmine
	Engineer
	Lieutenant
	Captain
	Major
	Colonel
	Brigadier
	MajorGeneral
	General
	FieldMarshal
)

var pieceNames = map[Piece]string{
	Empty:        "",
	Flag:         "Flag",
	Bomb:         "Bomb",
	Landmine:     "Landmine",
	Engineer:     "Engineer",
	Lieutenant:   "Lieutenant",
	Captain:      "Captain",
	Major:        "Major",
	Colonel:      "Colonel",
	Brigadier:    "Brigadier",
	MajorGeneral: "MajorGeneral",
	General:      "General",
	FieldMarshal: "FieldMarshal",
}

var pieceByName = func() map[string]Piece {
	m := make(map[string]Piece, len(pieceNames))
	for p, name := range pieceNames {
		if p != Empty {
			m[name] = p
		}
	}
	return m
}()

// pieceQuota is the fixed army roster: how many of each rank a player
// places. The counts sum to 25, exactly the number of non-camp cells on a
// home half.
var pieceQuota = map[Piece]int{
	Flag:         1,
	Bomb:         2,
	Landmine:     3,
	Engineer:     3,
	Lieutenant:   3,
	Captain:      3,
	Major:        2,
	Colonel:      2,
	Brigadier:    2,
	MajorGeneral: 2,
	General:      1,
	FieldMarshal: 1,
}

// ArmySize is the number of pieces each player fields.
const ArmySize = 25

func (p Piece) String() string {
	if name, ok := pieceNames[p]; ok {
		return name
	}
	return "InvalidPiece"
}

// PieceFromName resolves a rank name from a placement document.
func PieceFromName(name string) (Piece, bool) {
	p, ok := pieceByName[name]
	return p, ok
}

// Quota returns how many copies of the rank a player's army contains.
func (p Piece) Quota() int {
	return pieceQuota[p]
}

// Valid reports whether p is a real rank from the catalog.
func (p Piece) Valid() bool {
	return p >= Flag && p <= FieldMarshal
}

// Movable reports whether the rank may ever leave its cell. The Flag and
// Landmines stay where they were placed for the whole game.
func (p Piece) Movable() bool {
	return p.Valid() && p != Flag && p != Landmine
}

// Strength is the numeric combat value compared when neither side is a
// special rank. Higher wins; the ordering is the code ordering.
func (p Piece) Strength() int {
	return int(p)
}

// Player is one of the two sides.
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "NoPlayer"
	}
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Occupant is a piece standing on a cell. Revealed is monotonic: it is set
// when the piece first takes part in combat and never cleared while the
// piece remains on the board.
type Occupant struct {
	Player   Player
	Piece    Piece
	Revealed bool
}
