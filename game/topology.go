package game

// Board dimensions. Rows 0..5 are Player1's home half (row 0 is Player1's
// back row), rows 6..11 are Player2's.
const (
	Cols     = 5
	Rows     = 12
	NumCells = Cols * Rows
)

// Cell identifies a board position by column and row.
type Cell struct {
	X int
	Y int
}

// Index is the row-major cell index used by the bit planes and the packed
// export format.
func (c Cell) Index() int {
	return c.Y*Cols + c.X
}

func (c Cell) InGrid() bool {
	return c.X >= 0 && c.X < Cols && c.Y >= 0 && c.Y < Rows
}

// Mirror maps a cell to the same position seen from the other side of the
// board. Used to build Player2 placements from side-local coordinates.
func (c Cell) Mirror() Cell {
	return Cell{X: c.X, Y: Rows - 1 - c.Y}
}

// Terrain classifies a cell. Terrain is fixed at topology-definition time
// and identical for every game instance.
type Terrain int

const (
	TerrainNormal Terrain = iota
	TerrainRailway
	TerrainCamp
	TerrainHeadquarters
	TerrainImpassable // anything off the 5x12 grid
)

func (t Terrain) String() string {
	switch t {
	case TerrainNormal:
		return "Normal"
	case TerrainRailway:
		return "Railway"
	case TerrainCamp:
		return "Camp"
	case TerrainHeadquarters:
		return "Headquarters"
	default:
		return "Impassable"
	}
}

// Topology is the static movement graph: step adjacency (roads, camp
// diagonals, front-line crossings) and the railway sub-graph. It is
// immutable after CreateTopology and safe to share across games.
type Topology struct {
	adjacent     [NumCells][]Cell
	railAdjacent [NumCells][]Cell
}

// CreateTopology builds the standard land-battle-chess board graph.
func CreateTopology() *Topology {
	t := &Topology{}

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				n := Cell{X: x + d[0], Y: y + d[1]}
				if !n.InGrid() {
					continue
				}
				if crossesFrontLine(c, n) && !frontLineCrossing[x] {
					continue
				}
				t.addEdge(c, n)
				if railEdge(c, n) {
					t.addRailEdge(c, n)
				}
			}
		}
	}

	// Camps connect diagonally to all four neighbours, both ways.
	for _, camp := range campCells {
		for _, d := range [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
			n := Cell{X: camp.X + d[0], Y: camp.Y + d[1]}
			if !n.InGrid() {
				continue
			}
			t.addEdge(camp, n)
			t.addEdge(n, camp)
		}
	}

	return t
}

func (t *Topology) addEdge(from, to Cell) {
	for _, c := range t.adjacent[from.Index()] {
		if c == to {
			return
		}
	}
	t.adjacent[from.Index()] = append(t.adjacent[from.Index()], to)
}

func (t *Topology) addRailEdge(from, to Cell) {
	for _, c := range t.railAdjacent[from.Index()] {
		if c == to {
			return
		}
	}
	t.railAdjacent[from.Index()] = append(t.railAdjacent[from.Index()], to)
}

// Adjacent returns every cell reachable from c in a single step.
func (t *Topology) Adjacent(c Cell) []Cell {
	return t.adjacent[c.Index()]
}

// RailAdjacent returns the railway neighbours of c: cells reachable over a
// railway track segment. The middle front-line crossing is a plain road,
// so it is step-adjacent but not rail-adjacent.
func (t *Topology) RailAdjacent(c Cell) []Cell {
	return t.railAdjacent[c.Index()]
}

// TerrainAt returns the terrain class of c.
func (t *Topology) TerrainAt(c Cell) Terrain {
	if !c.InGrid() {
		return TerrainImpassable
	}
	for _, camp := range campCells {
		if camp == c {
			return TerrainCamp
		}
	}
	for _, hq := range headquartersCells {
		if hq == c {
			return TerrainHeadquarters
		}
	}
	if onRailway(c) {
		return TerrainRailway
	}
	return TerrainNormal
}

func (t *Topology) IsCamp(c Cell) bool {
	return t.TerrainAt(c) == TerrainCamp
}

func (t *Topology) IsHeadquarters(c Cell) bool {
	return t.TerrainAt(c) == TerrainHeadquarters
}

func (t *Topology) IsRailway(c Cell) bool {
	return onRailway(c)
}

// HomeHalf reports whether c lies on p's half of the board.
func (t *Topology) HomeHalf(p Player, c Cell) bool {
	if !c.InGrid() {
		return false
	}
	if p == Player1 {
		return c.Y <= 5
	}
	return c.Y >= 6
}

// BackRows reports whether c is on one of p's two back rows, the only
// rows where Landmines may be placed.
func (t *Topology) BackRows(p Player, c Cell) bool {
	if p == Player1 {
		return c.Y <= 1
	}
	return c.Y >= 10
}

// FrontRow reports whether c is on p's front row, where Bombs may not be
// placed.
func (t *Topology) FrontRow(p Player, c Cell) bool {
	if p == Player1 {
		return c.Y == 5
	}
	return c.Y == 6
}

// HeadquartersCells returns p's two headquarters cells.
func (t *Topology) HeadquartersCells(p Player) []Cell {
	if p == Player1 {
		return headquartersCells[:2]
	}
	return headquartersCells[2:]
}

func crossesFrontLine(a, b Cell) bool {
	return (a.Y == 5 && b.Y == 6) || (a.Y == 6 && b.Y == 5)
}

func onRailway(c Cell) bool {
	if c.Y == 1 || c.Y == 5 || c.Y == 6 || c.Y == 10 {
		return true
	}
	return (c.X == 0 || c.X == Cols-1) && c.Y >= 1 && c.Y <= 10
}

// railEdge reports whether the track between two orthogonally adjacent
// cells is railway. Horizontal track runs along rows 1, 5, 6 and 10,
// vertical track along the outer columns between those rows.
func railEdge(a, b Cell) bool {
	if a.Y == b.Y {
		return a.Y == 1 || a.Y == 5 || a.Y == 6 || a.Y == 10
	}
	if a.X == b.X {
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		return (a.X == 0 || a.X == Cols-1) && lo >= 1 && hi <= 10
	}
	return false
}

// GLOBAL DATA. The standard board: two headquarters per side on the back
// row, five camps per side arranged in an X, and the three front-line
// crossings at columns 0, 2 and 4.

var headquartersCells = []Cell{
	{X: 1, Y: 0}, {X: 3, Y: 0}, // Player1
	{X: 1, Y: 11}, {X: 3, Y: 11}, // Player2
}

var campCells = []Cell{
	{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 4}, {X: 3, Y: 4}, // Player1 half
	{X: 1, Y: 9}, {X: 3, Y: 9}, {X: 2, Y: 8}, {X: 1, Y: 7}, {X: 3, Y: 7}, // Player2 half
}

var frontLineCrossing = [Cols]bool{true, false, true, false, true}
