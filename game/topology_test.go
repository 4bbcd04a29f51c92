package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func containsCell(cells []Cell, c Cell) bool {
	for _, n := range cells {
		if n == c {
			return true
		}
	}
	return false
}

func TestTerrainClassification(t *testing.T) {
	topo := CreateTopology()

	require.Equal(t, TerrainHeadquarters, topo.TerrainAt(Cell{X: 1, Y: 0}))
	require.Equal(t, TerrainHeadquarters, topo.TerrainAt(Cell{X: 3, Y: 11}))
	require.Equal(t, TerrainCamp, topo.TerrainAt(Cell{X: 2, Y: 3}))
	require.Equal(t, TerrainCamp, topo.TerrainAt(Cell{X: 2, Y: 8}))
	require.Equal(t, TerrainRailway, topo.TerrainAt(Cell{X: 2, Y: 1}))
	require.Equal(t, TerrainRailway, topo.TerrainAt(Cell{X: 0, Y: 3}))
	require.Equal(t, TerrainNormal, topo.TerrainAt(Cell{X: 2, Y: 0}))
	require.Equal(t, TerrainImpassable, topo.TerrainAt(Cell{X: 5, Y: 0}))
	require.Equal(t, TerrainImpassable, topo.TerrainAt(Cell{X: 0, Y: -1}))

	camps := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if topo.IsCamp(Cell{X: x, Y: y}) {
				camps++
			}
		}
	}
	require.Equal(t, 10, camps, "five camps per half")
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	topo := CreateTopology()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			for _, n := range topo.Adjacent(c) {
				require.True(t, containsCell(topo.Adjacent(n), c),
					"edge (%d,%d)-(%d,%d) must run both ways", c.X, c.Y, n.X, n.Y)
			}
			for _, n := range topo.RailAdjacent(c) {
				require.True(t, containsCell(topo.RailAdjacent(n), c),
					"rail edge (%d,%d)-(%d,%d) must run both ways", c.X, c.Y, n.X, n.Y)
			}
		}
	}
}

func TestFrontLineHasThreeCrossings(t *testing.T) {
	topo := CreateTopology()
	for x := 0; x < Cols; x++ {
		crossing := containsCell(topo.Adjacent(Cell{X: x, Y: 5}), Cell{X: x, Y: 6})
		if x == 0 || x == 2 || x == 4 {
			require.True(t, crossing, "column %d crosses the front line", x)
		} else {
			require.False(t, crossing, "column %d has no crossing", x)
		}
	}

	// Only the outer crossings carry track; the middle one is a road.
	require.True(t, containsCell(topo.RailAdjacent(Cell{X: 0, Y: 5}), Cell{X: 0, Y: 6}))
	require.True(t, containsCell(topo.RailAdjacent(Cell{X: 4, Y: 5}), Cell{X: 4, Y: 6}))
	require.False(t, containsCell(topo.RailAdjacent(Cell{X: 2, Y: 5}), Cell{X: 2, Y: 6}))
}

func TestCampDiagonals(t *testing.T) {
	topo := CreateTopology()
	camp := Cell{X: 2, Y: 3}
	for _, n := range []Cell{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 1, Y: 4}, {X: 3, Y: 4}} {
		require.True(t, containsCell(topo.Adjacent(camp), n), "camp reaches (%d,%d)", n.X, n.Y)
		require.True(t, containsCell(topo.Adjacent(n), camp), "(%d,%d) reaches the camp", n.X, n.Y)
	}

	// Non-camp cells have no diagonal edges between each other.
	require.False(t, containsCell(topo.Adjacent(Cell{X: 0, Y: 0}), Cell{X: 1, Y: 1}))
}

func TestPlacementZones(t *testing.T) {
	topo := CreateTopology()

	require.True(t, topo.HomeHalf(Player1, Cell{X: 0, Y: 5}))
	require.False(t, topo.HomeHalf(Player1, Cell{X: 0, Y: 6}))
	require.True(t, topo.HomeHalf(Player2, Cell{X: 0, Y: 6}))
	require.False(t, topo.HomeHalf(Player2, Cell{X: 0, Y: 5}))

	require.True(t, topo.BackRows(Player1, Cell{X: 4, Y: 1}))
	require.False(t, topo.BackRows(Player1, Cell{X: 4, Y: 2}))
	require.True(t, topo.BackRows(Player2, Cell{X: 4, Y: 10}))

	require.True(t, topo.FrontRow(Player1, Cell{X: 2, Y: 5}))
	require.True(t, topo.FrontRow(Player2, Cell{X: 2, Y: 6}))
	require.False(t, topo.FrontRow(Player2, Cell{X: 2, Y: 5}))

	require.ElementsMatch(t, []Cell{{X: 1, Y: 0}, {X: 3, Y: 0}}, topo.HeadquartersCells(Player1))
	require.ElementsMatch(t, []Cell{{X: 1, Y: 11}, {X: 3, Y: 11}}, topo.HeadquartersCells(Player2))
}

func TestMirrorMapsBetweenHalves(t *testing.T) {
	topo := CreateTopology()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			m := c.Mirror()
			require.Equal(t, c, m.Mirror(), "mirror is an involution")
			require.Equal(t, topo.TerrainAt(c), topo.TerrainAt(m), "the board is symmetric at (%d,%d)", x, y)
		}
	}
}

func TestArmySizeMatchesPlaceableCells(t *testing.T) {
	topo := CreateTopology()
	placeable := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			if topo.HomeHalf(Player1, c) && !topo.IsCamp(c) {
				placeable++
			}
		}
	}
	require.Equal(t, ArmySize, placeable, "the full army exactly fills the non-camp cells")
}
