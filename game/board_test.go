package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPieceCodecRoundTrip(t *testing.T) {
	for p := Empty; p <= FieldMarshal; p++ {
		code, err := EncodePiece(p)
		require.NoError(t, err, "%s should encode", p)
		got, err := DecodePiece(code)
		require.NoError(t, err, "code %d should decode", code)
		require.Equal(t, p, got, "round trip should preserve %s", p)
	}
}

func TestPieceCodecRejectsOutOfRange(t *testing.T) {
	for _, p := range []Piece{13, 14, 15, 16, 200} {
		_, err := EncodePiece(p)
		require.Error(t, err, "piece %d is outside the catalog", p)
		var placementErr *PlacementError
		require.ErrorAs(t, err, &placementErr)
		require.Equal(t, EncodingOutOfRange, placementErr.Kind)
	}
	for _, code := range []uint8{13, 14, 15} {
		_, err := DecodePiece(code)
		require.Error(t, err, "code %d is unassigned", code)
	}
}

func TestBoardPlaceAndRemove(t *testing.T) {
	b := &Board{}
	c := Cell{X: 2, Y: 7}

	_, held := b.At(c)
	require.False(t, held, "fresh board should be empty")

	b.place(c, Player2, General)
	occ, held := b.At(c)
	require.True(t, held)
	require.Equal(t, Occupant{Player: Player2, Piece: General}, occ)

	b.reveal(c)
	occ, _ = b.At(c)
	require.True(t, occ.Revealed)

	b.removeAt(c)
	_, held = b.At(c)
	require.False(t, held, "removal should clear the cell")
	require.Equal(t, Empty, b.PieceAt(c))
}

func TestMoveOccupantCarriesRevealed(t *testing.T) {
	b := &Board{}
	from, to := Cell{X: 0, Y: 2}, Cell{X: 0, Y: 3}
	b.place(from, Player1, Captain)
	b.reveal(from)

	b.moveOccupant(from, to)

	_, held := b.At(from)
	require.False(t, held, "source should be vacated")
	occ, held := b.At(to)
	require.True(t, held)
	require.Equal(t, Captain, occ.Piece)
	require.True(t, occ.Revealed, "revealed status travels with the piece")
}

func TestPackUnpackRoundTrip(t *testing.T) {
	topo := CreateTopology()
	side, err := BuildSide(topo, Player1, StandardPlacement(Player1))
	require.NoError(t, err)

	packed := side.Pack()
	require.Len(t, packed, NumCells/2)

	restored, err := UnpackSide(packed, Player1)
	require.NoError(t, err)
	require.Equal(t, side.Lines(), restored.Lines(), "packed lines should survive the round trip")
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := Cell{X: x, Y: y}
			require.Equal(t, side.Owner(c), restored.Owner(c), "owner at (%d,%d)", x, y)
		}
	}
}

func TestUnpackSideRejectsBadInput(t *testing.T) {
	_, err := UnpackSide(make([]byte, 7), Player1)
	require.Error(t, err, "truncated data should not unpack")

	data := make([]byte, NumCells/2)
	data[0] = 0x0d // unassigned code 13
	_, err = UnpackSide(data, Player1)
	require.Error(t, err, "unassigned codes should not unpack")
}

func TestMerge(t *testing.T) {
	topo := CreateTopology()
	side1, err := BuildSide(topo, Player1, StandardPlacement(Player1))
	require.NoError(t, err)
	side2, err := BuildSide(topo, Player2, StandardPlacement(Player2))
	require.NoError(t, err)

	t.Run("disjoint halves merge", func(t *testing.T) {
		board, err := Merge(side1, side2)
		require.NoError(t, err)
		for piece, quota := range pieceQuota {
			require.Equal(t, quota, board.Count(Player1, piece), "Player1 %s count", piece)
			require.Equal(t, quota, board.Count(Player2, piece), "Player2 %s count", piece)
		}
	})

	t.Run("overlapping halves fail", func(t *testing.T) {
		_, err := BuildSide(topo, Player2, StandardPlacement(Player1))
		require.Error(t, err, "Player2 cannot place on Player1's half")

		other, err := BuildSide(topo, Player1, StandardPlacement(Player1))
		require.NoError(t, err)
		_, err = Merge(side1, other)
		require.Error(t, err)
		var placementErr *PlacementError
		require.ErrorAs(t, err, &placementErr)
		require.Equal(t, DuplicateCell, placementErr.Kind)
	})
}
