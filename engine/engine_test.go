package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"landbattle/game"
)

func mv(p game.Player, fromX, fromY, toX, toY int) game.Move {
	return game.Move{Player: p, From: game.Cell{X: fromX, Y: fromY}, To: game.Cell{X: toX, Y: toY}}
}

func TestNewStandardGame(t *testing.T) {
	eng, err := NewStandardGame(game.StandardRules())
	require.NoError(t, err)

	require.Equal(t, game.Player1, eng.ToMove())
	require.True(t, eng.IsTurn(game.Player1))
	require.False(t, eng.IsTurn(game.Player2))
	_, over := eng.TerminalResult()
	require.False(t, over)
	require.NotEmpty(t, eng.LegalMoves())
}

func TestSubmitMoveTurnOrder(t *testing.T) {
	eng, err := NewStandardGame(game.StandardRules())
	require.NoError(t, err)

	_, err = eng.SubmitMove(game.Player2, mv(game.Player2, 0, 6, 0, 4))
	var moveErr *game.MoveError
	require.ErrorAs(t, err, &moveErr)
	require.Equal(t, game.OutOfTurn, moveErr.Kind)

	// Front-row captain attacks across the middle crossing.
	view, err := eng.SubmitMove(game.Player1, mv(game.Player1, 2, 5, 2, 6))
	require.NoError(t, err)
	require.Equal(t, game.Player2, view.ToMove)
	require.Equal(t, 1, view.Turn)
	require.True(t, eng.IsTurn(game.Player2))
}

func TestSubmitMoveStampsPlayer(t *testing.T) {
	eng, err := NewStandardGame(game.StandardRules())
	require.NoError(t, err)

	// The submitted move claims to be Player2's; the seat wins.
	m := mv(game.Player2, 2, 5, 2, 6)
	_, err = eng.SubmitMove(game.Player1, m)
	require.NoError(t, err, "the seat decides whose move it is, not the payload")
}

func TestSubmitMoveBusy(t *testing.T) {
	eng, err := NewStandardGame(game.StandardRules())
	require.NoError(t, err)

	eng.mu.Lock()
	_, err = eng.SubmitMove(game.Player1, mv(game.Player1, 2, 5, 2, 6))
	eng.mu.Unlock()

	var moveErr *game.MoveError
	require.ErrorAs(t, err, &moveErr)
	require.Equal(t, game.Busy, moveErr.Kind)

	// Once the lock is free the same move goes through.
	_, err = eng.SubmitMove(game.Player1, mv(game.Player1, 2, 5, 2, 6))
	require.NoError(t, err)
}

func TestCurrentViewIsRedacted(t *testing.T) {
	eng, err := NewStandardGame(game.StandardRules())
	require.NoError(t, err)

	view := eng.CurrentView(game.Player1)
	require.Equal(t, game.Player1, view.Viewer)
	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Cols; x++ {
			fc := view.Cells[y][x]
			if fc.Occupied && fc.Owner == game.Player2 {
				require.True(t, fc.Hidden, "enemy ranks must start hidden at (%d,%d)", x, y)
				require.Equal(t, game.Empty, fc.Piece)
			}
		}
	}
}

func TestTerminalResultAfterFlagCapture(t *testing.T) {
	topo := game.CreateTopology()
	side1, err := game.BuildSide(topo, game.Player1, game.StandardPlacement(game.Player1))
	require.NoError(t, err)
	side2, err := game.BuildSide(topo, game.Player2, game.StandardPlacement(game.Player2))
	require.NoError(t, err)
	board, err := game.Merge(side1, side2)
	require.NoError(t, err)
	gs := game.NewGameState(topo, board, game.StandardRules())
	gs.Result = game.Player2Wins

	eng := New(gs)
	result, over := eng.TerminalResult()
	require.True(t, over)
	require.Equal(t, game.Player2Wins, result)

	_, err = eng.SubmitMove(game.Player1, mv(game.Player1, 2, 5, 2, 6))
	var moveErr *game.MoveError
	require.ErrorAs(t, err, &moveErr)
	require.Equal(t, game.GameAlreadyOver, moveErr.Kind)
}
