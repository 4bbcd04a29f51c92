package game

import "fmt"

// PlacementKind identifies the build-time rule a placement violated.
type PlacementKind int

const (
	QuotaMismatch PlacementKind = iota
	IllegalZone
	DuplicateCell
	IncompleteArmy
	EncodingOutOfRange
)

func (k PlacementKind) String() string {
	switch k {
	case QuotaMismatch:
		return "QuotaMismatch"
	case IllegalZone:
		return "IllegalZone"
	case DuplicateCell:
		return "DuplicateCell"
	case IncompleteArmy:
		return "IncompleteArmy"
	case EncodingOutOfRange:
		return "EncodingOutOfRange"
	default:
		return "UnknownPlacementError"
	}
}

// PlacementError rejects a placement during build. Builds are
// all-or-nothing, so a PlacementError implies no board mutation happened.
type PlacementError struct {
	Kind   PlacementKind
	Cell   Cell
	Piece  Piece
	Reason string
}

func (e *PlacementError) Error() string {
	msg := fmt.Sprintf("placement rejected: %s", e.Kind)
	if e.Piece != Empty {
		msg += fmt.Sprintf(" (%s)", e.Piece)
	}
	if e.Cell.InGrid() {
		msg += fmt.Sprintf(" at (%d,%d)", e.Cell.X, e.Cell.Y)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MoveKind identifies why a move attempt was rejected.
type MoveKind int

const (
	NotYourPiece MoveKind = iota
	Unreachable
	Immobile
	FriendlyFire
	OutOfTurn
	GameAlreadyOver
	Busy
)

func (k MoveKind) String() string {
	switch k {
	case NotYourPiece:
		return "NotYourPiece"
	case Unreachable:
		return "Unreachable"
	case Immobile:
		return "Immobile"
	case FriendlyFire:
		return "FriendlyFire"
	case OutOfTurn:
		return "OutOfTurn"
	case GameAlreadyOver:
		return "GameAlreadyOver"
	case Busy:
		return "Busy"
	default:
		return "UnknownMoveError"
	}
}

// MoveError rejects one move attempt. The board is left untouched and the
// same player may retry.
type MoveError struct {
	Kind MoveKind
	Move Move
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move rejected: %s (%s (%d,%d)->(%d,%d))",
		e.Kind, e.Move.Player, e.Move.From.X, e.Move.From.Y, e.Move.To.X, e.Move.To.Y)
}
