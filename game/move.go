package game

// Move is a request to move the piece on From to To, submitted by Player.
type Move struct {
	Player Player
	From   Cell
	To     Cell
}

// Result is the terminal state of a game.
type Result int

const (
	NoResult Result = iota
	Player1Wins
	Player2Wins
	Draw
)

func (r Result) String() string {
	switch r {
	case Player1Wins:
		return "Player1Wins"
	case Player2Wins:
		return "Player2Wins"
	case Draw:
		return "Draw"
	default:
		return "NoResult"
	}
}

// winnerFor maps a player to the result declaring them the winner.
func winnerFor(p Player) Result {
	if p == Player1 {
		return Player1Wins
	}
	return Player2Wins
}
