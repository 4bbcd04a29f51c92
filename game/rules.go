package game

// Rules holds the adjustable parts of the rule set. The board topology
// and the piece catalog never vary; these toggles do.
type Rules struct {
	// BombBeatsLandmine selects the precedence when a Bomb attacks a
	// Landmine. False (the default) lets the Landmine destroy the Bomb
	// one-sidedly; true applies the generic bomb rule and removes both.
	// The rule books disagree here, so it is configuration.
	BombBeatsLandmine bool

	// MaxMoves caps the game length; reaching it without a winner is a
	// draw. Zero means no cap.
	MaxMoves int
}

// StandardRules returns the default rule set.
func StandardRules() Rules {
	return Rules{
		BombBeatsLandmine: false,
		MaxMoves:          1000,
	}
}
