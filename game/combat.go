package game

// CombatOutcome is the resolution of an attack on an occupied cell.
type CombatOutcome int

const (
	AttackerWins CombatOutcome = iota
	DefenderWins
	MutualLoss
	FlagCaptured
)

func (o CombatOutcome) String() string {
	switch o {
	case AttackerWins:
		return "AttackerWins"
	case DefenderWins:
		return "DefenderWins"
	case MutualLoss:
		return "MutualLoss"
	case FlagCaptured:
		return "FlagCaptured"
	default:
		return "UnknownOutcome"
	}
}

// resolveCombat arbitrates one attack. Dispatch is by rank category, most
// specific first: flag capture, bomb involvement, landmine defence, then
// plain strength comparison. The outcome depends only on the two ranks,
// never on which side attacks.
func resolveCombat(r Rules, attacker, defender Piece) CombatOutcome {
	switch {
	case defender == Flag:
		return FlagCaptured
	case attacker == Bomb || defender == Bomb:
		if defender == Landmine && !r.BombBeatsLandmine {
			return DefenderWins
		}
		return MutualLoss
	case defender == Landmine:
		if attacker == Engineer {
			return AttackerWins
		}
		return DefenderWins
	case attacker.Strength() > defender.Strength():
		return AttackerWins
	case attacker.Strength() == defender.Strength():
		return MutualLoss
	default:
		return DefenderWins
	}
}
