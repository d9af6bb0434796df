package brackets

// upperBracket is the no-loss path of a double elimination tournament.
type upperBracket struct {
	rounds Bracket
	winner Slot
}

// buildUpperBracket pads the field with byes up to a power of two, seeds it at
// random and plays it like a single elimination bracket that records losers.
func buildUpperBracket(field []string, rnd Randomizer) (upperBracket, error) {
	target := nextPowerOfTwo(len(field))
	entrants := players(field)
	for i := len(field); i < target; i++ {
		entrants = append(entrants, Bye())
	}

	rounds, remaining, err := runElimination(MatchUpperBracket, Shuffle(rnd, entrants), rnd)
	if err != nil {
		return upperBracket{}, err
	}
	return upperBracket{
		rounds: rounds,
		winner: bracketWinner(rounds, remaining, sourceUpperTBD, false),
	}, nil
}

// bracketWinner names whoever comes out of a bracket: the sole remaining
// advancer when it is known, else the winner of the final match, else an
// unresolved placeholder for the whole bracket. With acceptReference a sole
// advancer that is itself a reference is reported as is.
func bracketWinner(rounds Bracket, remaining []Slot, tbd string, acceptReference bool) Slot {
	if len(remaining) == 1 {
		s := remaining[0]
		if s.IsPlayer() || (acceptReference && s.IsReference()) {
			return s
		}
	}
	if last := rounds.lastRound(); len(last) == 1 {
		return WinnerOf(last[0].ID)
	}
	return Slot{Kind: SlotReference, Outcome: OutcomeWinner, Source: tbd}
}

// losersOf lists who drops out of a round: the loser of every match that was
// not decided by a bye.
func losersOf(round Round) []Slot {
	var out []Slot
	for _, m := range round {
		if m.Loser != nil && !m.Loser.IsBye() && !m.Loser.IsPending() {
			out = append(out, *m.Loser)
		}
	}
	return out
}
