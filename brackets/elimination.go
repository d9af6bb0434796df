package brackets

import "fmt"

// eliminationRound pairs entrants by adjacent position into one round. An odd
// field first hands a bye to a randomly chosen player. It returns the round
// and the entrants of the following round, where pending slots stand for
// winners that are not known yet.
//
// Double elimination matches (recordLoser) also carry their loser: a bye for
// bye matches, otherwise a reference to the match.
func eliminationRound(t MatchType, round int, entrants []Slot, rnd Randomizer) (Round, []Slot) {
	recordLoser := t != MatchSingleElimination
	matches := make(Round, 0, len(entrants)/2+1)
	next := make([]Slot, 0, len(entrants)/2+1)

	pool := entrants
	if len(pool)%2 == 1 {
		pick := pickByeRecipient(rnd, pool)
		recipient := pool[pick]
		pool = without(pool, pick)

		m := newMatch(t, round, 0, recipient, Bye())
		m.Winner = recipient
		if recordLoser {
			m.Loser = slotPtr(Bye())
		}
		matches = append(matches, m)
		next = append(next, recipient)
	}

	for i := 0; i+1 < len(pool); i += 2 {
		m := newMatch(t, round, len(matches), pool[i], pool[i+1])
		a, b := pool[i], pool[i+1]
		loser := Bye()
		switch {
		case a.IsBye() && b.IsBye():
			// Nobody advances from a bye-vs-bye pairing.
			m.Winner = Bye()
		case a.IsBye():
			m.Winner = b
			next = append(next, b)
		case b.IsBye():
			m.Winner = a
			next = append(next, a)
		default:
			loser = LoserOf(m.ID)
			next = append(next, Pending())
		}
		if recordLoser {
			m.Loser = slotPtr(loser)
		}
		matches = append(matches, m)
	}
	return matches, next
}

type roundFunc func(t MatchType, round int, entrants []Slot, rnd Randomizer) (Round, []Slot)

// runElimination plays rounds until a single entrant remains.
func runElimination(t MatchType, entrants []Slot, rnd Randomizer) (Bracket, []Slot, error) {
	return playRounds(t, entrants, rnd, eliminationRound)
}

// playRounds calls play until a single entrant remains. Every round must
// shrink the field; a round that does not is reported as ErrBracketStalled.
func playRounds(t MatchType, entrants []Slot, rnd Randomizer, play roundFunc) (Bracket, []Slot, error) {
	bracket := Bracket{}
	for round := 0; len(entrants) > 1; round++ {
		matches, next := play(t, round, entrants, rnd)
		if len(next) >= len(entrants) {
			return nil, nil, fmt.Errorf("%w: round %d kept %d of %d entrants", ErrBracketStalled, round, len(next), len(entrants))
		}
		if len(matches) > 0 {
			bracket = append(bracket, matches)
		}
		entrants = next
	}
	return bracket, entrants, nil
}

// pickByeRecipient prefers a player over a pending slot, chosen at random.
func pickByeRecipient(rnd Randomizer, pool []Slot) int {
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	for _, idx := range Shuffle(rnd, order) {
		if pool[idx].IsPlayer() {
			return idx
		}
	}
	return 0
}

func without(slots []Slot, idx int) []Slot {
	out := make([]Slot, 0, len(slots)-1)
	out = append(out, slots[:idx]...)
	return append(out, slots[idx+1:]...)
}

func slotPtr(s Slot) *Slot { return &s }
