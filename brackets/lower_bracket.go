package brackets

import "fmt"

type stageKind int

const (
	// stageDrop takes in the losers of one upper bracket round.
	stageDrop stageKind = iota
	// stageInternal is played among lower bracket survivors only.
	stageInternal
)

// lowerStage is one potential lower bracket round.
type lowerStage struct {
	kind stageKind
	// upperRound is the upper bracket round whose losers drop in (stageDrop).
	upperRound int
	// withSurvivors merges the dropping losers with the survivors of the
	// previous lower bracket round.
	withSurvivors bool
}

func (s lowerStage) String() string {
	if s.kind == stageInternal {
		return "internal"
	}
	if s.withSurvivors {
		return fmt.Sprintf("drop(%d)+survivors", s.upperRound)
	}
	return fmt.Sprintf("drop(%d)", s.upperRound)
}

// lowerSchedule lays out the lower bracket of an upper bracket with the given
// number of rounds. The losers of upper round 0 meet each other first; from
// then on every drop of upper round k meets the lower bracket survivors and is
// followed by an internal round, two stages per upper round.
func lowerSchedule(upperRounds int) []lowerStage {
	stages := make([]lowerStage, 0, 2*upperRounds)
	for stage := 0; stage < 2*upperRounds; stage++ {
		k := (stage + 1) / 2
		switch {
		case stage == 0:
			stages = append(stages, lowerStage{kind: stageDrop, upperRound: 0})
		case stage%2 == 1 && k < upperRounds:
			stages = append(stages, lowerStage{kind: stageDrop, upperRound: k, withSurvivors: true})
		default:
			stages = append(stages, lowerStage{kind: stageInternal})
		}
	}
	return stages
}

func (s lowerStage) entrants(upper Bracket, survivors []Slot) []Slot {
	if s.kind == stageInternal {
		return survivors
	}
	losers := losersOf(upper[s.upperRound])
	if !s.withSurvivors {
		return losers
	}
	merged := make([]Slot, 0, len(survivors)+len(losers))
	merged = append(merged, survivors...)
	return append(merged, losers...)
}

// dropsPending reports whether any of the stages still brings new losers down
// from the upper bracket.
func dropsPending(stages []lowerStage, upper Bracket) bool {
	for _, s := range stages {
		if s.kind == stageDrop && len(losersOf(upper[s.upperRound])) > 0 {
			return true
		}
	}
	return false
}

// buildLowerBracket runs the lower bracket schedule against a complete upper
// bracket and returns its rounds and winner.
func buildLowerBracket(upper Bracket, rnd Randomizer) (Bracket, Slot) {
	schedule := lowerSchedule(len(upper))
	rounds := Bracket{}
	var survivors []Slot

	for i, stage := range schedule {
		pool := Shuffle(rnd, occupied(stage.entrants(upper, survivors)))
		if len(pool) == 0 {
			if i == 0 {
				continue
			}
			// Nobody left to play: survivors carry forward as they are.
			break
		}

		matches, next := lowerRound(len(rounds), pool)
		rounds = append(rounds, matches)
		survivors = next

		if len(occupied(survivors)) == 1 && !dropsPending(schedule[i+1:], upper) {
			break
		}
	}
	return rounds, bracketWinner(rounds, occupied(survivors), sourceLowerTBD, true)
}

// lowerRound pairs a shuffled pool straight through. A lone entrant, or the
// last one of an odd pool, gets a bye. Winners of real matches advance as
// references to their match.
func lowerRound(round int, pool []Slot) (Round, []Slot) {
	matches := make(Round, 0, len(pool)/2+1)
	next := make([]Slot, 0, len(pool)/2+1)

	for i := 0; i+1 < len(pool); i += 2 {
		m := newMatch(MatchLowerBracket, round, len(matches), pool[i], pool[i+1])
		m.Loser = slotPtr(LoserOf(m.ID))
		matches = append(matches, m)
		next = append(next, WinnerOf(m.ID))
	}
	if len(pool)%2 == 1 {
		lone := pool[len(pool)-1]
		m := newMatch(MatchLowerBracket, round, len(matches), lone, Bye())
		m.Winner = lone
		m.Loser = slotPtr(Bye())
		matches = append(matches, m)
		next = append(next, lone)
	}
	return matches, next
}

func occupied(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.IsOccupied() {
			out = append(out, s)
		}
	}
	return out
}
