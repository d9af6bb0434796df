package brackets

import "fmt"

type MatchType string

const (
	MatchSingleElimination MatchType = "SE"
	MatchUpperBracket      MatchType = "UB"
	MatchLowerBracket      MatchType = "LB"
	MatchGrandFinal        MatchType = "GF"
)

func (t MatchType) idPrefix() string {
	switch t {
	case MatchSingleElimination:
		return "s"
	case MatchUpperBracket:
		return "ub"
	case MatchLowerBracket:
		return "lb"
	default:
		return "gf"
	}
}

// Match is one pairing of a bracket. Winner is pending unless the outcome is
// mechanically known (a bye or a one-competitor tournament). Loser is set
// only for double elimination matches.
type Match struct {
	ID                string    `json:"id"`
	Pair              [2]Slot   `json:"pair"`
	Winner            Slot      `json:"winner"`
	Loser             *Slot     `json:"loser,omitempty"`
	Type              MatchType `json:"type"`
	Round             int       `json:"round"`
	MatchIndexInRound int       `json:"matchIndexInRound"`
}

func matchID(t MatchType, round, index int) string {
	if t == MatchGrandFinal {
		return fmt.Sprintf("gfM%d", index)
	}
	return fmt.Sprintf("%sR%dM%d", t.idPrefix(), round, index)
}

func newMatch(t MatchType, round, index int, a, b Slot) Match {
	return Match{
		ID:                matchID(t, round, index),
		Pair:              [2]Slot{a, b},
		Type:              t,
		Round:             round,
		MatchIndexInRound: index,
	}
}

// IsBye reports whether one side of the match is a bye.
func (m Match) IsBye() bool {
	return m.Pair[0].IsBye() || m.Pair[1].IsBye()
}

// Round holds the matches of one elimination stage in display order.
type Round []Match

// Bracket is the ordered list of rounds of one elimination path.
type Bracket []Round

// MatchCount returns the number of matches across all rounds.
func (b Bracket) MatchCount() int {
	n := 0
	for _, r := range b {
		n += len(r)
	}
	return n
}

func (b Bracket) lastRound() Round {
	if len(b) == 0 {
		return nil
	}
	return b[len(b)-1]
}
