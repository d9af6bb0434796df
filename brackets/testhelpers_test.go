package brackets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%02d", i+1)
	}
	return out
}

func seeded(seed uint64) Option {
	return WithRandomizer(NewSeededRandomizer(seed))
}

func roundSizes(b Bracket) []int {
	out := make([]int, len(b))
	for i, r := range b {
		out[i] = len(r)
	}
	return out
}

func countByes(b Bracket) int {
	n := 0
	for _, r := range b {
		for _, m := range r {
			if m.IsBye() {
				n++
			}
		}
	}
	return n
}

// assertWellFormed checks the invariants every bracket must hold: ids encode
// type, round and position and are unique. Round sizes never grow, except in
// the lower bracket where each drop stage brings a whole upper round down.
func assertWellFormed(t *testing.T, b Bracket, typ MatchType) {
	t.Helper()
	seen := make(map[string]bool)
	for ri, r := range b {
		assert.NotEmpty(t, r, "round %d is empty", ri)
		if ri > 0 && typ != MatchLowerBracket {
			assert.LessOrEqual(t, len(r), len(b[ri-1]), "round %d grew", ri)
		}
		for mi, m := range r {
			assert.Equal(t, matchID(typ, ri, mi), m.ID)
			assert.Equal(t, typ, m.Type)
			assert.Equal(t, ri, m.Round)
			assert.Equal(t, mi, m.MatchIndexInRound)
			assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
			seen[m.ID] = true
		}
	}
}
