package brackets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotString(t *testing.T) {
	cases := []struct {
		name string
		slot Slot
		want string
	}{
		{"player", Player("alice"), "alice"},
		{"bye", Bye(), "BYE"},
		{"winner sentinel", WinnerSlot(), "WINNER!"},
		{"pending", Pending(), ""},
		{"winner reference", WinnerOf("ubR1M0"), "Winner of ubR1M0"},
		{"loser reference", LoserOf("lbR0M2"), "Loser of lbR0M2"},
		{"upper tbd", Slot{Kind: SlotReference, Outcome: OutcomeWinner, Source: sourceUpperTBD}, "Winner of UB (TBD)"},
		{"lower tbd", Slot{Kind: SlotReference, Outcome: OutcomeWinner, Source: sourceLowerTBD}, "Winner of LB (TBD)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.slot.String())
		})
	}
}

func TestSlotZeroValueIsPending(t *testing.T) {
	var s Slot
	assert.True(t, s.IsPending())
	assert.False(t, s.IsOccupied())
}

func TestPlayerNamedLikeASentinelIsStillAPlayer(t *testing.T) {
	s := Player("BYE")
	assert.True(t, s.IsPlayer())
	assert.False(t, s.IsBye())
}

func TestSlotMarshalJSON(t *testing.T) {
	m := newMatch(MatchUpperBracket, 0, 1, Player("bob"), Bye())
	m.Winner = Player("bob")
	m.Loser = slotPtr(Bye())

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "ubR0M1", decoded["id"])
	assert.Equal(t, "UB", decoded["type"])
	pair := decoded["pair"].([]interface{})
	assert.Equal(t, map[string]interface{}{"kind": "player", "id": "bob", "label": "bob"}, pair[0])
	assert.Equal(t, map[string]interface{}{"kind": "bye", "label": "BYE"}, pair[1])

	pending, err := json.Marshal(Pending())
	require.NoError(t, err)
	assert.Equal(t, "null", string(pending))
}

func TestSingleEliminationMatchOmitsLoser(t *testing.T) {
	raw, err := json.Marshal(newMatch(MatchSingleElimination, 0, 0, Player("a"), Player("b")))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "loser")
	assert.Contains(t, string(raw), `"winner":null`)
}
