package brackets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleEliminationNoParticipants(t *testing.T) {
	res, err := GenerateDoubleElimination([]string{""})
	require.ErrorIs(t, err, ErrNoParticipants)
	require.NotNil(t, res)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"upperBracketRounds": [],
		"lowerBracketRounds": [],
		"grandFinalMatch": null,
		"champion": null,
		"error": "Please add at least 1 participant."
	}`, string(body))
}

func TestDoubleEliminationOneParticipant(t *testing.T) {
	res, err := GenerateDoubleElimination([]string{"alice"})
	require.NoError(t, err)

	require.Equal(t, []int{1}, roundSizes(res.UpperBracketRounds))
	m := res.UpperBracketRounds[0][0]
	assert.Equal(t, "ubR0M0", m.ID)
	assert.Equal(t, [2]Slot{Player("alice"), WinnerSlot()}, m.Pair)
	assert.Equal(t, Player("alice"), m.Winner)
	require.NotNil(t, m.Loser)
	assert.Equal(t, Player("alice"), *m.Loser)

	assert.Empty(t, res.LowerBracketRounds)
	_, ok := res.GrandFinal()
	assert.False(t, ok)
	champion, ok := res.ChampionID()
	require.True(t, ok)
	assert.Equal(t, "alice", champion)
}

func TestDoubleEliminationTwoParticipants(t *testing.T) {
	res, err := GenerateDoubleElimination([]string{"alice", "bob"}, seeded(3))
	require.NoError(t, err)

	require.Equal(t, []int{1}, roundSizes(res.UpperBracketRounds))
	ub := res.UpperBracketRounds[0][0]
	assert.ElementsMatch(t, []Slot{Player("alice"), Player("bob")}, ub.Pair[:])
	assert.Equal(t, LoserOf("ubR0M0"), *ub.Loser)

	require.Equal(t, []int{1}, roundSizes(res.LowerBracketRounds))
	assert.Equal(t, [2]Slot{LoserOf("ubR0M0"), Bye()}, res.LowerBracketRounds[0][0].Pair)

	gf, ok := res.GrandFinal()
	require.True(t, ok)
	assert.Equal(t, "gfM0", gf.ID)
	assert.Equal(t, MatchGrandFinal, gf.Type)
	assert.Equal(t, [2]Slot{WinnerOf("ubR0M0"), LoserOf("ubR0M0")}, gf.Pair)
	assert.Nil(t, res.Champion)
}

func TestDoubleEliminationThreeParticipants(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		res, err := GenerateDoubleElimination([]string{"a", "b", "c"}, seeded(seed))
		require.NoError(t, err)

		require.Equal(t, []int{2, 1}, roundSizes(res.UpperBracketRounds))
		assert.Equal(t, 1, countByes(res.UpperBracketRounds))
		require.Equal(t, []int{1, 1}, roundSizes(res.LowerBracketRounds))

		first := res.LowerBracketRounds[0][0]
		assert.True(t, first.IsBye(), "the only first-round loser gets a bye")
		assert.Equal(t, first.Pair[0], first.Winner)

		second := res.LowerBracketRounds[1][0]
		assert.ElementsMatch(t, []Slot{first.Winner, LoserOf("ubR1M0")}, second.Pair[:])

		gf, ok := res.GrandFinal()
		require.True(t, ok)
		assert.Equal(t, [2]Slot{WinnerOf("ubR1M0"), WinnerOf("lbR1M0")}, gf.Pair)
	}
}

func TestDoubleEliminationFourParticipants(t *testing.T) {
	res, err := GenerateDoubleElimination(names(4), seeded(9))
	require.NoError(t, err)

	require.Equal(t, []int{2, 1}, roundSizes(res.UpperBracketRounds))
	assert.Zero(t, countByes(res.UpperBracketRounds))
	require.Equal(t, []int{1, 1}, roundSizes(res.LowerBracketRounds))

	lb0 := res.LowerBracketRounds[0][0]
	assert.ElementsMatch(t, []Slot{LoserOf("ubR0M0"), LoserOf("ubR0M1")}, lb0.Pair[:])
	lb1 := res.LowerBracketRounds[1][0]
	assert.ElementsMatch(t, []Slot{WinnerOf("lbR0M0"), LoserOf("ubR1M0")}, lb1.Pair[:])

	gf, ok := res.GrandFinal()
	require.True(t, ok)
	assert.Equal(t, [2]Slot{WinnerOf("ubR1M0"), WinnerOf("lbR1M0")}, gf.Pair)
	assert.True(t, gf.Winner.IsPending())
	require.NotNil(t, gf.Loser)
	assert.True(t, gf.Loser.IsPending())
}

func TestDoubleEliminationEightParticipants(t *testing.T) {
	res, err := GenerateDoubleElimination(names(8), seeded(5))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2, 1}, roundSizes(res.UpperBracketRounds))
	assert.Equal(t, []int{2, 2, 1, 1}, roundSizes(res.LowerBracketRounds))
}

func TestDoubleEliminationLowerBracketGrowsOnDrop(t *testing.T) {
	for seed := uint64(0); seed < 3; seed++ {
		res, err := GenerateDoubleElimination(names(5), seeded(seed))
		require.NoError(t, err)

		assert.Equal(t, []int{4, 2, 1}, roundSizes(res.UpperBracketRounds), "seed %d", seed)
		// One real first-round loser takes a bye, then both second-round
		// losers join the survivor.
		assert.Equal(t, []int{1, 2, 1, 1}, roundSizes(res.LowerBracketRounds), "seed %d", seed)
		assertWellFormed(t, res.LowerBracketRounds, MatchLowerBracket)
	}
}

func TestDoubleEliminationShape(t *testing.T) {
	for n := 2; n <= 40; n++ {
		for seed := uint64(0); seed < 3; seed++ {
			res, err := GenerateDoubleElimination(names(n), seeded(seed))
			require.NoError(t, err, "n=%d", n)

			upper, lower := res.UpperBracketRounds, res.LowerBracketRounds
			u := ceilLog2(n)
			require.Len(t, upper, u, "n=%d upper rounds", n)
			assertWellFormed(t, upper, MatchUpperBracket)
			assert.Len(t, upper.lastRound(), 1, "n=%d", n)

			wantLower := 2 * (u - 1)
			if wantLower < 1 {
				wantLower = 1
			}
			require.Len(t, lower, wantLower, "n=%d lower rounds", n)
			assertWellFormed(t, lower, MatchLowerBracket)
			assert.Len(t, lower.lastRound(), 1, "n=%d", n)

			dropped := make(map[Slot]bool)
			for _, r := range upper {
				for _, l := range losersOf(r) {
					dropped[l] = true
				}
			}
			inLower := make(map[Slot]bool)
			for _, r := range lower {
				for _, m := range r {
					for _, s := range m.Pair {
						if s.IsReference() && s.Outcome == OutcomeLoser {
							inLower[s] = true
						}
					}
				}
			}
			assert.Equal(t, dropped, inLower, "n=%d every upper loser drops exactly into the lower bracket", n)

			gf, ok := res.GrandFinal()
			require.True(t, ok)
			assert.Equal(t, WinnerOf(upper.lastRound()[0].ID), gf.Pair[0])
			assert.False(t, gf.Pair[1].IsBye())
			assert.Nil(t, res.Champion)
		}
	}
}

func TestDoubleEliminationSeededIsReproducible(t *testing.T) {
	a, err := GenerateDoubleElimination(names(13), seeded(42))
	require.NoError(t, err)
	b, err := GenerateDoubleElimination(names(13), seeded(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDoubleEliminationGenerator(t *testing.T) {
	g, err := NewGenerator(FormatDoubleElimination, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, "DoubleElimination", g.GetName())

	res, err := g.GenerateBracket(context.Background(), GenerateBracketParams{Competitors: names(6)})
	require.NoError(t, err)
	assert.Equal(t, FormatDoubleElimination, res.Format())
	_, ok := res.ChampionID()
	assert.False(t, ok)
}
