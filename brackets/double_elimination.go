package brackets

import (
	"context"
	"log/slog"
)

// DoubleEliminationResult is the bracket of a tournament where a competitor is
// out after two losses. GrandFinalMatch holds exactly one match, or is nil
// when no grand final is needed.
type DoubleEliminationResult struct {
	UpperBracketRounds Bracket `json:"upperBracketRounds"`
	LowerBracketRounds Bracket `json:"lowerBracketRounds"`
	GrandFinalMatch    []Match `json:"grandFinalMatch"`
	Champion           *string `json:"champion"`
	Error              *string `json:"error"`

	err error
}

func (r *DoubleEliminationResult) Format() Format { return FormatDoubleElimination }

func (r *DoubleEliminationResult) ChampionID() (string, bool) {
	if r.Champion == nil {
		return "", false
	}
	return *r.Champion, true
}

func (r *DoubleEliminationResult) Err() error { return r.err }

// GrandFinal returns the grand final match, if any.
func (r *DoubleEliminationResult) GrandFinal() (Match, bool) {
	if len(r.GrandFinalMatch) == 0 {
		return Match{}, false
	}
	return r.GrandFinalMatch[0], true
}

func failedDoubleElimination(err error) (*DoubleEliminationResult, error) {
	return &DoubleEliminationResult{
		UpperBracketRounds: Bracket{},
		LowerBracketRounds: Bracket{},
		Error:              errorText(err),
		err:                err,
	}, err
}

type DoubleEliminationGenerator struct {
	opts []Option
}

func NewDoubleEliminationGenerator(opts ...Option) BracketGenerator {
	return &DoubleEliminationGenerator{opts: opts}
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}

func (g *DoubleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) (Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateDoubleElimination(params.Competitors, g.opts...)
}

// GenerateDoubleElimination builds the upper bracket, feeds its losers through
// the lower bracket and pairs both bracket winners in an unresolved grand
// final. The champion is only known for a one-competitor field.
func GenerateDoubleElimination(competitors []string, opts ...Option) (*DoubleEliminationResult, error) {
	o := buildOptions(opts)

	field := filterCompetitors(competitors)
	switch len(field) {
	case 0:
		return failedDoubleElimination(ErrNoParticipants)
	case 1:
		champion := field[0]
		m := newMatch(MatchUpperBracket, 0, 0, Player(champion), WinnerSlot())
		m.Winner = Player(champion)
		m.Loser = slotPtr(Player(champion))
		return &DoubleEliminationResult{
			UpperBracketRounds: Bracket{{m}},
			LowerBracketRounds: Bracket{},
			Champion:           &champion,
		}, nil
	}

	upper, err := buildUpperBracket(field, o.rnd)
	if err != nil {
		return failedDoubleElimination(err)
	}
	if len(upper.rounds) == 0 {
		res := &DoubleEliminationResult{UpperBracketRounds: upper.rounds, LowerBracketRounds: Bracket{}}
		if upper.winner.IsPlayer() {
			champion := upper.winner.ID
			res.Champion = &champion
		}
		return res, nil
	}

	lower, lowerWinner := buildLowerBracket(upper.rounds, o.rnd)

	final := newMatch(MatchGrandFinal, 0, 0, upper.winner, lowerWinner)
	final.Loser = slotPtr(Pending())

	o.logger.Debug("double elimination bracket generated",
		slog.Int("participants", len(field)),
		slog.Int("upper_rounds", len(upper.rounds)),
		slog.Int("lower_rounds", len(lower)),
		slog.String("upper_winner", upper.winner.String()),
		slog.String("lower_winner", lowerWinner.String()))

	return &DoubleEliminationResult{
		UpperBracketRounds: upper.rounds,
		LowerBracketRounds: lower,
		GrandFinalMatch:    []Match{final},
	}, nil
}
