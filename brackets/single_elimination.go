package brackets

import (
	"context"
	"log/slog"
)

// SingleEliminationResult is the bracket of a tournament where one loss
// eliminates. Champion is only known for a one-competitor field.
type SingleEliminationResult struct {
	Rounds   Bracket `json:"rounds"`
	Champion *string `json:"champion"`
	Error    *string `json:"error"`

	err error
}

func (r *SingleEliminationResult) Format() Format { return FormatSingleElimination }

func (r *SingleEliminationResult) ChampionID() (string, bool) {
	if r.Champion == nil {
		return "", false
	}
	return *r.Champion, true
}

func (r *SingleEliminationResult) Err() error { return r.err }

func failedSingleElimination(err error) (*SingleEliminationResult, error) {
	return &SingleEliminationResult{Rounds: Bracket{}, Error: errorText(err), err: err}, err
}

type SingleEliminationGenerator struct {
	opts []Option
}

func NewSingleEliminationGenerator(opts ...Option) BracketGenerator {
	return &SingleEliminationGenerator{opts: opts}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

func (g *SingleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) (Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateSingleElimination(params.Competitors, g.opts...)
}

// GenerateSingleElimination seeds the competitors at random and builds every
// round down to the final. Empty identifiers are ignored. Real matches are
// left unresolved; only byes carry a winner.
func GenerateSingleElimination(competitors []string, opts ...Option) (*SingleEliminationResult, error) {
	o := buildOptions(opts)

	field := filterCompetitors(competitors)
	switch len(field) {
	case 0:
		return failedSingleElimination(ErrNoParticipants)
	case 1:
		champion := field[0]
		m := newMatch(MatchSingleElimination, 0, 0, Player(champion), WinnerSlot())
		m.Winner = Player(champion)
		return &SingleEliminationResult{Rounds: Bracket{{m}}, Champion: &champion}, nil
	}

	rounds, _, err := runElimination(MatchSingleElimination, players(Shuffle(o.rnd, field)), o.rnd)
	if err != nil {
		return failedSingleElimination(err)
	}

	res := &SingleEliminationResult{Rounds: rounds}
	if last := rounds.lastRound(); len(last) == 1 && last[0].Winner.IsPlayer() {
		champion := last[0].Winner.ID
		res.Champion = &champion
	}

	o.logger.Debug("single elimination bracket generated",
		slog.Int("participants", len(field)),
		slog.Int("rounds", len(rounds)),
		slog.Int("matches", rounds.MatchCount()))
	return res, nil
}
