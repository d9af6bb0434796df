package brackets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/bits"
)

// Format names a bracket type.
type Format string

const (
	FormatSingleElimination Format = "single_elimination"
	FormatDoubleElimination Format = "double_elimination"
)

// Formats lists every format a generator exists for.
var Formats = []Format{FormatSingleElimination, FormatDoubleElimination}

type GenerateBracketParams struct {
	Competitors []string
}

// Result is the output of one generator call.
type Result interface {
	Format() Format
	// ChampionID returns the champion when it is already known.
	ChampionID() (string, bool)
	// Err returns the generation failure recorded in the result, if any.
	Err() error
}

type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) (Result, error)

	GetName() string
}

// NewGenerator returns the generator for the given format.
func NewGenerator(format Format, opts ...Option) (BracketGenerator, error) {
	switch format {
	case FormatSingleElimination:
		return NewSingleEliminationGenerator(opts...), nil
	case FormatDoubleElimination:
		return NewDoubleEliminationGenerator(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported bracket format %q", format)
	}
}

type options struct {
	rnd    Randomizer
	logger *slog.Logger
}

// Option configures a generator.
type Option func(*options)

// WithRandomizer replaces the randomness source used for seeding.
func WithRandomizer(rnd Randomizer) Option {
	return func(o *options) {
		if rnd != nil {
			o.rnd = rnd
		}
	}
}

// WithLogger makes the generator log bracket shapes at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		rnd:    DefaultRandomizer(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// filterCompetitors drops empty identifiers, keeping order and duplicates.
func filterCompetitors(competitors []string) []string {
	out := make([]string, 0, len(competitors))
	for _, c := range competitors {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// nextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ceilLog2 returns the number of halvings needed to reduce n entrants to one.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func players(ids []string) []Slot {
	out := make([]Slot, len(ids))
	for i, id := range ids {
		out[i] = Player(id)
	}
	return out
}
