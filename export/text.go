// Package export renders generated brackets as plain text.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Dosada05/bracket-engine/brackets"
)

const pendingLabel = "TBD"

// SlotLabel is the display text of a slot. Pending slots read "TBD".
func SlotLabel(s brackets.Slot) string {
	if s.IsPending() {
		return pendingLabel
	}
	return s.String()
}

// WriteText writes res to w, one block per bracket and round.
func WriteText(w io.Writer, res brackets.Result) error {
	bw := bufio.NewWriter(w)

	if err := res.Err(); err != nil {
		fmt.Fprintf(bw, "Error: %s\n", err)
		return bw.Flush()
	}

	switch r := res.(type) {
	case *brackets.SingleEliminationResult:
		writeBracket(bw, "Single Elimination", r.Rounds)
	case *brackets.DoubleEliminationResult:
		writeBracket(bw, "Upper Bracket", r.UpperBracketRounds)
		if len(r.LowerBracketRounds) > 0 {
			bw.WriteString("\n")
			writeBracket(bw, "Lower Bracket", r.LowerBracketRounds)
		}
		if gf, ok := r.GrandFinal(); ok {
			bw.WriteString("\nGrand Final\n")
			writeMatch(bw, gf)
		}
	default:
		return fmt.Errorf("export: unsupported result type %T", res)
	}

	if champion, ok := res.ChampionID(); ok {
		fmt.Fprintf(bw, "\nChampion: %s\n", champion)
	}
	return bw.Flush()
}

// Text returns the text export of res.
func Text(res brackets.Result) (string, error) {
	var sb strings.Builder
	if err := WriteText(&sb, res); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeBracket(w *bufio.Writer, title string, rounds brackets.Bracket) {
	fmt.Fprintf(w, "%s\n", title)
	for i, round := range rounds {
		fmt.Fprintf(w, "Round %d\n", i+1)
		for _, m := range round {
			writeMatch(w, m)
		}
	}
}

func writeMatch(w *bufio.Writer, m brackets.Match) {
	fmt.Fprintf(w, "  %s: %s vs %s", m.ID, SlotLabel(m.Pair[0]), SlotLabel(m.Pair[1]))
	if !m.Winner.IsPending() {
		fmt.Fprintf(w, " -> %s", SlotLabel(m.Winner))
	}
	w.WriteString("\n")
}
