package brackets

import (
	"encoding/json"
	"fmt"
)

// SlotKind tells which of the five slot variants a Slot holds.
type SlotKind int

const (
	// SlotPending is a side whose occupant depends on a match nobody has played yet.
	SlotPending SlotKind = iota
	SlotPlayer
	SlotBye
	// SlotWinner labels the void opponent of a one-competitor tournament.
	SlotWinner
	SlotReference
)

const (
	ByeLabel    = "BYE"
	WinnerLabel = "WINNER!"
)

func (k SlotKind) String() string {
	switch k {
	case SlotPending:
		return "pending"
	case SlotPlayer:
		return "player"
	case SlotBye:
		return "bye"
	case SlotWinner:
		return "winner"
	case SlotReference:
		return "reference"
	default:
		return fmt.Sprintf("SlotKind(%d)", int(k))
	}
}

// Outcome is the side of a referenced match a Reference slot points at.
type Outcome string

const (
	OutcomeWinner Outcome = "Winner"
	OutcomeLoser  Outcome = "Loser"
)

// Bracket labels used when a reference cannot name a concrete match.
const (
	sourceUpperTBD = "UB (TBD)"
	sourceLowerTBD = "LB (TBD)"
)

// Slot is one side of a match. The zero value is a pending slot.
type Slot struct {
	Kind SlotKind
	// ID is the competitor identifier for SlotPlayer.
	ID string
	// Outcome and Source describe a SlotReference: "<Outcome> of <Source>".
	Outcome Outcome
	Source  string
}

func Player(id string) Slot { return Slot{Kind: SlotPlayer, ID: id} }

func Bye() Slot { return Slot{Kind: SlotBye} }

func WinnerSlot() Slot { return Slot{Kind: SlotWinner} }

func Pending() Slot { return Slot{} }

// WinnerOf references the unknown winner of the match with the given id.
func WinnerOf(matchID string) Slot {
	return Slot{Kind: SlotReference, Outcome: OutcomeWinner, Source: matchID}
}

// LoserOf references the unknown loser of the match with the given id.
func LoserOf(matchID string) Slot {
	return Slot{Kind: SlotReference, Outcome: OutcomeLoser, Source: matchID}
}

func (s Slot) IsPlayer() bool    { return s.Kind == SlotPlayer }
func (s Slot) IsBye() bool       { return s.Kind == SlotBye }
func (s Slot) IsPending() bool   { return s.Kind == SlotPending }
func (s Slot) IsReference() bool { return s.Kind == SlotReference }

// IsOccupied reports whether the slot names someone who can take part in a
// match: a player or a reference to a match outcome.
func (s Slot) IsOccupied() bool {
	return s.Kind == SlotPlayer || s.Kind == SlotReference
}

// String renders the slot the way brackets are displayed and exported.
// A pending slot renders as the empty string.
func (s Slot) String() string {
	switch s.Kind {
	case SlotPlayer:
		return s.ID
	case SlotBye:
		return ByeLabel
	case SlotWinner:
		return WinnerLabel
	case SlotReference:
		return string(s.Outcome) + " of " + s.Source
	default:
		return ""
	}
}

type slotJSON struct {
	Kind  string `json:"kind"`
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
}

// MarshalJSON encodes pending slots as null and every other kind as a tagged object.
func (s Slot) MarshalJSON() ([]byte, error) {
	if s.Kind == SlotPending {
		return []byte("null"), nil
	}
	return json.Marshal(slotJSON{Kind: s.Kind.String(), ID: s.ID, Label: s.String()})
}
