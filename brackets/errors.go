package brackets

import "errors"

var (
	ErrInvalidInput   = errors.New("participants must be provided as a list")
	ErrNoParticipants = errors.New("Please add at least 1 participant.")
	// ErrBracketStalled means a round failed to shrink the field of entrants.
	ErrBracketStalled = errors.New("bracket generation stopped converging")
)

func errorText(err error) *string {
	if err == nil {
		return nil
	}
	msg := err.Error()
	return &msg
}
