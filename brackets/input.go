package brackets

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeCompetitors reads a JSON array of competitor identifiers. Null entries
// decode to empty identifiers, which generators ignore. Anything other than an
// array of strings and nulls is ErrInvalidInput.
func DecodeCompetitors(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrInvalidInput
	}
	var entries []*string
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		if e != nil {
			out[i] = *e
		}
	}
	return out, nil
}
