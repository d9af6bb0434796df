package participants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"newlines", "alice\nbob\r\ncarol\n", []string{"alice", "bob", "carol"}},
		{"commas", "alice, bob,carol", []string{"alice", "bob", "carol"}},
		{"mixed with blanks", "alice,,\n  \n bob ,", []string{"alice", "bob"}},
		{"duplicates keep first", "bob\nalice\nbob\n alice", []string{"bob", "alice"}},
		{"case sensitive", "Alice\nalice", []string{"Alice", "alice"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Normalize([]string{" a", "", "b ", "a", "   "}))
	assert.Empty(t, Normalize(nil))
}
