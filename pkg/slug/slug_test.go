package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForArchive(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		reference string
		want      string
	}{
		{name: "accented spanish name", input: "José Muñoz", reference: "4f2a", want: "jose-munoz-4f2a"},
		{name: "extra whitespace", input: "  María   Paz ", reference: "ab12", want: "maria-paz-ab12"},
		{name: "punctuation stripped", input: "O'Brien & Co.", reference: "x1", want: "obrien-co-x1"},
		{name: "empty name", input: "", reference: "9z", want: "-9z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForArchive(tt.input, tt.reference))
		})
	}
}
