package viewer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	seq := strings.Repeat("A", 130)
	lines := Lines(seq, 0)
	require.Len(t, lines, 3)
	assert.Equal(t, "000000", lines[0].Label())
	assert.Equal(t, "000060", lines[1].Label())
	assert.Equal(t, "000120", lines[2].Label())
	assert.Len(t, lines[0].Text, 60)
	assert.Len(t, lines[2].Text, 10)
}

func TestLinesCustomWidth(t *testing.T) {
	lines := Lines("ATGCATG", 3)
	assert.Equal(t, []Line{{0, "ATG"}, {3, "CAT"}, {6, "G"}}, lines)
}

func TestLinesEmpty(t *testing.T) {
	assert.Empty(t, Lines("", 60))
}

func TestBaseClass(t *testing.T) {
	assert.Equal(t, Adenine, BaseClass('A'))
	assert.Equal(t, Cytosine, BaseClass('C'))
	assert.Equal(t, Other, BaseClass('N'))
}
