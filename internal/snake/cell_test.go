package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"up", Up, true},
		{"ArrowUp", Up, true},
		{"W", Up, true},
		{"down", Down, true},
		{"ArrowDown", Down, true},
		{"left", Left, true},
		{"a", Left, true},
		{"RIGHT", Right, true},
		{"ArrowRight", Right, true},
		{"", None, false},
		{"Enter", None, false},
		{"vertical", None, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseDirection(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCellIn(t *testing.T) {
	assert.True(t, Cell{X: 0, Y: 0}.In(5, 5))
	assert.True(t, Cell{X: 4, Y: 4}.In(5, 5))
	assert.False(t, Cell{X: 5, Y: 0}.In(5, 5))
	assert.False(t, Cell{X: 0, Y: -1}.In(5, 5))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "invalid", Direction{X: 1, Y: 1}.String())
}
