package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirection_Delta(t *testing.T) {
	require.Equal(t, Point{X: 0, Y: -1}, Up.Delta())
	require.Equal(t, Point{X: 0, Y: 1}, Down.Delta())
	require.Equal(t, Point{X: -1, Y: 0}, Left.Delta())
	require.Equal(t, Point{X: 1, Y: 0}, Right.Delta())
}

func TestDirection_OppositeCancelsDelta(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		require.Equal(t, Point{}, d.Delta().Add(d.Opposite().Delta()), d.String())
		require.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":     Up,
		"Down":   Down,
		" left ": Left,
		"r":      Right,
		"U":      Up,
	}
	for in, expected := range tests {
		d, err := ParseDirection(in)
		require.NoError(t, err, in)
		require.Equal(t, expected, d, in)
	}

	_, err := ParseDirection("sideways")
	require.Error(t, err)
	require.Equal(t, `board: invalid direction "sideways"`, err.Error())
}

func TestPoint_In(t *testing.T) {
	require.True(t, Point{X: 0, Y: 0}.In(16))
	require.True(t, Point{X: 15, Y: 15}.In(16))
	require.False(t, Point{X: -1, Y: 0}.In(16))
	require.False(t, Point{X: 0, Y: 16}.In(16))
	require.Equal(t, "(3, 4)", Point{X: 3, Y: 4}.String())
}
