package worker

import (
	"testing"

	"github.com/snekimus/snek/board"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("r d\n.L")
	require.NoError(t, err)
	require.Len(t, s, 4)

	moves := []struct {
		Turn     int64
		Expected board.Direction
		OK       bool
	}{
		{Turn: 1, Expected: board.Right, OK: true},
		{Turn: 2, Expected: board.Down, OK: true},
		{Turn: 3, OK: false},
		{Turn: 4, Expected: board.Left, OK: true},
		{Turn: 5, OK: false},
		{Turn: 0, OK: false},
	}
	for _, m := range moves {
		d, ok := s.NextMove(m.Turn)
		require.Equal(t, m.OK, ok, "turn %d", m.Turn)
		if m.OK {
			require.Equal(t, m.Expected, d, "turn %d", m.Turn)
		}
	}
}

func TestParseScriptInvalid(t *testing.T) {
	_, err := ParseScript("rrx")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad move at offset 2")
}
