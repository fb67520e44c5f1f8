package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, rows ...string) Config {
	t.Helper()
	c, err := NewConfig(rows)
	require.NoError(t, err)
	return c
}

func TestNewConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		wantErr bool
	}{
		{name: "valid 3x3", rows: []string{"213", "084", "675"}},
		{name: "valid 2x2", rows: []string{"12", "30"}},
		{name: "too small", rows: []string{"0"}, wantErr: true},
		{name: "ragged row", rows: []string{"213", "08", "675"}, wantErr: true},
		{name: "no empty cell", rows: []string{"213", "984", "675"}, wantErr: true},
		{name: "two empty cells", rows: []string{"213", "080", "675"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.rows)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGoal(t *testing.T) {
	g := Goal(3)
	assert.Equal(t, "123456780", g.Key())
	assert.Equal(t, 3, g.Dim())

	empty, err := g.EmptyPosition()
	require.NoError(t, err)
	assert.Equal(t, Point{Row: 2, Col: 2}, empty)
}

// en tableros grandes las etiquetas siguen el orden de runa y no chocan
// con el hueco
func TestGoalLargeBoard(t *testing.T) {
	g := Goal(7)
	assert.Equal(t, 7, g.Dim())

	empty, err := g.EmptyPosition()
	require.NoError(t, err)
	assert.Equal(t, Point{Row: 6, Col: 6}, empty)

	seen := make(map[rune]bool)
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			label := g.At(Point{Row: row, Col: col})
			assert.False(t, seen[label], "duplicate label %q", label)
			seen[label] = true
		}
	}
}

func TestKeyAndString(t *testing.T) {
	c := mustConfig(t, "123", "456", "780")
	assert.Equal(t, "123456780", c.Key())
	// el hueco se pinta como espacio en blanco
	assert.Equal(t, "1 2 3\n4 5 6\n7 8  ", c.String())
}

func TestEmptyPosition(t *testing.T) {
	c := mustConfig(t, "213", "084", "675")
	empty, err := c.EmptyPosition()
	require.NoError(t, err)
	assert.Equal(t, Point{Row: 1, Col: 0}, empty)
}

func TestEmptyPositionMissing(t *testing.T) {
	// construcción directa: NewConfig jamás deja pasar un tablero así
	broken := Config{dim: 2, cells: []rune("1234")}
	_, err := broken.EmptyPosition()
	assert.ErrorIs(t, err, ErrNoEmpty)
}

func TestCandidateMovesOrder(t *testing.T) {
	// abajo, arriba, derecha, izquierda
	center := candidateMoves(Point{Row: 1, Col: 1}, 3)
	assert.Equal(t, []Point{{2, 1}, {0, 1}, {1, 2}, {1, 0}}, center)

	corner := candidateMoves(Point{Row: 0, Col: 0}, 3)
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, corner)

	edge := candidateMoves(Point{Row: 2, Col: 1}, 3)
	assert.Equal(t, []Point{{1, 1}, {2, 2}, {2, 0}}, edge)
}

func TestApplyMoveDoesNotMutate(t *testing.T) {
	c := mustConfig(t, "123", "456", "780")
	moved := c.applyMove(Point{Row: 2, Col: 2}, Point{Row: 2, Col: 1})

	assert.Equal(t, "123456780", c.Key())
	assert.Equal(t, "123456708", moved.Key())
}

func TestNeighbors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{name: "empty in corner", rows: []string{"123", "456", "780"}, want: 2},
		{name: "empty on edge", rows: []string{"213", "084", "675"}, want: 3},
		{name: "empty in center", rows: []string{"123", "405", "678"}, want: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustConfig(t, tc.rows...)
			neighbors, err := c.Neighbors()
			require.NoError(t, err)
			assert.Len(t, neighbors, tc.want)
			for _, n := range neighbors {
				assert.True(t, isLegalStep(c, n), "neighbor %q is not one legal slide away", n.Key())
			}
		})
	}
}

func TestMisplaced(t *testing.T) {
	goal := Goal(3)
	assert.Equal(t, 0, misplaced(goal, goal))

	start := mustConfig(t, "213", "084", "675")
	target := mustConfig(t, "123", "804", "765")
	assert.Equal(t, 5, misplaced(start, target))

	// la posición del hueco en el objetivo no cuenta
	oneSlide := mustConfig(t, "123", "456", "708")
	assert.Equal(t, 1, misplaced(oneSlide, goal))
}
