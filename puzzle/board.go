// Package puzzle implementa el núcleo del rompecabezas deslizante:
// configuraciones inmutables del tablero, generación de movimientos y la
// búsqueda A* con la heurística de fichas mal colocadas.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Empty es la etiqueta que representa la casilla vacía.
const Empty = '0'

var (
	errDimension = errors.New("the board must be square with at least 2 rows")
	errEmptyCell = errors.New("the board must contain exactly one empty cell")

	// ErrNoEmpty señala una configuración estructuralmente inválida:
	// no debería ocurrir si se respetó el invariante de construcción.
	ErrNoEmpty = errors.New("empty cell not found")
)

// Point es la coordenada de una casilla; (0, 0) es la esquina superior
// izquierda del tablero.
type Point struct {
	Row, Col int
}

// Config es una instantánea inmutable de un tablero D×D de etiquetas de un
// carácter, una de las cuales es Empty. Toda transformación devuelve una
// configuración nueva.
type Config struct {
	dim   int
	cells []rune
}

// NewConfig construye una configuración a partir de D filas de D etiquetas.
// Valida la forma y que exista exactamente una casilla vacía; la igualdad
// del multiconjunto de etiquetas con el objetivo es responsabilidad del
// llamador.
func NewConfig(rows []string) (Config, error) {
	dim := len(rows)
	if dim < 2 {
		return Config{}, errDimension
	}

	cells := make([]rune, 0, dim*dim)
	empties := 0
	for _, row := range rows {
		labels := []rune(row)
		if len(labels) != dim {
			return Config{}, fmt.Errorf("row %q: %w", row, errDimension)
		}
		for _, label := range labels {
			if label == Empty {
				empties++
			}
			cells = append(cells, label)
		}
	}
	if empties != 1 {
		return Config{}, errEmptyCell
	}
	return Config{dim: dim, cells: cells}, nil
}

// Goal devuelve la configuración ordenada canónica: etiquetas en orden
// creciente de runa desde '1' con la casilla vacía al final (para D=3:
// 1..8 y el hueco). Las etiquetas generadas nunca coinciden con Empty,
// así que vale para cualquier D.
func Goal(dim int) Config {
	cells := make([]rune, dim*dim)
	for i := 0; i < dim*dim-1; i++ {
		cells[i] = rune('1' + i)
	}
	cells[dim*dim-1] = Empty
	return Config{dim: dim, cells: cells}
}

// Dim devuelve el lado del tablero.
func (c Config) Dim() int { return c.dim }

// At devuelve la etiqueta en la casilla p.
func (c Config) At(p Point) rune { return c.cells[p.Row*c.dim+p.Col] }

// Key serializa el tablero fila a fila, hueco incluido. Sirve como clave
// exacta del conjunto de visitados.
func (c Config) Key() string { return string(c.cells) }

// Equal compara dos configuraciones casilla a casilla.
func (c Config) Equal(other Config) bool {
	return c.dim == other.dim && c.Key() == other.Key()
}

// String muestra el tablero en D líneas de etiquetas separadas por
// espacios; el hueco se pinta como un espacio en blanco.
func (c Config) String() string {
	var b strings.Builder
	for row := 0; row < c.dim; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.dim; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			label := c.cells[row*c.dim+col]
			if label == Empty {
				label = ' '
			}
			b.WriteRune(label)
		}
	}
	return b.String()
}

// EmptyPosition localiza la casilla vacía recorriendo el tablero por
// filas. Devuelve ErrNoEmpty si no existe; con el invariante respetado
// eso nunca sucede.
func (c Config) EmptyPosition() (Point, error) {
	for i, label := range c.cells {
		if label == Empty {
			return Point{Row: i / c.dim, Col: i % c.dim}, nil
		}
	}
	return Point{}, ErrNoEmpty
}

// candidateMoves enumera las casillas adyacentes a p dentro del tablero.
// El orden es fijo (abajo, arriba, derecha, izquierda) porque determina el
// desempate en la frontera.
func candidateMoves(p Point, dim int) []Point {
	all := [...]Point{
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row, Col: p.Col + 1},
		{Row: p.Row, Col: p.Col - 1},
	}
	out := make([]Point, 0, 4)
	for _, q := range all {
		if q.Row < 0 || q.Row >= dim || q.Col < 0 || q.Col >= dim {
			continue
		}
		out = append(out, q)
	}
	return out
}

// applyMove devuelve una configuración nueva con las etiquetas de from y
// to intercambiadas; el receptor no se modifica.
func (c Config) applyMove(from, to Point) Config {
	cells := make([]rune, len(c.cells))
	copy(cells, c.cells)
	i := from.Row*c.dim + from.Col
	j := to.Row*c.dim + to.Col
	cells[i], cells[j] = cells[j], cells[i]
	return Config{dim: c.dim, cells: cells}
}

// Neighbors genera las configuraciones alcanzables deslizando una ficha
// hacia el hueco. Solo falla si el tablero carece de casilla vacía.
func (c Config) Neighbors() ([]Config, error) {
	empty, err := c.EmptyPosition()
	if err != nil {
		return nil, err
	}
	moves := candidateMoves(empty, c.dim)
	out := make([]Config, 0, len(moves))
	for _, move := range moves {
		out = append(out, c.applyMove(empty, move))
	}
	return out, nil
}

// misplaced cuenta las casillas cuya etiqueta difiere del objetivo,
// ignorando la posición del hueco en el objetivo. Es la heurística de
// fichas mal colocadas: admisible y consistente con coste unitario.
func misplaced(c, target Config) int {
	count := 0
	for i, want := range target.cells {
		if want == Empty {
			continue
		}
		if c.cells[i] != want {
			count++
		}
	}
	return count
}
