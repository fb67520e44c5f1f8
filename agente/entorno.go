package agente

// Acciones del entorno de rejilla.
const (
	Arriba = iota
	Abajo
	Izquierda
	Derecha
	NumAcciones
)

// Casilla es una coordenada del lago; (0, 0) es la esquina superior
// izquierda.
type Casilla struct {
	X, Y int
}

// Lago es un entorno de rejilla tipo "lago helado": el agente parte de
// Inicio y debe llegar a Meta sin pisar un agujero. "o" es suelo firme y
// "x" un agujero.
type Lago struct {
	Dim    int
	Mapa   [][]string
	Inicio Casilla
	Meta   Casilla
}

// Lago4x4 es la instancia clásica de entrenamiento.
var Lago4x4 = Lago{
	Dim: 4,
	Mapa: [][]string{
		{"o", "o", "x", "x"},
		{"o", "x", "o", "x"},
		{"o", "o", "o", "o"},
		{"o", "x", "x", "o"},
	},
	Inicio: Casilla{X: 0, Y: 0},
	Meta:   Casilla{X: 3, Y: 3},
}

// Estados devuelve el número de estados del entorno.
func (l Lago) Estados() int { return l.Dim * l.Dim }

// Estado codifica una casilla como índice de la tabla Q.
func (l Lago) Estado(c Casilla) int { return c.Y*l.Dim + c.X }

func (l Lago) casilla(state int) Casilla {
	return Casilla{X: state % l.Dim, Y: state / l.Dim}
}

// Reiniciar devuelve el estado inicial de un episodio.
func (l Lago) Reiniciar() int { return l.Estado(l.Inicio) }

// Paso ejecuta una acción. Moverse contra el borde deja al agente donde
// está. Pisar un agujero termina el episodio con recompensa 0; llegar a
// la meta lo termina con recompensa 1.
func (l Lago) Paso(state, action int) (next int, reward float64, done bool) {
	c := l.casilla(state)
	switch action {
	case Arriba:
		c.Y--
	case Abajo:
		c.Y++
	case Izquierda:
		c.X--
	case Derecha:
		c.X++
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.X >= l.Dim {
		c.X = l.Dim - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y >= l.Dim {
		c.Y = l.Dim - 1
	}

	next = l.Estado(c)
	if c == l.Meta {
		return next, 1, true
	}
	if l.Mapa[c.Y][c.X] == "x" {
		return next, 0, true
	}
	return next, 0, false
}

// Entrenar ejecuta episodios de Q-learning sobre el lago y devuelve la
// recompensa total de cada episodio.
func Entrenar(lago Lago, agente *QLearning, episodios, maxPasos int) []float64 {
	rewards := make([]float64, 0, episodios)
	for ep := 0; ep < episodios; ep++ {
		state := lago.Reiniciar()
		total := 0.0
		for paso := 0; paso < maxPasos; paso++ {
			action := agente.ElegirAccion(state)
			next, reward, done := lago.Paso(state, action)
			agente.Actualizar(state, action, reward, next, done)
			total += reward
			state = next
			if done {
				break
			}
		}
		rewards = append(rewards, total)
	}
	return rewards
}
