// Package agente implementa un agente tabular de Q-learning: tabla de
// valores estado-acción, selección epsilon-codiciosa con decaimiento
// exponencial y persistencia de la tabla en un fichero JSON.
package agente

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
)

// Calendario de exploración: epsilon decae de epsilonMax a epsilonMin a
// razón de exp(-epsilonDecay · muestras).
const (
	epsilonMin   = 0.1
	epsilonMax   = 0.9
	epsilonDecay = 0.0005
)

var errTableShape = errors.New("saved table has a different shape")

// Hiperparametros del aprendizaje.
type Hiperparametros struct {
	Alpha float64 // tasa de aprendizaje
	Gamma float64 // factor de descuento
}

// QLearning es el agente: una tabla estados × acciones de valores Q.
type QLearning struct {
	actions  int
	table    [][]float64
	params   Hiperparametros
	epsilon  float64
	muestras int
	rng      *rand.Rand
}

// New crea un agente con la tabla a cero. La semilla fija hace
// reproducible la exploración.
func New(states, actions int, params Hiperparametros, seed int64) *QLearning {
	table := make([][]float64, states)
	for i := range table {
		table[i] = make([]float64, actions)
	}
	return &QLearning{
		actions: actions,
		table:   table,
		params:  params,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// ElegirAccion decide la siguiente acción: codiciosa con probabilidad
// 1-epsilon, aleatoria uniforme en caso contrario.
func (q *QLearning) ElegirAccion(state int) int {
	if q.esCodicioso() {
		return q.Predecir(state)
	}
	return q.rng.Intn(q.actions)
}

// Predecir devuelve la acción de mayor valor Q para el estado; los
// empates se resuelven al azar entre las máximas.
func (q *QLearning) Predecir(state int) int {
	row := q.table[state]
	max := row[0]
	for _, v := range row[1:] {
		if v > max {
			max = v
		}
	}
	best := make([]int, 0, q.actions)
	for a, v := range row {
		if v == max {
			best = append(best, a)
		}
	}
	return best[q.rng.Intn(len(best))]
}

// Actualizar aplica la regla de diferencias temporales:
// Q(s,a) += alpha · (objetivo - Q(s,a)), donde el objetivo es la
// recompensa sola si el episodio terminó.
func (q *QLearning) Actualizar(state, action int, reward float64, next int, done bool) {
	predict := q.table[state][action]
	target := reward
	if !done {
		row := q.table[next]
		max := row[0]
		for _, v := range row[1:] {
			if v > max {
				max = v
			}
		}
		target = reward + q.params.Gamma*max
	}
	q.table[state][action] += q.params.Alpha * (target - predict)
}

// Epsilon devuelve la probabilidad de exploración actual.
func (q *QLearning) Epsilon() float64 { return q.epsilon }

func (q *QLearning) esCodicioso() bool {
	q.muestras++
	q.epsilon = epsilonMin + (epsilonMax-epsilonMin)*math.Exp(-epsilonDecay*float64(q.muestras))
	return q.rng.Float64() > q.epsilon
}

// tablaGuardada es la forma persistida del agente.
type tablaGuardada struct {
	Tabla [][]float64 `json:"tabla"`
}

// Guardar escribe la tabla Q en un fichero JSON.
func (q *QLearning) Guardar(path string) error {
	data, err := json.Marshal(tablaGuardada{Tabla: q.table})
	if err != nil {
		return fmt.Errorf("encoding Q table: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing Q table: %w", err)
	}
	return nil
}

// Cargar reemplaza la tabla Q por la guardada en el fichero. La forma
// debe coincidir con la del agente.
func (q *QLearning) Cargar(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading Q table: %w", err)
	}
	var saved tablaGuardada
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("decoding Q table: %w", err)
	}
	if len(saved.Tabla) != len(q.table) {
		return errTableShape
	}
	for _, row := range saved.Tabla {
		if len(row) != q.actions {
			return errTableShape
		}
	}
	q.table = saved.Tabla
	return nil
}
