package puzzle

import (
	"container/heap"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	errInvalidSteps = errors.New("steps must be >= 0")
	errDimMismatch  = errors.New("start and target dimensions differ")
)

// node es un nodo del árbol de búsqueda A*. g, h y f=g+h se fijan al
// construirlo y no cambian después; un camino mejor descubierto más tarde
// produce un nodo nuevo, nunca una actualización in situ.
type node struct {
	config Config
	g, h   int
	seq    int
	index  int
	parent *node
}

func (n *node) f() int { return n.g + n.h }

// nodeHeap ordena por f ascendente; a igual f gana el insertado primero
// (desempate FIFO vía seq, estable para las pruebas).
type nodeHeap []*node

func (q nodeHeap) Len() int { return len(q) }
func (q nodeHeap) Less(i, j int) bool {
	if q[i].f() == q[j].f() {
		return q[i].seq < q[j].seq
	}
	return q[i].f() < q[j].f()
}
func (q nodeHeap) Swap(i, j int) { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *nodeHeap) Push(x any)   { n := x.(*node); n.index = len(*q); *q = append(*q, n) }
func (q *nodeHeap) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	item.index = -1
	*q = old[:n-1]
	return item
}

// frontier es la lista abierta: un multiconjunto de nodos candidatos
// ordenado por f.
type frontier struct {
	nodes nodeHeap
	seq   int
}

func newFrontier() *frontier {
	f := &frontier{nodes: nodeHeap{}}
	heap.Init(&f.nodes)
	return f
}

func (f *frontier) pushOne(n *node) {
	n.seq = f.seq
	f.seq++
	heap.Push(&f.nodes, n)
}

func (f *frontier) pushMany(ns []*node) {
	for _, n := range ns {
		f.pushOne(n)
	}
}

func (f *frontier) pop() *node { return heap.Pop(&f.nodes).(*node) }

func (f *frontier) len() int { return len(f.nodes) }

// expand genera los hijos de un nodo: una configuración vecina por cada
// deslizamiento legal, con g = padre.g + 1.
func expand(parent *node, target Config) ([]*node, error) {
	neighbors, err := parent.config.Neighbors()
	if err != nil {
		return nil, fmt.Errorf("expanding node at depth %d: %w", parent.g, err)
	}
	children := make([]*node, 0, len(neighbors))
	for _, next := range neighbors {
		children = append(children, &node{
			config: next,
			g:      parent.g + 1,
			h:      misplaced(next, target),
			parent: parent,
		})
	}
	return children, nil
}

// buildPath reconstruye el camino siguiendo los enlaces al padre y lo
// devuelve en orden inicio → meta.
func buildPath(goal *node) []Config {
	reversed := make([]Config, 0, goal.g+1)
	for n := goal; n != nil; n = n.parent {
		reversed = append(reversed, n.config)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

// Result es el desenlace de una búsqueda. Si Found es false no hay camino
// (o se agotó el presupuesto de expansiones): es un resultado normal, no
// un error.
type Result struct {
	Path     []Config
	Steps    int
	Expanded int
	Found    bool
}

// Solve busca con A* la secuencia mínima de movimientos de start a
// target. maxExpand = 0 ⇒ sin límite; si se supera, el resultado es
// "sin solución". El único error posible es una configuración malformada
// (sin casilla vacía).
//
// Política de revisita: si una configuración entra varias veces en la
// frontera por caminos distintos, todas las copias permanecen; se expande
// la primera en salir y las demás se descartan al encontrarse su clave en
// el conjunto de visitados. Con heurística consistente y coste unitario
// la primera expansión llega siempre por un camino mínimo.
func Solve(start, target Config, maxExpand int) (Result, error) {
	if start.Dim() != target.Dim() {
		return Result{}, errDimMismatch
	}

	open := newFrontier()
	open.pushOne(&node{config: start, h: misplaced(start, target)})
	visited := make(map[string]*node)
	expanded := 0

	for open.len() > 0 {
		current := open.pop()

		// h = 0 ⇔ todas las casillas no vacías coinciden con el objetivo.
		if current.h == 0 {
			return Result{
				Path:     buildPath(current),
				Steps:    current.g,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		key := current.config.Key()
		if _, seen := visited[key]; seen {
			continue
		}

		children, err := expand(current, target)
		if err != nil {
			return Result{}, err
		}
		open.pushMany(children)
		visited[key] = current

		expanded++
		if maxExpand > 0 && expanded > maxExpand {
			break
		}
	}
	return Result{Expanded: expanded}, nil
}

// Shuffle desordena una configuración con un paseo aleatorio de steps
// movimientos válidos. Siempre produce una configuración alcanzable
// desde start.
func Shuffle(start Config, steps int) (Config, error) {
	if steps < 0 {
		return Config{}, errInvalidSteps
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	current := start
	for i := 0; i < steps; i++ {
		neighbors, err := current.Neighbors()
		if err != nil {
			return Config{}, err
		}
		current = neighbors[rng.Intn(len(neighbors))]
	}
	return current, nil
}
