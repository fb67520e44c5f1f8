// Interfaz gráfica del rompecabezas: mezcla el tablero y reproduce la
// solución encontrada por A* paso a paso o animada.
package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"practica-2-puzzle/puzzle"
)

const (
	tituloVentana = "8-Puzzle (Go + Fyne) • A*"
	anchoVentana  = 420
	altoVentana   = 560

	dimension = 3

	msgListo       = "Listo."
	msgReiniciado  = "Estado reiniciado (meta)."
	msgYaFinal     = "Ya estás en el estado final."
	msgSinSolucion = "No se encontró solución."
	fmtMezclado    = "Mezclado con %d pasos válidos."
	fmtResuelto    = "Solución en %d pasos • Nodos expandidos: %d"
	fmtPaso        = "Paso %d / %d"

	ladoFicha = 64

	mezclaMin     = 0
	mezclaMax     = 200
	mezclaInicial = 30

	cuadroAnimacion = 140 * time.Millisecond
)

type interfaz struct {
	ventana fyne.Window
	fichas  [dimension * dimension]*widget.Button

	tablero puzzle.Config
	meta    puzzle.Config

	camino     []puzzle.Config
	cursor     int
	expandidos int

	mezcla      *widget.Slider
	mezclaTexto *widget.Label
	estadoTexto *widget.Label
	botones     []*widget.Button
	animando    bool
	pararAnimar chan struct{}
}

func main() {
	a := app.New()
	v := a.NewWindow(tituloVentana)
	v.Resize(fyne.NewSize(anchoVentana, altoVentana))

	meta := puzzle.Goal(dimension)
	ui := &interfaz{
		ventana:     v,
		tablero:     meta,
		meta:        meta,
		estadoTexto: widget.NewLabel(msgListo),
	}

	v.SetContent(container.NewPadded(container.NewBorder(
		nil, ui.estadoTexto, nil, nil,
		container.NewVBox(container.NewCenter(ui.armarTablero()), ui.armarControles()),
	)))
	ui.pintar(ui.tablero)
	v.ShowAndRun()
}

func (ui *interfaz) armarTablero() *fyne.Container {
	celdas := make([]fyne.CanvasObject, 0, dimension*dimension)
	for i := range ui.fichas {
		b := widget.NewButton("", func() { ui.paso() }) // clic = avanzar paso
		ui.fichas[i] = b
		celdas = append(celdas, b)
	}
	return container.NewGridWrap(fyne.NewSize(ladoFicha, ladoFicha), celdas...)
}

func (ui *interfaz) armarControles() fyne.CanvasObject {
	ui.mezcla = widget.NewSlider(mezclaMin, mezclaMax)
	ui.mezcla.Step = 1
	ui.mezcla.Value = mezclaInicial
	ui.mezclaTexto = widget.NewLabel(strconv.Itoa(mezclaInicial))
	ui.mezcla.OnChanged = func(v float64) {
		ui.mezclaTexto.SetText(strconv.Itoa(int(math.Round(v))))
	}

	ui.botones = []*widget.Button{
		widget.NewButton("Iniciar", func() { ui.reiniciar() }),
		widget.NewButton("Mezclar", func() { ui.mezclar() }),
		widget.NewButton("Resolver", func() { ui.resolverAnimado() }),
		widget.NewButton("Paso", func() { ui.paso() }),
	}

	fila := container.NewHBox()
	for _, b := range ui.botones {
		fila.Add(b)
	}
	return widget.NewCard("Controles", "", container.NewVBox(
		widget.NewLabel("Pasos a mezclar:"),
		container.NewBorder(nil, nil, nil, ui.mezclaTexto, ui.mezcla),
		fila,
	))
}

// Acciones

func (ui *interfaz) reiniciar() {
	ui.pararAnimacion()
	ui.tablero = ui.meta
	ui.camino = nil
	ui.cursor = 0
	ui.pintar(ui.tablero)
	ui.estadoTexto.SetText(msgReiniciado)
}

func (ui *interfaz) mezclar() {
	ui.pararAnimacion()
	pasos := int(math.Round(ui.mezcla.Value))
	mezclado, err := puzzle.Shuffle(ui.meta, pasos)
	if err != nil {
		dialog.ShowError(err, ui.ventana)
		return
	}
	ui.tablero = mezclado
	ui.camino = nil
	ui.cursor = 0
	ui.pintar(ui.tablero)
	ui.estadoTexto.SetText(fmt.Sprintf(fmtMezclado, pasos))
}

// resolver ejecuta la búsqueda y deja el camino listo para reproducirse.
func (ui *interfaz) resolver() bool {
	result, err := puzzle.Solve(ui.tablero, ui.meta, 0)
	if err != nil {
		dialog.ShowError(err, ui.ventana)
		return false
	}
	if !result.Found {
		ui.estadoTexto.SetText(msgSinSolucion)
		return false
	}
	ui.camino = result.Path
	ui.cursor = 0
	ui.expandidos = result.Expanded
	return true
}

func (ui *interfaz) resolverAnimado() {
	if !ui.resolver() {
		return
	}
	ui.pararAnimacion()
	ui.habilitar(false)
	ui.animando = true
	ui.pararAnimar = make(chan struct{})
	go ui.animar(ui.camino, ui.expandidos, ui.pararAnimar)
}

// animar recibe el canal de cancelación como parámetro: pararAnimacion
// reasigna el campo y releerlo desde la gorutina bloquearía el select en
// un canal nil.
func (ui *interfaz) animar(camino []puzzle.Config, expandidos int, parar chan struct{}) {
	reloj := time.NewTicker(cuadroAnimacion)
	defer reloj.Stop()

	ultimo := len(camino) - 1
	for ui.cursor < len(camino) {
		select {
		case <-parar:
			return
		case <-reloj.C:
		}
		ui.pintar(camino[ui.cursor])
		ui.estadoTexto.SetText(fmt.Sprintf(fmtPaso, ui.cursor, ultimo))
		ui.cursor++
	}
	ui.tablero = camino[ultimo]
	ui.estadoTexto.SetText(fmt.Sprintf(fmtResuelto, ultimo, expandidos))
	ui.habilitar(true)
	ui.animando = false
}

func (ui *interfaz) paso() {
	if ui.animando {
		ui.pararAnimacion()
	}
	if len(ui.camino) == 0 && !ui.resolver() {
		return
	}
	if ui.cursor >= len(ui.camino) {
		ui.estadoTexto.SetText(msgYaFinal)
		return
	}
	ui.tablero = ui.camino[ui.cursor]
	ui.pintar(ui.tablero)
	ui.estadoTexto.SetText(fmt.Sprintf(fmtPaso, ui.cursor, len(ui.camino)-1))
	ui.cursor++
}

func (ui *interfaz) pararAnimacion() {
	if !ui.animando {
		return
	}
	if ui.pararAnimar != nil {
		close(ui.pararAnimar)
		ui.pararAnimar = nil
	}
	ui.animando = false
	ui.habilitar(true)
}

func (ui *interfaz) habilitar(activo bool) {
	for _, b := range ui.botones {
		if activo {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (ui *interfaz) pintar(c puzzle.Config) {
	for fila := 0; fila < dimension; fila++ {
		for col := 0; col < dimension; col++ {
			etiqueta := c.At(puzzle.Point{Row: fila, Col: col})
			texto := string(etiqueta)
			if etiqueta == puzzle.Empty {
				texto = ""
			}
			ui.fichas[fila*dimension+col].SetText(texto)
		}
	}
}
