package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"practica-2-puzzle/puzzle"
)

func interfazDePrueba() *interfaz {
	meta := puzzle.Goal(dimension)
	ui := &interfaz{
		tablero:     meta,
		meta:        meta,
		estadoTexto: widget.NewLabel(msgListo),
		botones: []*widget.Button{
			widget.NewButton("Iniciar", nil),
			widget.NewButton("Paso", nil),
		},
	}
	for i := range ui.fichas {
		ui.fichas[i] = widget.NewButton("", nil)
	}
	return ui
}

// con el canal ya cerrado la animación sale sin pintar ni avanzar el
// cursor
func TestAnimarCancelado(t *testing.T) {
	test.NewApp()
	ui := interfazDePrueba()
	camino := []puzzle.Config{ui.meta, ui.meta}

	parar := make(chan struct{})
	close(parar)
	ui.animar(camino, 0, parar)

	assert.Equal(t, 0, ui.cursor)
	assert.Equal(t, msgListo, ui.estadoTexto.Text)
}

func TestPararAnimacion(t *testing.T) {
	test.NewApp()
	ui := interfazDePrueba()

	// sin animación en curso no toca nada
	ui.pararAnimacion()
	assert.Nil(t, ui.pararAnimar)

	ui.animando = true
	ui.pararAnimar = make(chan struct{})
	ui.habilitar(false)
	parar := ui.pararAnimar

	ui.pararAnimacion()

	select {
	case <-parar:
	default:
		t.Fatal("el canal de cancelación sigue abierto")
	}
	assert.Nil(t, ui.pararAnimar)
	assert.False(t, ui.animando)
	for _, b := range ui.botones {
		assert.False(t, b.Disabled())
	}
}
