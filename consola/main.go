// Binario de consola: resuelve el rompecabezas leído de la entrada
// estándar y entrena el agente tabular.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"practica-2-puzzle/agente"
	"practica-2-puzzle/puzzle"
)

var log = logrus.New()

// Estados de demostración, los mismos del modo de depuración original.
var (
	demoInicial  = []string{"213", "084", "675"}
	demoObjetivo = []string{"123", "804", "765"}
)

func main() {
	root := &cobra.Command{
		Use:           "practica-2-puzzle",
		Short:         "Rompecabezas deslizante: búsqueda A* y agente Q-learning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newResolverCmd(), newEntrenarCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newResolverCmd() *cobra.Command {
	var (
		demo      bool
		dimension int
		maxExpand int
	)

	cmd := &cobra.Command{
		Use:   "resolver",
		Short: "Resuelve el rompecabezas con A* (heurística de fichas mal colocadas)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var inicial, objetivo puzzle.Config
			var err error

			if demo {
				if inicial, err = puzzle.NewConfig(demoInicial); err != nil {
					return err
				}
				if objetivo, err = puzzle.NewConfig(demoObjetivo); err != nil {
					return err
				}
			} else {
				reader := bufio.NewReader(cmd.InOrStdin())
				fmt.Fprintln(cmd.OutOrStdout(), "\nIntroduce el estado inicial:")
				if inicial, err = leerConfiguracion(cmd, reader, dimension); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nIntroduce el estado objetivo:")
				if objetivo, err = leerConfiguracion(cmd, reader, dimension); err != nil {
					return err
				}
			}

			comienzo := time.Now()
			result, err := puzzle.Solve(inicial, objetivo, maxExpand)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"expandidos": result.Expanded,
				"duracion":   time.Since(comienzo),
			}).Info("búsqueda terminada")

			if !result.Found {
				fmt.Fprintln(cmd.OutOrStdout(), "No se encontró solución.")
				return nil
			}
			for _, config := range result.Path {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", config)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resuelto en %d paso(s).\n", result.Steps)
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "usar los estados de demostración en vez de leerlos")
	cmd.Flags().IntVar(&dimension, "dimension", 3, "lado del tablero")
	cmd.Flags().IntVar(&maxExpand, "max-expansiones", 0, "presupuesto de expansiones (0 = sin límite)")
	return cmd
}

// leerConfiguracion lee D líneas de D etiquetas; los espacios se ignoran.
func leerConfiguracion(cmd *cobra.Command, reader *bufio.Reader, dim int) (puzzle.Config, error) {
	rows := make([]string, 0, dim)
	for i := 0; i < dim; i++ {
		fmt.Fprint(cmd.OutOrStdout(), ">>> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return puzzle.Config{}, fmt.Errorf("reading row %d: %w", i+1, err)
		}
		line = strings.ReplaceAll(strings.TrimRight(line, "\r\n"), " ", "")
		if len([]rune(line)) > dim {
			line = string([]rune(line)[:dim])
		}
		rows = append(rows, line)
	}
	return puzzle.NewConfig(rows)
}

func newEntrenarCmd() *cobra.Command {
	var (
		episodios int
		maxPasos  int
		alpha     float64
		gamma     float64
		semilla   int64
		salida    string
	)

	cmd := &cobra.Command{
		Use:   "entrenar",
		Short: "Entrena el agente Q-learning en el lago helado y guarda la tabla",
		RunE: func(cmd *cobra.Command, args []string) error {
			lago := agente.Lago4x4
			q := agente.New(lago.Estados(), agente.NumAcciones,
				agente.Hiperparametros{Alpha: alpha, Gamma: gamma}, semilla)

			rewards := agente.Entrenar(lago, q, episodios, maxPasos)

			exitos := 0.0
			cola := rewards
			if len(cola) > 100 {
				cola = cola[len(cola)-100:]
			}
			for _, r := range cola {
				exitos += r
			}
			log.WithFields(logrus.Fields{
				"episodios": episodios,
				"epsilon":   q.Epsilon(),
				"exito":     exitos / float64(len(cola)),
			}).Info("entrenamiento terminado")

			if err := q.Guardar(salida); err != nil {
				return err
			}
			log.WithField("fichero", salida).Info("tabla Q guardada")
			return nil
		},
	}

	cmd.Flags().IntVar(&episodios, "episodios", 5000, "número de episodios")
	cmd.Flags().IntVar(&maxPasos, "max-pasos", 100, "pasos máximos por episodio")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "tasa de aprendizaje")
	cmd.Flags().Float64Var(&gamma, "gamma", 0.9, "factor de descuento")
	cmd.Flags().Int64Var(&semilla, "semilla", time.Now().UnixNano(), "semilla del generador aleatorio")
	cmd.Flags().StringVar(&salida, "salida", "q_table.json", "fichero de salida de la tabla Q")
	return cmd
}
