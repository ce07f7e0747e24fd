package cli

import (
	"fmt"
	"time"

	"github.com/ehrlich-b/korfcube/internal/cube"
	"github.com/spf13/cobra"
)

// benchScramble is one entry in the bench battery, grounded on
// solver_bench_test.go's benchmark-table style.
type benchScramble struct {
	name     string
	scramble string
}

var benchScrambles = []benchScramble{
	{"sexy-move", "R U R' U'"},
	{"random-25", "R U2 D' B D' B' R' U' R B R' U R U2 R' F2 L D2 R' B2 U' L2 F' D L2"},
	{"superflip", "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver algorithms against a battery of scrambles",
	Long: `bench runs each requested algorithm against a fixed battery of
scrambles (a short sexy-move, a random 25-move scramble, and the
superflip position) and reports move count and wall time per case,
grounded on solver_bench_test.go's benchmark scramble table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, _ := cmd.Flags().GetString("algorithm")

		solver, err := cube.GetSolver(algorithm)
		if err != nil {
			return err
		}

		fmt.Printf("Benchmarking %s solver:\n\n", solver.Name())
		for _, bs := range benchScrambles {
			c := cube.NewCube(3)
			moves, err := cube.ParseScramble(bs.scramble)
			if err != nil {
				return fmt.Errorf("parsing scramble %q: %w", bs.name, err)
			}
			c.ApplyMoves(moves)

			start := time.Now()
			result, err := solver.Solve(c)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("%-12s FAILED: %v\n", bs.name, err)
				continue
			}

			fmt.Printf("%-12s %4d moves   %v\n", bs.name, result.Steps, elapsed)
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().StringP("algorithm", "a", "korf", "Solving algorithm to benchmark (beginner, cfop, kociemba, thistlethwaite, korf)")
}
