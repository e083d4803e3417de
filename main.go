// gridsat is a command-line front end to the puzzle encoders: it reads
// a grid from a file, compiles it to CNF, runs a SAT oracle and prints
// the decoded solution.
//
// Exit codes follow the solver-CLI convention: 0 when a solution was
// found, 10 when the instance is unsatisfiable, 1 on any other error.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/4N5Hadow/gridsat/cnf"
	"github.com/4N5Hadow/gridsat/oracle"
	"github.com/4N5Hadow/gridsat/sokoban"
	"github.com/4N5Hadow/gridsat/sudoku"
)

const exitUnsat = 10

var (
	backendName string
	dimacsPath  string
	verbose     bool
	verify      bool
)

func main() {
	root := &cobra.Command{
		Use:           "gridsat",
		Short:         "solve grid puzzles by reduction to SAT",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&backendName, "backend", "gophersat", "SAT backend, gophersat or gini")
	root.PersistentFlags().StringVar(&dimacsPath, "dimacs", "", "write the CNF encoding to this file instead of solving")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log encoding details")
	root.PersistentFlags().BoolVar(&verify, "verify", false, "re-check the decoded solution against the domain rules")

	sudokuCmd := &cobra.Command{
		Use:   "sudoku FILE",
		Short: "fill a sudoku grid (digits, with 0 or . for blanks)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSudoku,
	}

	var horizon int
	sokobanCmd := &cobra.Command{
		Use:   "sokoban FILE",
		Short: "plan box pushes on a P/B/G/#/. grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSokoban(cmd, args[0], horizon)
		},
	}
	sokobanCmd.Flags().IntVarP(&horizon, "horizon", "t", 0, "number of steps to plan over")
	if err := sokobanCmd.MarkFlagRequired("horizon"); err != nil {
		panic(err)
	}

	root.AddCommand(sudokuCmd, sokobanCmd)

	if err := root.Execute(); err != nil {
		if errors.Is(err, sudoku.ErrUnsat) || errors.Is(err, sokoban.ErrUnsat) {
			fmt.Println("s UNSATISFIABLE")
			os.Exit(exitUnsat)
		}
		fmt.Fprintf(os.Stderr, "gridsat: %v\n", err)
		os.Exit(1)
	}
}

func backend() (oracle.Interface, error) {
	switch backendName {
	case "gophersat":
		return oracle.Gophersat(), nil
	case "gini":
		return oracle.Gini(), nil
	default:
		return nil, errors.Errorf("unknown backend %q", backendName)
	}
}

// exportDimacs writes the formula to dimacsPath.
func exportDimacs(f *cnf.Formula) error {
	out, err := os.Create(dimacsPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	return f.Dimacs(out)
}

func runSudoku(cmd *cobra.Command, args []string) error {
	grid, err := readSudoku(args[0])
	if err != nil {
		return err
	}
	p, err := sudoku.New(grid)
	if err != nil {
		return err
	}
	if dimacsPath != "" {
		return exportDimacs(p.Encode())
	}
	o, err := backend()
	if err != nil {
		return err
	}
	solved, err := p.SolveWithContext(cmd.Context(), o)
	if err != nil {
		return err
	}
	if verify && !sudoku.Verify(solved) {
		return errors.New("decoded grid fails verification")
	}
	for _, row := range solved {
		cells := lo.Map(row, func(v int, _ int) string { return strconv.Itoa(v) })
		fmt.Println(strings.Join(cells, " "))
	}
	return nil
}

func runSokoban(cmd *cobra.Command, path string, horizon int) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	level, err := sokoban.ParseLevel(lines)
	if err != nil {
		return err
	}
	if dimacsPath != "" {
		e, err := sokoban.NewEncoder(level, horizon)
		if err != nil {
			return err
		}
		return exportDimacs(e.Encode())
	}
	o, err := backend()
	if err != nil {
		return err
	}
	plan, err := sokoban.SolveWithContext(cmd.Context(), o, level, horizon)
	if err != nil {
		return err
	}
	if verify {
		if err := level.Apply(plan); err != nil {
			return errors.Wrap(err, "decoded plan fails verification")
		}
	}
	moves := lo.Map(plan, func(m sokoban.Move, _ int) string { return m.String() })
	fmt.Println(strings.Join(moves, " "))
	return nil
}

// readLines returns the non-empty lines of a file.
func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// readSudoku parses a digit grid. Rows are either contiguous runes
// (with . or 0 for blanks) or whitespace-separated numbers, which
// allows sides above 9.
func readSudoku(path string) ([][]int, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	grid := make([][]int, 0, len(lines))
	for r, line := range lines {
		var row []int
		if strings.ContainsAny(line, " \t") {
			for _, field := range strings.Fields(line) {
				if field == "." {
					row = append(row, 0)
					continue
				}
				v, err := strconv.Atoi(field)
				if err != nil {
					return nil, errors.Wrapf(err, "row %d", r)
				}
				row = append(row, v)
			}
		} else {
			for c, marker := range line {
				switch {
				case marker == '.':
					row = append(row, 0)
				case marker >= '0' && marker <= '9':
					row = append(row, int(marker-'0'))
				default:
					return nil, errors.Errorf("row %d: unexpected marker %q at column %d", r, marker, c)
				}
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}
