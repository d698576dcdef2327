package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/corruption"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/internal/render"
)

var mazeCmd = &cobra.Command{
	Use:   "maze <file>",
	Short: "Solve a corrupted-memory maze",
	Long: `Reads one "x,y" byte position per line. Prints the shortest walk from the
top-left to the bottom-right corner after the configured number of bytes has
fallen, then the first byte that cuts the exit off.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().Int("size", 0, "Side length of the memory space (overrides maze.size)")
	mazeCmd.Flags().Int("fallen", 0, "Bytes fallen before the walk (overrides maze.fallen)")
	mazeCmd.Flags().Bool("render", false, "Draw the memory with the shortest walk")
	rootCmd.AddCommand(mazeCmd)
}

func runMaze(cmd *cobra.Command, args []string) error {
	overrideInt(cmd, "size", &cfg.Maze.Size)
	overrideInt(cmd, "fallen", &cfg.Maze.Fallen)
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	falling, err := corruption.ParseBytes(f)
	if err != nil {
		return err
	}
	logger.Info("maze loaded", "file", args[0], "bytes", len(falling), "size", cfg.Maze.Size)

	opts := corruption.Options{Logger: logger, Recorder: collector}
	g, err := corruption.Layout(cfg.Maze.Size, falling, cfg.Maze.Fallen)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res, ok := corruption.ShortestExit(g, opts)
	if ok {
		fmt.Fprintf(out, "shortest exit after %d bytes: %d steps\n", cfg.Maze.Fallen, res.Cost)
	} else {
		fmt.Fprintf(out, "shortest exit after %d bytes: unreachable\n", cfg.Maze.Fallen)
	}
	if r, _ := cmd.Flags().GetBool("render"); r && ok {
		route := dijkstra.Points(g, res.Path)
		fmt.Fprintln(out, render.Path(g, corruption.Cell.Rune, route, 'O', termenv.ColorProfile()))
	}

	b, idx, ok, err := corruption.FirstBlocking(cfg.Maze.Size, falling, opts)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(out, "first blocking byte: %s (#%d)\n", b, idx)
	} else {
		fmt.Fprintln(out, "first blocking byte: none")
	}

	return nil
}
