package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/racetrack"
)

var raceCmd = &cobra.Command{
	Use:   "race <file>",
	Short: "Count shortcuts on a race track",
	Long: `Reads a track drawn with '#' walls, 'S' start and 'E' end. Prints the honest
race length, the number of single walls worth breaking and the number of
cheats within the configured radius.`,
	Args: cobra.ExactArgs(1),
	RunE: runRace,
}

func init() {
	raceCmd.Flags().Int64("min-saving", 0, "Minimum steps a shortcut must save (overrides race.min_saving)")
	raceCmd.Flags().Int("radius", 0, "Maximum cheat length (overrides race.cheat_radius)")
	raceCmd.Flags().Int("workers", 0, "Concurrent wall probes (overrides race.workers)")
	raceCmd.Flags().Bool("render", false, "Draw the track with the honest route")
	rootCmd.AddCommand(raceCmd)
}

func runRace(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("min-saving") {
		cfg.Race.MinSaving, _ = cmd.Flags().GetInt64("min-saving")
	}
	overrideInt(cmd, "radius", &cfg.Race.CheatRadius)
	overrideInt(cmd, "workers", &cfg.Race.Workers)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	track, err := racetrack.Parse(string(data), racetrack.Options{
		Workers:  cfg.Race.Workers,
		Logger:   logger,
		Recorder: collector,
	})
	if err != nil {
		return err
	}

	ref, ok := track.Reference()
	if !ok {
		return racetrack.ErrNoRoute
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "honest race: %d steps\n", ref.Cost)
	if r, _ := cmd.Flags().GetBool("render"); r {
		route := dijkstra.Points(track.Grid(), ref.Path)
		fmt.Fprintln(out, render.Path(track.Grid(), racetrack.Cell.Rune, route, 'O', termenv.ColorProfile()))
	}

	walls, err := track.WallShortcuts(cmd.Context(), cfg.Race.MinSaving)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "walls saving >= %d: %d\n", cfg.Race.MinSaving, walls)

	cheats, err := track.Cheats(cfg.Race.CheatRadius, cfg.Race.MinSaving)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "cheats within %d saving >= %d: %d\n", cfg.Race.CheatRadius, cfg.Race.MinSaving, cheats)

	return nil
}
