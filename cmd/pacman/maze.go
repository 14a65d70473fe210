package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print the built-in maze",
	Long:  `Prints the maze shipped with the game, its spawn points and pickup counts.`,
	RunE:  runMaze,
}

func runMaze(cmd *cobra.Command, args []string) error {
	layout := maze.Classic()
	g, err := layout.Build(1, 1, agent.RosterNames()...)
	if err != nil {
		return err
	}

	counts := make(map[maze.Category]int)
	for row := range g.Height() {
		for col := range g.Width() {
			cell, err := g.CellAt(row, col)
			if err != nil {
				return err
			}
			counts[cell.Category]++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Maze %q, %dx%d cells\n\n", layout.Name, g.Width(), g.Height())
	for _, row := range layout.Rows {
		fmt.Fprintf(out, "  %s\n", row)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Pickups:        %d\n", counts[maze.Pickup])
	fmt.Fprintf(out, "  Bonus pickups:  %d\n", counts[maze.BonusPickup])
	fmt.Fprintf(out, "  Walls:          %d\n", counts[maze.Wall])
	fmt.Fprintf(out, "  Player spawn:   (%d, %d)\n", layout.Player.Row, layout.Player.Col)

	names := make([]string, 0, len(layout.Pursuers))
	for name := range layout.Pursuers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := layout.Pursuers[name]
		fmt.Fprintf(out, "  %-14s  (%d, %d)\n", name+" spawn:", s.Row, s.Col)
	}
	return nil
}
