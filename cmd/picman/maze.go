package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picman/internal/maze"
)

var flagCheck string

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Show and validate the built-in maze",
	Long: `Print the built-in maze with its size, item count and spawn markers.

With --check, validate a maze definition file instead. A valid maze is
rectangular and enclosed by walls. Symbols:
  #       wall
  .       item
  0-9     spawn marker (decorative)
  other   floor

Examples:
  picman maze
  picman maze --check ./my-maze.txt`,
	Args: cobra.NoArgs,
	Run:  runMaze,
}

func init() {
	mazeCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this maze definition file")
}

func runMaze(_ *cobra.Command, _ []string) {
	text := maze.ClassicDefinition()
	source := "built-in"
	if flagCheck != "" {
		data, err := os.ReadFile(flagCheck)
		if err != nil {
			exitWithError(err)
		}
		text = string(data)
		source = flagCheck
	}

	m, err := maze.ParseText(text)
	if err != nil {
		exitWithError(fmt.Errorf("%s: %w", source, err))
	}

	fmt.Println(m.String())
	fmt.Println()
	fmt.Printf("Source:  %s\n", source)
	fmt.Printf("Size:    %dx%d\n", m.Width(), m.Height())
	fmt.Printf("Items:   %d\n", m.ItemCount())
	for _, mk := range m.Markers() {
		fmt.Printf("Marker:  %c at %v\n", mk.Digit, mk.Pos)
	}
}
