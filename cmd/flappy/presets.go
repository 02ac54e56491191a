package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List tuning presets",
	Long:  `Shows the built-in presets accepted by --preset.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	presets := config.Presets()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, p := range presets {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, p.Name, p.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play --preset <name>' to use one.")
}

func presetNames() string {
	presets := config.Presets()
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
