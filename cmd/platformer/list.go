package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any found in --levels, in play order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	descs, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(descs) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, d := range descs {
		maxIDLen = max(maxIDLen, len(d.ID))
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Enemies")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "-------")
	for _, d := range descs {
		fmt.Printf("  %-*s  %-*s  %d\n", maxIDLen, d.ID, maxNameLen, d.Name, d.CountEnemies())
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to start from a level.")
}
