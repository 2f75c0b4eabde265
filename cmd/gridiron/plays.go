package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/playbook"
)

var playsCmd = &cobra.Command{
	Use:   "plays",
	Short: "List the playbook",
	Long: `Shows every play that can be called during a match.

The called play is shown on the scoreboard; it does not change how the
runner or defender move.`,
	Args: cobra.NoArgs,
	Run:  runPlays,
}

func runPlays(_ *cobra.Command, _ []string) {
	plays := playbook.List()

	if len(plays) == 0 {
		fmt.Println("No plays available.")
		return
	}

	fmt.Println("Playbook:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range plays {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  #  %-*s  %-13s  %s\n", maxIDLen, "ID", "Name", "Side")
	fmt.Printf("  -  %-*s  %-13s  %s\n", maxIDLen, "--", "----", "----")

	for i, p := range plays {
		fmt.Printf("  %d  %-*s  %-13s  %s\n", i+1, maxIDLen, p.ID, p.Name, p.Side)
	}

	fmt.Println()
	fmt.Println("Press 1-6 during 'gridiron play' to call a play.")
}
