package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/organizer/cmd/organizer"
	"github.com/arthur-debert/organizer/pkg/ui/styles"
)

func main() {
	rootCmd := organizer.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Errors from a run were already rendered in the selected format
		if !organizer.Reported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
