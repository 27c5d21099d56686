package main

import (
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/organizer/cmd/organizer"
	"github.com/arthur-debert/organizer/internal/version"
	"github.com/arthur-debert/organizer/pkg/logging"
)

func main() {
	logging.SetupLogger(0, os.Stderr)
	rootCmd := organizer.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ORGANIZER",
		Section: "1",
		Source:  "organizer " + version.Version,
		Manual:  "organizer manual",
	}

	logging.Must(doc.GenMan(rootCmd, header, os.Stdout), "Error generating man page")
}
