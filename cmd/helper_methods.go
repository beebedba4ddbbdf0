package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner starts a spinner unless verbose or debug output is enabled,
// or quiet is set. The returned cleanup prints spinner.FinalMSG, adding a
// trailing newline, and must be deferred.
func startSpinner(message string, quiet bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !verbose && !debug && !quiet
	if animate {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running: %s", message)
	}

	cleanup := func() {
		if animate {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		// Printed to stdout so tests and pipes see it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
