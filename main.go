package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fistbump/fistbump/cmd"
	"github.com/fistbump/fistbump/internal/domain"
)

func main() {
	if err := cmd.InitCommands(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize commands: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		// The check gate prints its diagnostic on stdout; the exit code is
		// its contract with external automation.
		if errors.Is(err, domain.ErrCheckFailed) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
