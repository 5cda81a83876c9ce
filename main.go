package main

import (
	"fmt"
	"os"

	"github.com/kamholtz/trak/cmd"
	"github.com/kamholtz/trak/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
