package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/netform-dev/netform/internal/clierr"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(clierr.DetermineExitCode(err))
	}
}
