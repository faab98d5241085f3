package main

import (
	"fmt"
	"os"

	"github.com/interpretive-systems/gitdeck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gitdeck: %v\n", err)
		os.Exit(1)
	}
}
