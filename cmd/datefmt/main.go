package main

import (
	"fmt"
	"os"

	"github.com/preston-bernstein/datefmt-service/cmd/datefmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
