// Command nodeui lays out control-tree scenes on the headless backend.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/nodeui/cmd/nodeui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
