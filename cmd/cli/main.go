package main

import (
	"fmt"
	"os"

	"github.com/de-tools/edi-analytics/pkg/runtime/terminal"
	"github.com/de-tools/edi-analytics/pkg/services/source"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Source:    source.Sample(),
		Output:    os.Stdout,
		LogOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
