package main

import (
	"fmt"
	"os"

	"github.com/med-tools/comp-atlas/pkg/runtime/terminal"
	"github.com/med-tools/comp-atlas/pkg/services/comp"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"
)

func main() {
	benchmarks, err := benchmark.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Benchmarks: benchmarks,
		Templates:  comp.DefaultRegistry(),
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
