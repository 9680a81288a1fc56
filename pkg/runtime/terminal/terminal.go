package terminal

import (
	"io"
	"os"

	"github.com/med-tools/comp-atlas/pkg/runtime/terminal/commands"
	"github.com/med-tools/comp-atlas/pkg/runtime/terminal/export"

	"github.com/med-tools/comp-atlas/pkg/services/comp"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	benchmarks benchmark.Store
	templates  comp.Registry
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Benchmarks benchmark.Store
	Templates  comp.Registry
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		benchmarks: opts.Benchmarks,
		templates:  opts.Templates,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comp",
		Short: "Physician compensation benchmarking tool",
	}

	cmd.AddCommand(commands.NewEvaluateCmd(cli.benchmarks, cli.templates, cli.reporter))
	cmd.AddCommand(commands.NewSpecialtiesCmd(cli.benchmarks, cli.reporter))

	return cmd
}
