// Package main provides the CLI entrypoint for cs-bindgen.
//
// cs-bindgen generates C# bindings from a YAML component interface:
//   - generate renders bindings for one or more interface files
//   - inspect shows how a single type expression is rendered
//   - check loads interface files and reports diagnostics
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"cs-bindgen/internal/diagnostic"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitFatal = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return guard(stderr, func() int {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(stdout)
		root.SetErr(stderr)

		if err := root.Execute(); err != nil {
			newPrinter(stderr, false).Errorf("%v", err)
			return exitError
		}

		return exitOK
	})
}

// guard runs fn and turns an internal invariant violation into exitFatal.
// Any other panic propagates.
func guard(stderr io.Writer, fn func() int) (code int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		ie, ok := r.(*diagnostic.InvariantError)
		if !ok {
			panic(r)
		}

		newPrinter(stderr, false).Errorf("fatal: %v", ie)

		code = exitFatal
	}()

	return fn()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cs-bindgen",
		Short:         "Generate C# bindings from a component interface",
		Long:          `cs-bindgen renders C# type labels, literals and converter helpers for a YAML component interface.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}

			return setupColor(mode, os.Stdout)
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCheckCmd())

	return root
}
