package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	faintColor   = color.New(color.Faint)
)

// setupColor applies the --color flag.
func setupColor(mode string, out *os.File) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(out)
	default:
		return fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}

	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// printer writes user-facing output. Progress lines are dropped in quiet mode;
// errors and warnings are always shown.
type printer struct {
	out   io.Writer
	quiet bool
}

func newPrinter(out io.Writer, quiet bool) *printer {
	return &printer{out: out, quiet: quiet}
}

// printerFor builds a printer for cmd's output honoring --quiet.
func printerFor(cmd *cobra.Command) (*printer, error) {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	return newPrinter(cmd.OutOrStdout(), quiet), nil
}

func (p *printer) Progressf(format string, args ...any) {
	if p.quiet {
		return
	}

	_, _ = faintColor.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) Successf(format string, args ...any) {
	if p.quiet {
		return
	}

	_, _ = successColor.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) Warnf(format string, args ...any) {
	_, _ = warningColor.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) Errorf(format string, args ...any) {
	_, _ = errorColor.Fprintf(p.out, format+"\n", args...)
}

// Printf writes plain output, shown even in quiet mode.
func (p *printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
