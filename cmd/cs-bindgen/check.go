package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/diagnostic"
	"cs-bindgen/internal/oracle"
)

var errCheckFailed = errors.New("interface check failed")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <interface.yaml>...",
		Short: "Load interface files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}

	cmd.Flags().Bool("types", false, "list every type used by each interface and its C# rendering")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := printerFor(cmd)
	if err != nil {
		return err
	}

	showTypes, err := cmd.Flags().GetBool("types")
	if err != nil {
		return fmt.Errorf("failed to get types flag: %w", err)
	}

	var total diagnostic.Diagnostics

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read interface file %s: %w", path, err)
		}

		c, diags, err := ci.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		printDiagnostics(p, path, diags)
		total.Merge(diags)

		if diags.HasErrors() {
			continue
		}

		p.Successf("%s: ok (%d records, %d enums, %d objects, %d functions)", path,
			len(c.Records), len(c.Enums), len(c.Objects), len(c.Functions))

		if showTypes {
			printTypes(cmd.OutOrStdout(), c)
		}
	}

	if len(args) > 1 {
		p.Progressf("checked %d files: %d error(s), %d warning(s)", len(args), len(total.Errors), len(total.Warnings))
	}

	if total.HasErrors() {
		return errCheckFailed
	}

	return nil
}

func printDiagnostics(p *printer, path string, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.DiagnosticError:
			p.Errorf("%s: error: %s", path, d)
		case diagnostic.DiagnosticWarning:
			p.Warnf("%s: warning: %s", path, d)
		default:
			p.Progressf("%s: %s: %s", path, d.Severity, d)
		}
	}
}

// printTypes renders one table row per distinct type reachable from c.
func printTypes(w io.Writer, c *ci.ComponentInterface) {
	o := oracle.New()
	seen := make(map[string]bool)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Type", "C#", "Canonical", "Default"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	c.IterTypes(func(t ci.Type) {
		ct := o.Find(t)

		name := ct.CanonicalName()
		if seen[name] {
			return
		}

		seen[name] = true

		table.Append([]string{t.String(), ct.TypeLabel(c), name, ct.DefaultValue(c)})
	})

	table.Render()
}
