package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/oracle"
)

const probeName = "inspect_probe"

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [flags] <type-expr>",
		Short: "Show how a type expression renders in C#",
		Long: `Inspect prints the C# label, canonical name, converter and default value of a type.
Named types are resolved against --interface. With --literal the given YAML literal
is checked against the type and rendered.`,
		Example: `  cs-bindgen inspect "map<string, sequence<duration>>"
  cs-bindgen inspect "optional<timestamp>" --literal "{some: default}"
  cs-bindgen inspect "sequence<todo_entry>" --interface todolist.yaml --dump`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().String("interface", "", "interface file declaring named types")
	cmd.Flags().String("literal", "", "YAML literal to render, e.g. none or {int: 3}")
	cmd.Flags().Bool("dump", false, "dump the parsed type structure")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := printerFor(cmd)
	if err != nil {
		return err
	}

	ifacePath, err := cmd.Flags().GetString("interface")
	if err != nil {
		return fmt.Errorf("failed to get interface flag: %w", err)
	}

	literalText, err := cmd.Flags().GetString("literal")
	if err != nil {
		return fmt.Errorf("failed to get literal flag: %w", err)
	}

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	c, probe, err := buildProbe(ifacePath, args[0], literalText, p)
	if err != nil {
		return err
	}

	o := oracle.New()
	ct := o.Find(probe.Type)

	p.Printf("type:      %s\n", probe.Type)
	p.Printf("label:     %s\n", ct.TypeLabel(c))
	p.Printf("canonical: %s\n", ct.CanonicalName())
	p.Printf("converter: %s\n", o.FfiConverterName(probe.Type))
	p.Printf("default:   %s\n", ct.DefaultValue(c))

	if probe.Default != nil {
		p.Printf("literal:   %s\n", ct.Literal(*probe.Default, c))
	}

	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, ContinueOnMethod: true}
		cfg.Fdump(cmd.OutOrStdout(), probe.Type)
	}

	return nil
}

// buildProbe loads the optional interface file and adds a function whose single
// argument has the inspected type and literal, so the loader checks both.
func buildProbe(ifacePath, expr, literalText string, p *printer) (*ci.ComponentInterface, ci.FieldDecl, error) {
	f := ci.InterfaceFile{Namespace: "inspect"}

	if ifacePath != "" {
		data, err := os.ReadFile(ifacePath)
		if err != nil {
			return nil, ci.FieldDecl{}, fmt.Errorf("failed to read interface file %s: %w", ifacePath, err)
		}

		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, ci.FieldDecl{}, fmt.Errorf("%s: failed to parse interface YAML: %w", ifacePath, err)
		}
	}

	arg := ci.FieldYAML{Name: "value", Type: expr}

	if literalText != "" {
		var lit ci.LiteralYAML
		if err := yaml.Unmarshal([]byte(literalText), &lit); err != nil {
			return nil, ci.FieldDecl{}, fmt.Errorf("failed to parse literal %q: %w", literalText, err)
		}

		arg.Default = &lit
	}

	f.Functions = append(f.Functions, ci.FunctionYAML{Name: probeName, Args: []ci.FieldYAML{arg}})

	c, diags := ci.Build(&f)
	if diags.HasErrors() {
		printDiagnostics(p, "inspect", diags)
		return nil, ci.FieldDecl{}, diags.Error()
	}

	fn := c.Functions[len(c.Functions)-1]

	return c, fn.Args[0], nil
}
