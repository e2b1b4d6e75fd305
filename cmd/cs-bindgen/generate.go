package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/config"
	"cs-bindgen/internal/gen"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [flags] <interface.yaml>...",
		Short: "Generate C# bindings for interface files",
		Long: `Generate renders one C# file per interface file. Settings come from --config,
or from the nearest bindgen.toml above the first interface file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().String("config", "", "path to bindgen.toml")
	cmd.Flags().StringP("out", "o", ".", "output directory")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := printerFor(cmd)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	cfg, err := loadConfig(configPath, filepath.Dir(args[0]))
	if err != nil {
		return err
	}

	interfaces := make([]*ci.ComponentInterface, 0, len(args))
	for _, path := range args {
		c, err := ci.LoadFile(path)
		if err != nil {
			return err
		}

		p.Progressf("loaded %s (namespace %s)", path, c.Namespace)
		interfaces = append(interfaces, c)
	}

	files, err := gen.NewGenerator(cfg).GenerateAll(cmd.Context(), interfaces)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files, outDir)
	for _, path := range written {
		p.Successf("wrote %s", path)
	}

	if err != nil {
		return err
	}

	if unchanged := len(files) - len(written); unchanged > 0 {
		p.Progressf("%d file(s) up to date", unchanged)
	}

	return nil
}

func loadConfig(path, searchDir string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	return config.LoadOrDefault(searchDir)
}
