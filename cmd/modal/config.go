package main

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/modal/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Long: `Print the settings after the config file and MODAL_* environment
overrides are applied, in a form that can be saved as a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", displayPath(opts.resolvedPath))
			return writeConfig(cmd.OutOrStdout(), opts.cfg, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format (toml or yaml)")
	return cmd
}

func writeConfig(w io.Writer, cfg config.Config, format string) error {
	switch format {
	case "toml":
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(cfg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (must be toml or yaml)", format)
}
