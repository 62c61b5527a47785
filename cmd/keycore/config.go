package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keycore/internal/config"
	"github.com/dshills/keycore/internal/config/loader"
	"github.com/dshills/keycore/internal/input/keymap"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, KEYCORE_*
environment variables and flags have been merged. With --output the result
is written to a file, which can then be used as a config file. The format
defaults to the output file's extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && !cmd.Flags().Changed("format") {
				var err error
				if format, err = formatName(output); err != nil {
					return err
				}
			}
			f, err := loader.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := o.loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(cfg.Keymaps) == 0 {
				cfg = withBuiltinKeymap(cfg)
			}

			data, err := cfg.Encode(f)
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("writing configuration: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(loader.FormatTOML), "Output format (toml, json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the configuration to this file")
	return cmd
}

func formatName(path string) (string, error) {
	f, err := loader.FormatFromPath(path)
	return string(f), err
}

// withBuiltinKeymap returns a copy of cfg listing the built-in bindings, so
// the printed configuration is complete.
func withBuiltinKeymap(cfg *config.Config) *config.Config {
	out := *cfg
	out.Keymaps = keymap.DefaultTable().Entries()
	out.Editor.ExtendDefaults = false
	return &out
}
