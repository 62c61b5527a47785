package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/keycore/internal/config/loader"
	"github.com/dshills/keycore/internal/input/keymap"
)

// keymapDocument is the config file fragment printed by "keycore keymap".
type keymapDocument struct {
	Keymaps []keymap.Entry `json:"keymaps" toml:"keymaps" yaml:"keymaps"`
}

func newKeymapCmd(o *rootOptions) *cobra.Command {
	var format string
	var builtin bool

	cmd := &cobra.Command{
		Use:   "keymap",
		Short: "Print the keymap the editor would use",
		Long: `Print the resolved keymap in priority order, in a form that can be
pasted into a config file. With --builtin the built-in table is printed
regardless of configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loader.ParseFormat(format)
			if err != nil {
				return err
			}

			table := keymap.DefaultTable()
			if !builtin {
				cfg, err := o.loadConfig(cmd)
				if err != nil {
					return err
				}
				if table, err = cfg.Table(); err != nil {
					return err
				}
			}

			data, err := loader.Encode(f, keymapDocument{Keymaps: table.Entries()})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(loader.FormatTOML), "Output format (toml, json, yaml)")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Print the built-in keymap")
	return cmd
}
