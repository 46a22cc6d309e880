// SPDX-License-Identifier: MIT

package main

import (
	"github.com/ManuGH/displbe/internal/config"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var file, format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.ParseFormat(format)
			if err != nil {
				return usage(err)
			}
			if out == config.FormatAuto {
				out = config.FormatYAML
			}

			store, err := config.Load(file)
			if err != nil {
				return failed(err)
			}

			data, err := config.Encode(store.Document(), out)
			if err != nil {
				return failed(err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "configuration file (default $DISPL_BE_CONFIG or displ_be.cfg)")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml, toml or json")
	return cmd
}
