// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/ManuGH/displbe/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		output string
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return usage(err)
			}
			if f == config.FormatJSON {
				return usage(fmt.Errorf("init writes yaml or toml"))
			}

			if err := config.WriteSample(output, f, force); err != nil {
				return failed(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultConfigName, "file to write")
	cmd.Flags().StringVar(&format, "format", "", "yaml or toml (default: by file extension)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
