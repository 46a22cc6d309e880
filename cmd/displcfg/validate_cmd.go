// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/ManuGH/displbe/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxParallelLoads = 4

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [FILE...]",
		Short: "Validate configuration files",
		Long: `Loads every FILE and reports whether it is usable by the display backend.
Without arguments the default configuration ($DISPL_BE_CONFIG or displ_be.cfg) is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = []string{config.DefaultConfigPath()}
			}

			stores := make([]*config.Store, len(files))
			errs := make([]error, len(files))

			var g errgroup.Group
			g.SetLimit(maxParallelLoads)
			for i, file := range files {
				i, file := i, file
				g.Go(func() error {
					stores[i], errs[i] = config.Load(file, config.WithStrict(strict))
					return nil
				})
			}
			_ = g.Wait()

			invalid := 0
			for i, file := range files {
				if errs[i] != nil {
					invalid++
					fmt.Fprintf(cmd.ErrOrStderr(), "Configuration error in %s:\n  %v\n", file, errs[i])
					continue
				}
				sum := stores[i].Summary()
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (mode=%s connectors=%d keyboards=%d pointers=%d touches=%d)\n",
					file, sum.Mode, sum.Connectors, sum.Keyboards, sum.Pointers, sum.Touches)
			}

			if invalid > 0 {
				return &exitError{code: exitFail}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown keys, bad device paths and dangling connector references")
	return cmd
}
