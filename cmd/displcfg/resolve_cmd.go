// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/ManuGH/displbe/internal/config"
	"github.com/spf13/cobra"
)

const kindConnector = "connector"

func newResolveCmd() *cobra.Command {
	var (
		file    string
		domName string
		devID   uint16
		kind    string
		idx     int
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the connector or input device of a guest device",
		Long: `Prints the connector name (--kind connector) or the input device id
(--kind keyboard|pointer|touch) assigned to device --dev of guest --dom.
Exits 1 when nothing is assigned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("dev") {
				return usage(fmt.Errorf("--dev is required"))
			}

			store, err := config.Load(file)
			if err != nil {
				return failed(err)
			}

			var (
				id int
				ok bool
			)
			switch config.InputKind(kind) {
			case kindConnector:
				name, err := store.DomConnectorName(domName, devID, idx)
				if err != nil {
					return failed(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			case config.KindKeyboard:
				id, ok = store.DomKeyboardID(domName, devID)
			case config.KindPointer:
				id, ok = store.DomPointerID(domName, devID)
			case config.KindTouch:
				id, ok = store.DomTouchID(domName, devID)
			default:
				return usage(fmt.Errorf("unsupported kind %q (want connector, keyboard, pointer or touch)", kind))
			}

			if !ok {
				return failed(fmt.Errorf("no %s assigned to dom %q dev %d", kind, domName, devID))
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "configuration file (default $DISPL_BE_CONFIG or displ_be.cfg)")
	cmd.Flags().StringVar(&domName, "dom", "", "guest domain name")
	cmd.Flags().Uint16Var(&devID, "dev", 0, "guest device id")
	cmd.Flags().StringVar(&kind, "kind", kindConnector, "connector, keyboard, pointer or touch")
	cmd.Flags().IntVar(&idx, "idx", 0, "monitor index (connector only)")
	return cmd
}
