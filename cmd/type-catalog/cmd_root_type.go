package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-catalog/internal/catalog"
)

func (a *app) rootTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Show the type every class of the registry derives from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}

			root, err := catalog.Root(reg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", root.DisplayName, root.CanonicalName)
			return err
		},
	}
}
