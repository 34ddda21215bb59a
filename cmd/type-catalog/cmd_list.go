package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-catalog/internal/catalog"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the aliases of all primitive types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), catalog.Aliases(c))
			return err
		},
	}
}
