package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-catalog/internal/catalog"
	"type-catalog/internal/config"
)

func (a *app) describeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe alias, canonical name and bounds of all primitive types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if a.cfg.Format == config.FormatYAML {
				data, err := catalog.MarshalYAML(c)
				if err != nil {
					return err
				}

				_, err = out.Write(data)
				return err
			}

			_, err = fmt.Fprint(out, catalog.Format(c))
			return err
		},
	}

	cmd.Flags().StringVarP(&a.cfg.Format, "format", "f", a.cfg.Format,
		fmt.Sprintf("report format (%s or %s)", config.FormatText, config.FormatYAML))
	cmd.Flags().BoolVar(&a.cfg.CorrectedBoolean, "corrected-boolean", a.cfg.CorrectedBoolean,
		"tag boolean types as boolean instead of floating point")

	return cmd
}
