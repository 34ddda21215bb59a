package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"type-catalog/internal/catalog"
	"type-catalog/internal/config"
	"type-catalog/internal/diagnostic"
	"type-catalog/internal/registry"
)

// app carries the state shared by all commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newApp(cfg *config.Config, logger *zap.Logger) *app {
	return &app{cfg: cfg, logger: logger}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "List the primitive types of a type registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Validate()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfg.Registry, "registry", "r", a.cfg.Registry,
		fmt.Sprintf("type registry to query (%s or %s)", config.RegistryCLR, config.RegistryGo))

	root.AddCommand(a.listCommand(), a.describeCommand(), a.rootTypeCommand())

	return root
}

// registry opens the configured registry.
func (a *app) registry(ctx context.Context) (registry.Registry, error) {
	switch a.cfg.Registry {
	case config.RegistryGo:
		a.logger.Debug("loading Go registry")
		return registry.LoadGo(ctx)
	default:
		return registry.NewCLR(), nil
	}
}

// build opens the configured registry and builds its catalog, logging what was skipped.
func (a *app) build(ctx context.Context) (*catalog.Catalog, error) {
	reg, err := a.registry(ctx)
	if err != nil {
		return nil, err
	}

	var diags diagnostic.Diagnostics

	opts := []catalog.Option{catalog.WithDiagnostics(&diags)}
	if a.cfg.CorrectedBoolean {
		opts = append(opts, catalog.WithCorrectedBoolean())
	}

	c, err := catalog.Build(reg, opts...)

	for _, d := range diags.Infos {
		a.logger.Debug(d.Message, zap.String("code", d.Code), zap.String("type", d.TypeName))
	}
	for _, d := range diags.Warnings {
		a.logger.Warn(d.Message, zap.String("code", d.Code), zap.String("type", d.TypeName))
	}

	if err != nil {
		return nil, err
	}

	a.logger.Debug("built catalog", zap.String("registry", a.cfg.Registry), zap.Int("types", c.Len()))

	return c, nil
}
