// Package main provides the CLI entrypoint for type-catalog.
//
// type-catalog lists the primitive types of a type registry:
//   - list: the display aliases of the recognised primitive types
//   - describe: alias, canonical name and bounds of every primitive type
//   - root: the type every class of the registry derives from
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"type-catalog/internal/config"
)

const appName = "type-catalog"

func main() {
	cfg, err := config.FromEnv(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: can't create logger:", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = newApp(cfg, logger).rootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}
