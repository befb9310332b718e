package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/ben-mays/bakery/internal/protocol"
	"github.com/ben-mays/bakery/internal/rundiag"
	"github.com/ben-mays/bakery/internal/settings"
)

func main() {
	var s settings.Settings

	app := fx.New(
		fx.NopLogger,
		fx.Provide(settings.ProvideEnv, settings.ProvideConfig, settings.Load),
		fx.Populate(&s),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "bakery: failed to wire settings: %v\n", err)
		os.Exit(1)
	}

	run := rundiag.New(os.Stderr)
	err := protocol.RunWithOptions(os.Stdin, os.Stdout, protocol.Options{
		SeedRecipesPath: s.SeedRecipesPath,
		Lenient:         s.Lenient,
		Diagnostics:     os.Stderr,
	})
	run.Exit(err)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bakery: %v\n", err)
		os.Exit(1)
	}
}
