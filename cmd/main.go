package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-exercises/internal/cli"
	"github.com/saeidalz13/battleship-exercises/internal/config"
)

func main() {
	dotEnvLoaded, err := config.LoadDotEnv(".env")
	if err != nil {
		panic(err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(os.Stdout, os.Stderr, cfg)
	app.Logger.Debug("config loaded", "stage", cfg.Stage, "dotenv", dotEnvLoaded, "scenario", cfg.ScenarioFile)

	if err := app.RootCommand().ExecuteContext(ctx); err != nil {
		stop()

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			app.Logger.Error(exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCodeFailure)
	}
}
