package main

import (
	"fmt"
	"os"

	"go-concentration/internal/config"
	"go-concentration/internal/game"
	"go-concentration/internal/logging"
	"go-concentration/internal/ui/gui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	logger := logging.Console(env.LogLevel)
	if env.LogFile != "" {
		l, closeLog, err := logging.Open(env.LogLevel, env.LogFile, nil)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = l
	}

	sess, err := game.NewSession(config.Default(), env.Rand(), logger)
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	logger.Info().Int64("seed", env.Seed).Msg("board dealt")

	var p game.Presentation = gui.New("Memory", logger)
	if err := p.Run(sess); err != nil {
		logger.Error().Err(err).Msg("window failed")
		return err
	}
	return nil
}
