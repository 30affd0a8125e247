package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go-concentration/internal/config"
	"go-concentration/internal/game"
	"go-concentration/internal/logging"
	"go-concentration/internal/ui/tui"

	"golang.org/x/term"
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

	// The terminal belongs to the game, so logs only go to LOG_FILE
	logger, closeLog, err := logging.Open(env.LogLevel, env.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("memory needs an interactive terminal (try memory-gui)")
	}

	sess, err := game.NewSession(config.Terminal(), env.Rand(), logger)
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	logger.Info().Int64("seed", env.Seed).Msg("board dealt")

	var p game.Presentation = tui.New(logger)
	if err := p.Run(sess); err != nil {
		logger.Error().Err(err).Msg("terminal UI failed")
		return err
	}
	return nil
}
