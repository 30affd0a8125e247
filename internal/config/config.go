// Package config holds the fixed startup constants for a session and the
// few ambient settings read from the environment.
package config

import (
	"time"

	"go-concentration/internal/board"
	"go-concentration/internal/layout"
)

// Config is fixed for the life of a session.
type Config struct {
	CanvasWidth   int
	CanvasHeight  int
	Rows          int
	Cols          int
	CellWidth     int
	CellHeight    int
	GapX          int
	GapY          int
	FPS           int
	MismatchPause time.Duration
	Palette       board.Palette
}

// Default is the windowed game: an 800x600 pixel canvas with a 4x5 grid of
// 50px tiles.
func Default() Config {
	return Config{
		CanvasWidth:   800,
		CanvasHeight:  600,
		Rows:          4,
		Cols:          5,
		CellWidth:     50,
		CellHeight:    50,
		GapX:          10,
		GapY:          10,
		FPS:           60,
		MismatchPause: 1000 * time.Millisecond,
		Palette:       board.DefaultPalette,
	}
}

// Terminal is the same game measured in character cells. Terminal cells are
// about twice as tall as wide, so tiles are 6x3. The canvas is one line short
// of 80x24 to leave room for the key help.
func Terminal() Config {
	c := Default()
	c.CanvasWidth = 80
	c.CanvasHeight = 23
	c.CellWidth = 6
	c.CellHeight = 3
	c.GapX = 2
	c.GapY = 1
	c.FPS = 30
	return c
}

// LayoutSpec returns the mapper constants for this configuration.
func (c Config) LayoutSpec() layout.Spec {
	return layout.Spec{
		CanvasW: c.CanvasWidth,
		CanvasH: c.CanvasHeight,
		Rows:    c.Rows,
		Cols:    c.Cols,
		CellW:   c.CellWidth,
		CellH:   c.CellHeight,
		GapX:    c.GapX,
		GapY:    c.GapY,
	}
}

// FrameInterval is the time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Validate returns a *board.ConfigError describing the first problem found.
func (c Config) Validate() error {
	if err := board.CheckDimensions(c.Rows, c.Cols, c.Palette); err != nil {
		return err
	}
	if _, err := layout.New(c.LayoutSpec()); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return &board.ConfigError{Field: "frame rate", Reason: "must be positive"}
	}
	if c.MismatchPause <= 0 {
		return &board.ConfigError{Field: "mismatch pause", Reason: "must be positive"}
	}
	return nil
}
