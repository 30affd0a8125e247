package gui

import (
	"image"
	"math/rand"
	"testing"

	"go-concentration/internal/config"
	"go-concentration/internal/game"

	"github.com/rs/zerolog"
)

func TestFrameInput_Events(t *testing.T) {
	in := frameInput{
		quit:     true,
		moved:    true,
		cursor:   image.Pt(10, 20),
		releases: []image.Point{image.Pt(1, 2), image.Pt(3, 4)},
	}

	got := in.events()
	want := []game.Event{
		game.Quit{},
		game.PointerMoved{X: 10, Y: 20},
		game.PointerReleased{X: 1, Y: 2},
		game.PointerReleased{X: 3, Y: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d: %#v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %#v, got %#v", i, want[i], got[i])
		}
	}
}

func TestFrameInput_Empty(t *testing.T) {
	if evs := (frameInput{}).events(); len(evs) != 0 {
		t.Errorf("Expected no events, got %#v", evs)
	}
}

func TestWindow_Layout(t *testing.T) {
	s, err := game.NewSession(config.Default(), rand.New(rand.NewSource(1)), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	w := newWindow(s, zerolog.Nop())

	gw, gh := w.Layout(1920, 1080)
	if gw != 800 || gh != 600 {
		t.Errorf("Expected logical size 800x600, got %dx%d", gw, gh)
	}
}
