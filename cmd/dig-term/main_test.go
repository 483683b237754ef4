package main

import (
	"errors"
	"strings"
	"testing"

	"pixeldig/internal/core"
	"pixeldig/internal/dig"
	"pixeldig/internal/physics"
	"pixeldig/internal/terrain"
)

func TestStatusLineReportsResetError(t *testing.T) {
	line := statusLine(42, 7, errors.New("boom"))
	if !strings.Contains(line, "reset failed: boom") || !strings.Contains(line, "seed 42") {
		t.Fatalf("unexpected status %q", line)
	}
	line = statusLine(42, 7, nil)
	if !strings.Contains(line, "destroyed 7") || strings.Contains(line, "failed") {
		t.Fatalf("unexpected status %q", line)
	}
}

func TestSessionResetClearsErrorAndRespawns(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Width, cfg.Height = 32, 16
	cfg.PixelsPerUnit = 16
	ter, err := terrain.New(cfg)
	if err != nil {
		t.Fatalf("new terrain: %v", err)
	}
	mover, err := dig.NewMover(dig.DefaultConfig(), ter, physics.NewBody(core.V(5, -5)))
	if err != nil {
		t.Fatalf("new mover: %v", err)
	}
	s := &session{terrain: ter, mover: mover, err: errors.New("stale")}

	s.reset(99)
	if s.err != nil {
		t.Fatalf("expected error cleared after reset, got %v", s.err)
	}
	if ter.Config().Seed != 99 {
		t.Fatalf("expected seed 99, got %d", ter.Config().Seed)
	}
	if got := mover.Body().Position; got != s.spawn {
		t.Fatalf("expected body at spawn %+v, got %+v", s.spawn, got)
	}
}
