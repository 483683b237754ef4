//go:build !ebiten

package audio

import (
	"errors"

	"pixeldig/internal/terrain"
)

// Player is a silent placeholder for headless builds.
type Player struct{}

// NewPlayer returns a silent player.
func NewPlayer() *Player { return &Player{} }

// Init always fails in the headless build.
func (p *Player) Init() error { return errors.New("audio: speaker not available in this build") }

// PlayCrunch is a no-op in the headless build.
func (p *Player) PlayCrunch([]terrain.DestroyedCell) {}

// Close is a no-op in the headless build.
func (p *Player) Close() {}
