//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pixeldig/internal/app"
	"pixeldig/internal/audio"
	"pixeldig/internal/dig"
	"pixeldig/internal/physics"
	"pixeldig/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	tc, err := cfg.TerrainConfig()
	if err != nil {
		log.Fatalf("terrain config: %v", err)
	}
	dc, err := cfg.DigConfig()
	if err != nil {
		log.Fatalf("digger config: %v", err)
	}

	ter, err := terrain.New(tc)
	if err != nil {
		log.Fatalf("generate terrain: %v", err)
	}
	mover, err := dig.NewMover(dc, ter, physics.NewBody(tc.Transform.Position))
	if err != nil {
		log.Fatal(err)
	}

	var player app.CrunchPlayer
	if cfg.Audio {
		p := audio.NewPlayer()
		if err := p.Init(); err != nil {
			log.Printf("audio unavailable: %v", err)
		} else {
			defer p.Close()
			player = p
		}
	}

	game, err := app.New(cfg, ter, mover, player)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("pixeldig")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
