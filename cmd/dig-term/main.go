package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"pixeldig/internal/app"
	"pixeldig/internal/audio"
	"pixeldig/internal/core"
	"pixeldig/internal/dig"
	"pixeldig/internal/physics"
	"pixeldig/internal/render"
	"pixeldig/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

type pointer struct {
	col, row    int
	left, right bool
	seen        bool
}

type session struct {
	screen  tcell.Screen
	terrain *terrain.Terrain
	mover   *dig.Mover
	painter *render.TermPainter
	player  app.CrunchPlayer
	clock   *core.FixedStep

	cam       render.Camera
	pointer   pointer
	spawn     core.Vec2
	destroyed int
	err       error
}

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	s := &session{
		screen:  screen,
		terrain: ter,
		mover:   mover,
		painter: render.NewTermPainter(),
		player:  player,
		clock:   core.NewFixedStep(cfg.TPS),
	}
	s.resize()
	s.respawn()
	s.run()
}

func (s *session) resize() {
	cols, rows := s.screen.Size()
	s.cam = render.TermCamera(s.terrain.Bounds(), cols, rows-1)
}

func (s *session) respawn() {
	b := s.terrain.Bounds()
	s.spawn = core.V(b.Center().X, b.Max.Y)
	if dc := s.mover.Config(); dc.CapY && dc.MaxY < s.spawn.Y {
		s.spawn.Y = dc.MaxY
	}
	body := s.mover.Body()
	body.Position = s.spawn
	body.Velocity = core.Vec2{}
	body.AngularVelocity = 0
	body.Rotation = 0
	s.mover.SetDigging(false)
}

func (s *session) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !s.handle(ev) {
				return
			}
		case <-ticker.C:
			for n := s.clock.Steps(); n > 0; n-- {
				s.step(s.clock.Dt())
			}
			s.draw()
		}
	}
}

func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				s.reset(0)
			case 's':
				s.reset(time.Now().UnixNano())
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		btn := ev.Buttons()
		s.pointer = pointer{
			col:   col,
			row:   row,
			left:  btn&tcell.Button1 != 0,
			right: btn&tcell.Button2 != 0,
			seen:  true,
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.resize()
	}
	return true
}

func (s *session) reset(seed int64) {
	s.err = s.terrain.Reset(seed)
	if s.err != nil {
		return
	}
	s.respawn()
}

// statusLine renders the bottom row. A failed regeneration replaces the
// key help until the next successful reset.
func statusLine(seed int64, destroyed int, err error) string {
	if err != nil {
		return fmt.Sprintf(" seed %d  reset failed: %v", seed, err)
	}
	return fmt.Sprintf(" seed %d  destroyed %d  left: poke  right: dig  r/s: regenerate  q: quit",
		seed, destroyed)
}

func (s *session) step(dt float64) {
	if s.pointer.seen {
		world := render.TermToWorld(s.cam, s.pointer.col, s.pointer.row)
		if s.pointer.left {
			s.terrain.Poke(world)
		}
		s.mover.SetTarget(world)
	}
	s.mover.SetDigging(s.pointer.right)

	tick := s.mover.FixedUpdate(dt)
	s.mover.Body().Integrate(dt)
	s.destroyed += len(tick.Destroyed)
	if s.player != nil && len(tick.Destroyed) > 0 {
		s.player.PlayCrunch(tick.Destroyed)
	}
}

func (s *session) draw() {
	s.screen.Clear()
	s.painter.Draw(s.screen, s.terrain, s.cam)
	marker := 'o'
	if s.mover.Digging() {
		marker = '@'
	}
	s.painter.DrawMarker(s.screen, s.cam, s.mover.Body().Position, marker, tcell.ColorYellow)

	cols, rows := s.screen.Size()
	status := []rune(statusLine(s.terrain.Config().Seed, s.destroyed, s.err))
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		s.screen.SetContent(x, rows-1, r, nil, style)
	}
	s.screen.Show()
}
