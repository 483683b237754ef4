//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"pixeldig/internal/core"
	"pixeldig/internal/dig"
	"pixeldig/internal/render"
	"pixeldig/internal/terrain"
	"pixeldig/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CrunchPlayer plays feedback for destroyed cells. It may be nil.
type CrunchPlayer interface {
	PlayCrunch(cells []terrain.DestroyedCell)
}

// Game adapts a terrain and its digger to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	terrain *terrain.Terrain
	mover   *dig.Mover
	player  CrunchPlayer

	painter *render.TerrainPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cam          render.Camera
	viewW, viewH int
	spawn        core.Vec2
	target       core.Vec2
	sky          color.RGBA
}

// New constructs a Game. The terrain and mover are required.
func New(cfg *Config, ter *terrain.Terrain, mover *dig.Mover, player CrunchPlayer) (*Game, error) {
	if ter == nil {
		return nil, errors.New("app: terrain is required")
	}
	if mover == nil {
		return nil, errors.New("app: mover is required")
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := ter.Size()
	g := &Game{
		cfg:     cfg,
		terrain: ter,
		mover:   mover,
		player:  player,
		painter: render.NewTerrainPainter(),
		overlay: ui.NewOverlay(ter),
		hud:     ui.NewHUD("pixeldig", cfg.HUDWidth, ter, mover.Config()),
		viewW:   size.W * scale,
		viewH:   size.H * scale,
		sky:     color.RGBA{R: 12, G: 14, B: 22, A: 255},
	}
	g.cam = render.FitCamera(ter.Bounds(), g.viewW, g.viewH)
	b := ter.Bounds()
	g.spawn = core.V(b.Center().X, b.Max.Y)
	if dc := mover.Config(); dc.CapY {
		g.spawn.Y = math.Min(g.spawn.Y, dc.MaxY)
	}
	g.placeBody()
	return g, nil
}

func (g *Game) placeBody() {
	body := g.mover.Body()
	body.Position = g.spawn
	body.Velocity = core.Vec2{}
	body.AngularVelocity = 0
	body.Rotation = 0
}

// Reset regenerates the terrain with seed (zero keeps the current one) and
// returns the digger to its spawn point.
func (g *Game) Reset(seed int64) error {
	if err := g.terrain.Reset(seed); err != nil {
		return err
	}
	g.mover.SetDigging(false)
	g.placeBody()
	return nil
}

// cursorWorld returns the world point under the mouse and whether the cursor
// is over the terrain view.
func (g *Game) cursorWorld() (core.Vec2, bool) {
	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < g.viewW && my < g.viewH
	return g.cam.ScreenToWorld(float64(mx)+0.5, float64(my)+0.5), inside
}

// Update runs one fixed physics tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(0); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	g.overlay.Update()

	world, inside := g.cursorWorld()
	if inside && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.terrain.Poke(world)
	}
	g.mover.SetDigging(inside && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	g.mover.SetTarget(world)
	g.target = world

	dt := g.cfg.Dt()
	tick := g.mover.FixedUpdate(dt)
	g.mover.Body().Integrate(dt)
	if g.player != nil && len(tick.Destroyed) > 0 {
		g.player.PlayCrunch(tick.Destroyed)
	}

	g.hud.SetStatus(fmt.Sprintf("seed %d  destroyed %d", g.terrain.Config().Seed, len(tick.Destroyed)))
	g.hud.Update()
	return nil
}

// Draw renders the terrain, overlays, digger and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.sky)
	g.painter.Draw(screen, g.terrain, g.cam)
	g.overlay.Draw(screen, g.cam)
	ui.DrawDigger(screen, g.cam, g.mover.Body(), g.mover.Config().ErosionRadius, g.mover.Digging(), g.target)
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hud.Width(), g.viewH
}
