package dig

import (
	"errors"
	"math"

	"pixeldig/internal/core"
	"pixeldig/internal/physics"
	"pixeldig/internal/terrain"
)

// ErrMissingCollaborator is returned by NewMover when the terrain or body is nil.
var ErrMissingCollaborator = errors.New("dig: missing collaborator")

// Eroder destroys terrain around a world position. *terrain.Terrain
// satisfies it.
type Eroder interface {
	Erode(pos core.Vec2, radius float64) []terrain.DestroyedCell
}

// Tick reports what one FixedUpdate did.
type Tick struct {
	Destroyed  []terrain.DestroyedCell
	Resistance core.Vec2
}

// Mover steers a body towards a target while digging through terrain. It only
// adds forces and adjusts velocities; the caller integrates the body.
type Mover struct {
	cfg     Config
	terrain Eroder
	body    *physics.Body

	digging bool
	target  core.Vec2
}

// NewMover wires a mover to its terrain and body.
func NewMover(cfg Config, ter Eroder, body *physics.Body) (*Mover, error) {
	if ter == nil {
		return nil, errors.Join(ErrMissingCollaborator, errors.New("terrain is nil"))
	}
	if body == nil {
		return nil, errors.Join(ErrMissingCollaborator, errors.New("body is nil"))
	}
	return &Mover{cfg: cfg, terrain: ter, body: body}, nil
}

// SetDigging toggles the digging state.
func (m *Mover) SetDigging(on bool) { m.digging = on }

// Digging reports whether the mover is digging.
func (m *Mover) Digging() bool { return m.digging }

// SetTarget sets the world position the mover steers towards.
func (m *Mover) SetTarget(p core.Vec2) { m.target = p }

// Body returns the driven body.
func (m *Mover) Body() *physics.Body { return m.body }

// Config returns the mover tuning.
func (m *Mover) Config() Config { return m.cfg }

// FixedUpdate runs one physics tick of dt seconds.
func (m *Mover) FixedUpdate(dt float64) Tick {
	var tick Tick
	b := m.body
	if m.digging {
		dir := m.target.Sub(b.Position)
		b.AddForce(dir.Normalize().Scale(m.cfg.MoveForce))
		b.ClampSpeed(m.cfg.MaxSpeed)

		desired := math.Atan2(dir.Y, dir.X)*180/math.Pi + 90
		b.AddTorque(DeltaAngle(b.Rotation, desired) * m.cfg.TorqueForce)
		b.ClampAngularSpeed(m.cfg.MaxAngularSpeed)

		pos := b.Position
		tick.Destroyed = m.terrain.Erode(pos, m.cfg.ErosionRadius)
		tick.Resistance = ApplyFeedback(b, pos, tick.Destroyed, m.cfg.BaseForcePerPixel)
	} else {
		k := core.Clamp01(m.cfg.Damping * dt)
		b.Velocity = core.Lerp(b.Velocity, core.Vec2{}, k)
		b.AngularVelocity += (0 - b.AngularVelocity) * k
	}
	m.capY()
	return tick
}

func (m *Mover) capY() {
	if !m.cfg.CapY {
		return
	}
	b := m.body
	if b.Position.Y <= m.cfg.MaxY {
		return
	}
	b.Position.Y = m.cfg.MaxY
	if b.Velocity.Y > 0 {
		b.Velocity.Y = 0
	}
}

// DeltaAngle returns the shortest signed difference target-current in
// degrees, in (-180, 180].
func DeltaAngle(current, target float64) float64 {
	d := math.Mod(target-current, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}
