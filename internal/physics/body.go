package physics

import (
	"math"

	"pixeldig/internal/core"
)

// Body is a minimal 2D rigid body. Rotation and AngularVelocity are in
// degrees so they line up with the mover's steering constants.
type Body struct {
	Position        core.Vec2
	Velocity        core.Vec2
	Rotation        float64
	AngularVelocity float64

	Mass    float64
	Inertia float64

	force  core.Vec2
	torque float64
}

// NewBody returns a body at pos with unit mass and inertia.
func NewBody(pos core.Vec2) *Body {
	return &Body{Position: pos, Mass: 1, Inertia: 1}
}

// AddForce accumulates f for the next Integrate call.
func (b *Body) AddForce(f core.Vec2) {
	b.force = b.force.Add(f)
}

// AddTorque accumulates torque for the next Integrate call.
func (b *Body) AddTorque(t float64) {
	b.torque += t
}

// Force returns the force accumulated since the last step.
func (b *Body) Force() core.Vec2 { return b.force }

// Torque returns the torque accumulated since the last step.
func (b *Body) Torque() float64 { return b.torque }

// Integrate advances the body by dt seconds using semi-implicit Euler:
// v += F/m*dt; p += v*dt. Accumulators are cleared afterwards.
func (b *Body) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	inertia := b.Inertia
	if inertia <= 0 {
		inertia = 1
	}
	b.Velocity = b.Velocity.Add(b.force.Scale(dt / mass))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.AngularVelocity += b.torque / inertia * dt
	b.Rotation = math.Mod(b.Rotation+b.AngularVelocity*dt, 360)
	b.force = core.Vec2{}
	b.torque = 0
}

// ClampSpeed limits the linear speed to max. Returns true if velocity was
// clamped.
func (b *Body) ClampSpeed(max float64) bool {
	if b.Velocity.Len() <= max {
		return false
	}
	b.Velocity = b.Velocity.ClampLen(max)
	return true
}

// ClampAngularSpeed limits the magnitude of the angular velocity to max.
func (b *Body) ClampAngularSpeed(max float64) bool {
	if math.Abs(b.AngularVelocity) <= max {
		return false
	}
	b.AngularVelocity = math.Copysign(max, b.AngularVelocity)
	return true
}

// Heading returns the unit vector the body's local up axis points along.
func (b *Body) Heading() core.Vec2 {
	return core.V(0, 1).Rotate(b.Rotation * math.Pi / 180)
}
