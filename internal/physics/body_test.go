package physics

import (
	"math"
	"testing"

	"pixeldig/internal/core"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestIntegrateSemiImplicit(t *testing.T) {
	b := NewBody(core.V(0, 0))
	b.Mass = 2
	b.AddForce(core.V(4, 0))
	b.AddForce(core.V(0, -2))
	if f := b.Force(); f != core.V(4, -2) {
		t.Fatalf("accumulated force %+v", f)
	}
	b.Integrate(0.5)

	// v = F/m*dt = (1, -0.5); p = v*dt.
	if !near(b.Velocity.X, 1) || !near(b.Velocity.Y, -0.5) {
		t.Fatalf("velocity %+v", b.Velocity)
	}
	if !near(b.Position.X, 0.5) || !near(b.Position.Y, -0.25) {
		t.Fatalf("position %+v", b.Position)
	}
	if b.Force() != (core.Vec2{}) || b.Torque() != 0 {
		t.Fatal("accumulators should be cleared after a step")
	}

	b.Integrate(0.5)
	if !near(b.Position.X, 1) {
		t.Fatalf("body should coast at constant velocity, got %+v", b.Position)
	}
}

func TestIntegrateTorque(t *testing.T) {
	b := NewBody(core.Vec2{})
	b.AddTorque(90)
	b.Integrate(1)
	if !near(b.AngularVelocity, 90) || !near(b.Rotation, 90) {
		t.Fatalf("angular state %f/%f", b.AngularVelocity, b.Rotation)
	}
	h := b.Heading()
	if !near(h.X, -1) || math.Abs(h.Y) > 1e-9 {
		t.Fatalf("heading after 90deg = %+v", h)
	}
}

func TestIntegrateIgnoresNonPositiveDt(t *testing.T) {
	b := NewBody(core.V(1, 1))
	b.AddForce(core.V(1, 0))
	b.Integrate(0)
	if b.Position != core.V(1, 1) || b.Force() != core.V(1, 0) {
		t.Fatal("zero dt must not advance the body")
	}
}

func TestClamps(t *testing.T) {
	b := NewBody(core.Vec2{})
	b.Velocity = core.V(3, 4)
	if b.ClampSpeed(10) {
		t.Fatal("speed under the cap should not clamp")
	}
	if !b.ClampSpeed(2.5) || !near(b.Velocity.Len(), 2.5) {
		t.Fatalf("clamped speed %f", b.Velocity.Len())
	}
	if !near(b.Velocity.X/b.Velocity.Y, 0.75) {
		t.Fatal("clamping must keep the direction")
	}

	b.AngularVelocity = -500
	if !b.ClampAngularSpeed(200) || b.AngularVelocity != -200 {
		t.Fatalf("angular velocity %f", b.AngularVelocity)
	}
}
