package dig

import (
	"errors"
	"math"
	"testing"

	"pixeldig/internal/core"
	"pixeldig/internal/physics"
	"pixeldig/internal/terrain"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

type stubEroder struct {
	calls  int
	pos    core.Vec2
	radius float64
	cells  []terrain.DestroyedCell
}

func (s *stubEroder) Erode(pos core.Vec2, radius float64) []terrain.DestroyedCell {
	s.calls++
	s.pos, s.radius = pos, radius
	return s.cells
}

func TestResistanceForceIndependentOfDistance(t *testing.T) {
	actor := core.V(1, 1)
	nearCell := terrain.DestroyedCell{Position: core.V(1, 0.9), Hardness: 0.5}
	farCell := terrain.DestroyedCell{Position: core.V(1, -4), Hardness: 0.5}

	f1, ok1 := ResistanceForce(actor, nearCell, 0.01)
	f2, ok2 := ResistanceForce(actor, farCell, 0.01)
	if !ok1 || !ok2 {
		t.Fatal("both cells should contribute")
	}
	if !near(f1.Len(), 0.015, 1e-12) || !near(f2.Len(), 0.015, 1e-12) {
		t.Fatalf("magnitudes %f and %f, want 0.015", f1.Len(), f2.Len())
	}
	if f1.Y <= 0 || !near(f1.X, 0, 1e-12) {
		t.Fatalf("force should point from cell to actor, got %+v", f1)
	}

	hard, _ := ResistanceForce(actor, terrain.DestroyedCell{Position: core.V(0, 1), Hardness: 1}, 0.01)
	if !(hard.Len() > f1.Len()) {
		t.Fatal("harder cells should push harder")
	}
}

func TestApplyFeedbackSkipsCoincidentCells(t *testing.T) {
	actor := core.V(0, 0)
	cells := []terrain.DestroyedCell{
		{Position: actor, Hardness: 1},
		{Position: core.V(-1, 0), Hardness: 0},
		{Position: core.V(1, 0), Hardness: 0},
		{Position: core.V(0, -2), Hardness: 1},
	}
	body := physics.NewBody(actor)
	total := ApplyFeedback(body, actor, cells, 0.01)

	if !near(total.X, 0, 1e-12) || !near(total.Y, 0.02, 1e-12) {
		t.Fatalf("total %+v, want (0, 0.02)", total)
	}
	if body.Force() != total {
		t.Fatalf("body received %+v, returned %+v", body.Force(), total)
	}
}

func TestNewMoverRequiresCollaborators(t *testing.T) {
	if _, err := NewMover(DefaultConfig(), nil, physics.NewBody(core.Vec2{})); !errors.Is(err, ErrMissingCollaborator) {
		t.Fatalf("expected ErrMissingCollaborator, got %v", err)
	}
	if _, err := NewMover(DefaultConfig(), &stubEroder{}, nil); !errors.Is(err, ErrMissingCollaborator) {
		t.Fatalf("expected ErrMissingCollaborator, got %v", err)
	}
}

func TestMoverDigsTowardsTarget(t *testing.T) {
	er := &stubEroder{cells: []terrain.DestroyedCell{{Position: core.V(0, -0.5), Hardness: 0}}}
	body := physics.NewBody(core.V(0, 0))
	m, err := NewMover(DefaultConfig(), er, body)
	if err != nil {
		t.Fatal(err)
	}
	m.SetTarget(core.V(3, 0))
	m.SetDigging(true)

	tick := m.FixedUpdate(0.02)
	if er.calls != 1 || er.radius != 0.5 || er.pos != core.V(0, 0) {
		t.Fatalf("unexpected erosion call %+v", er)
	}
	if len(tick.Destroyed) != 1 || !near(tick.Resistance.Y, 0.01, 1e-12) {
		t.Fatalf("unexpected tick %+v", tick)
	}
	f := body.Force()
	if !near(f.X, 10, 1e-12) || !near(f.Y, 0.01, 1e-12) {
		t.Fatalf("force %+v, want move force plus resistance", f)
	}
	// Facing right means a desired rotation of 90 degrees from 0.
	if !near(body.Torque(), 900, 1e-9) {
		t.Fatalf("torque %f", body.Torque())
	}
}

func TestMoverClampsSpeeds(t *testing.T) {
	body := physics.NewBody(core.V(0, 0))
	body.Velocity = core.V(0, -50)
	body.AngularVelocity = 1000
	m, _ := NewMover(DefaultConfig(), &stubEroder{}, body)
	m.SetTarget(core.V(0, -10))
	m.SetDigging(true)
	m.FixedUpdate(0.02)

	if !near(body.Velocity.Len(), 5, 1e-9) {
		t.Fatalf("speed %f, want 5", body.Velocity.Len())
	}
	if body.AngularVelocity != 200 {
		t.Fatalf("angular velocity %f, want 200", body.AngularVelocity)
	}
}

func TestMoverDampsWhenIdle(t *testing.T) {
	body := physics.NewBody(core.V(0, -1))
	body.Velocity = core.V(2, -4)
	body.AngularVelocity = 100
	er := &stubEroder{}
	m, _ := NewMover(DefaultConfig(), er, body)

	m.FixedUpdate(0.1)
	if er.calls != 0 {
		t.Fatal("idle mover must not erode")
	}
	// factor 5*0.1 halves both velocities.
	if body.Velocity != core.V(1, -2) || body.AngularVelocity != 50 {
		t.Fatalf("damped to %+v / %f", body.Velocity, body.AngularVelocity)
	}

	m.FixedUpdate(1)
	if body.Velocity != (core.Vec2{}) || body.AngularVelocity != 0 {
		t.Fatal("a damping factor above one should stop the body")
	}
}

func TestMoverCapsHeight(t *testing.T) {
	body := physics.NewBody(core.V(0, 2))
	body.Velocity = core.V(1, 3)
	m, _ := NewMover(DefaultConfig(), &stubEroder{}, body)
	m.FixedUpdate(0)
	if body.Position.Y != 1.33 || body.Velocity.Y != 0 || body.Velocity.X != 1 {
		t.Fatalf("capped state %+v %+v", body.Position, body.Velocity)
	}

	cfg := DefaultConfig()
	cfg.CapY = false
	free := physics.NewBody(core.V(0, 2))
	m, _ = NewMover(cfg, &stubEroder{}, free)
	m.FixedUpdate(0)
	if free.Position.Y != 2 {
		t.Fatal("height cap disabled but position moved")
	}
}

func TestDeltaAngle(t *testing.T) {
	cases := [][3]float64{
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{0, -180, 180},
		{-720, 45, 45},
	}
	for _, c := range cases {
		if got := DeltaAngle(c[0], c[1]); !near(got, c[2], 1e-9) {
			t.Fatalf("DeltaAngle(%v, %v) = %v, want %v", c[0], c[1], got, c[2])
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"erosion_radius": "0.75",
		"max_speed":      "-1",
		"cap_y":          "false",
		"max_y":          "-2",
	})
	if cfg.ErosionRadius != 0.75 || cfg.MaxSpeed != 5 || cfg.CapY || cfg.MaxY != -2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if p, ok := cfg.Parameters().Lookup("erosion_radius"); !ok || p.Value != "0.75" {
		t.Fatalf("parameter lookup %+v %v", p, ok)
	}
}
