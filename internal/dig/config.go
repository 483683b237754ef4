package dig

import (
	"strconv"

	"pixeldig/internal/core"
)

// Config holds the digger's movement and feedback tunables.
type Config struct {
	// ErosionRadius is the world-space radius eroded every digging tick.
	ErosionRadius float64
	// BaseForcePerPixel scales the resistance of each destroyed cell.
	BaseForcePerPixel float64

	MoveForce       float64
	MaxSpeed        float64
	TorqueForce     float64
	MaxAngularSpeed float64 // degrees per second

	// Damping is the per-second rate at which an idle digger slows down.
	Damping float64

	CapY bool
	MaxY float64
}

// DefaultConfig returns the stock digger tuning.
func DefaultConfig() Config {
	return Config{
		ErosionRadius:     0.5,
		BaseForcePerPixel: 0.01,
		MoveForce:         10,
		MaxSpeed:          5,
		TorqueForce:       10,
		MaxAngularSpeed:   200,
		Damping:           5,
		CapY:              true,
		MaxY:              1.33,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	float := func(key string, dst *float64, min float64) {
		v, ok := cfg[key]
		if !ok {
			return
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min {
			*dst = parsed
		}
	}
	float("erosion_radius", &c.ErosionRadius, 0)
	float("base_force", &c.BaseForcePerPixel, 0)
	float("move_force", &c.MoveForce, 0)
	float("max_speed", &c.MaxSpeed, 0)
	float("torque_force", &c.TorqueForce, 0)
	float("max_angular_speed", &c.MaxAngularSpeed, 0)
	float("damping", &c.Damping, 0)
	if v, ok := cfg["max_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MaxY = parsed
		}
	}
	if v, ok := cfg["cap_y"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.CapY = parsed
		}
	}
	return c
}

// Parameters exposes the digger tuning for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Digger",
		Params: []core.Parameter{
			core.FloatParam("erosion_radius", "Erosion radius", c.ErosionRadius),
			core.FloatParam("base_force", "Force per cell", c.BaseForcePerPixel),
			core.FloatParam("move_force", "Move force", c.MoveForce),
			core.FloatParam("max_speed", "Max speed", c.MaxSpeed),
			core.FloatParam("torque_force", "Torque", c.TorqueForce),
			core.FloatParam("max_angular_speed", "Max angular speed", c.MaxAngularSpeed),
			core.FloatParam("damping", "Damping", c.Damping),
			core.BoolParam("cap_y", "Cap height", c.CapY),
			core.FloatParam("max_y", "Max height", c.MaxY),
		},
	}}}
}
