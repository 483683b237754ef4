package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"pixeldig/internal/dig"
	"pixeldig/internal/terrain"
)

// KVList collects repeatable key=value flag values.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits every entry at its first '='. Later entries win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q (want key=value)", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// Config represents the command-line parameters for the frontends.
type Config struct {
	Scale     int
	TPS       int
	Seed      int64
	Audio     bool
	HUDWidth  int
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, TPS: 50, Seed: terrain.DefaultConfig().Seed, Audio: true, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per terrain cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "physics ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain seed")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play dig sounds")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "terrain or digger override in key=value form (repeatable)")
}

// values merges the seed flag with the overrides; -set seed=N wins.
func (c *Config) values() (map[string]string, error) {
	m, err := c.Overrides.Map()
	if err != nil {
		return nil, err
	}
	if _, ok := m["seed"]; !ok {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m, nil
}

// TerrainConfig builds the terrain configuration from the flags.
func (c *Config) TerrainConfig() (terrain.Config, error) {
	m, err := c.values()
	if err != nil {
		return terrain.Config{}, err
	}
	cfg := terrain.FromMap(m)
	return cfg, cfg.Validate()
}

// DigConfig builds the digger configuration from the flags.
func (c *Config) DigConfig() (dig.Config, error) {
	m, err := c.values()
	if err != nil {
		return dig.Config{}, err
	}
	return dig.FromMap(m), nil
}

// Dt returns the fixed physics step in seconds.
func (c *Config) Dt() float64 {
	if c.TPS <= 0 {
		return 1.0 / 50
	}
	return 1 / float64(c.TPS)
}
