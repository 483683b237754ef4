package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("dig", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-scale", "2", "-tps", "100", "-seed", "7", "-audio=false",
		"-set", "w=64", "-set", "noise=opensimplex", "-set", "move_force=20",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 2 || cfg.TPS != 100 || cfg.Audio || cfg.Dt() != 0.01 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	tc, err := cfg.TerrainConfig()
	if err != nil {
		t.Fatal(err)
	}
	if tc.Seed != 7 || tc.Width != 64 || tc.Base != "opensimplex" {
		t.Fatalf("terrain config %+v", tc)
	}
	dc, err := cfg.DigConfig()
	if err != nil {
		t.Fatal(err)
	}
	if dc.MoveForce != 20 {
		t.Fatalf("dig config %+v", dc)
	}
}

func TestOverrideSeedWins(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 3
	cfg.Overrides = KVList{"seed=11"}
	tc, err := cfg.TerrainConfig()
	if err != nil {
		t.Fatal(err)
	}
	if tc.Seed != 11 {
		t.Fatalf("seed %d, want 11", tc.Seed)
	}
}

func TestKVListRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"novalue", "=3"} {
		l := KVList{bad}
		if _, err := l.Map(); err == nil {
			t.Fatalf("%q should be rejected", bad)
		}
	}
	l := KVList{"a=1", "a=2", " b = x=y "}
	m, err := l.Map()
	if err != nil {
		t.Fatal(err)
	}
	if m["a"] != "2" || m["b"] != "x=y" {
		t.Fatalf("parsed %v", m)
	}
	if l.String() != "a=1,a=2, b = x=y " {
		t.Fatalf("String() = %q", l.String())
	}
}
