package config

import (
	"testing"

	"github.com/adrg/xdg"
)

func TestValidateDepthBounds(t *testing.T) {
	var tests = []struct {
		depth int
		ok    bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
	}
	for _, test := range tests {
		var cfg = DefaultConfig
		cfg.Depth = test.depth
		var err = cfg.Validate()
		if (err == nil) != test.ok {
			t.Errorf("depth %d: expected ok=%v, got %v", test.depth, test.ok, err)
		}
	}
}

func TestValidateMoveTime(t *testing.T) {
	var cfg = DefaultConfig
	cfg.MoveTimeMs = 0
	if cfg.Validate() == nil {
		t.Error("expected an error for a zero time budget")
	}
}

func TestSaveAndInitRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	var cfg = DefaultConfig
	cfg.Depth = 4
	cfg.BlackHuman = true
	cfg.MoveTimeMs = 1500
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	var loaded, err = InitConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != cfg {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", cfg, *loaded)
	}
}

func TestInitConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	var cfg, err = InitConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != DefaultConfig {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}
