package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WindowCapacity != DefaultWindowCapacity {
		t.Fatalf("expected default WindowCapacity=%d, got %d", DefaultWindowCapacity, cfg.WindowCapacity)
	}
	if cfg.EMAPeriod != DefaultEMAPeriod {
		t.Fatalf("expected default EMAPeriod=%d, got %d", DefaultEMAPeriod, cfg.EMAPeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "negative capacity",
			modify:  func(c *Config) { c.WindowCapacity = -1 },
			wantErr: true,
		},
		{
			name:    "zero capacity is clamped later",
			modify:  func(c *Config) { c.WindowCapacity = 0 },
			wantErr: false,
		},
		{
			name: "zero capacity in strict mode",
			modify: func(c *Config) {
				c.WindowCapacity = 0
				c.StrictCapacity = true
			},
			wantErr: true,
		},
		{
			name:    "capacity above limit",
			modify:  func(c *Config) { c.WindowCapacity = c.MaxCapacity + 1 },
			wantErr: true,
		},
		{
			name:    "zero max capacity",
			modify:  func(c *Config) { c.MaxCapacity = 0 },
			wantErr: true,
		},
		{
			name:    "divide-by-zero EMA period",
			modify:  func(c *Config) { c.EMAPeriod = -1 },
			wantErr: true,
		},
		{
			name:    "zero EMA period",
			modify:  func(c *Config) { c.EMAPeriod = 0 },
			wantErr: false,
		},
		{
			name:    "no history",
			modify:  func(c *Config) { c.HistoryLength = 0 },
			wantErr: true,
		},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.modify(&cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}
