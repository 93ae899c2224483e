package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
base_unit: 500
default_odds: -105
default_stakes:
  nba: 30
extra_aliases:
  the squad: Buffalo Bills
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseUnit != 500 {
		t.Errorf("BaseUnit = %v, want 500", cfg.BaseUnit)
	}
	if cfg.DefaultOdds != -105 {
		t.Errorf("DefaultOdds = %d, want -105", cfg.DefaultOdds)
	}
	// Untouched keys keep their defaults.
	if cfg.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want default kept", cfg.Timezone)
	}
	if got := cfg.DefaultStake(picks.LeagueNBA); got.String() != "30" {
		t.Errorf("DefaultStake(nba) = %s, want 30", got)
	}
	if cfg.ExtraAliases["the squad"] != "Buffalo Bills" {
		t.Errorf("ExtraAliases = %v", cfg.ExtraAliases)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.BaseUnit != 1000 || cfg.DefaultOdds != -110 {
		t.Errorf("got %v/%d, want default 1000/-110", cfg.BaseUnit, cfg.DefaultOdds)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero base unit", "base_unit: 0"},
		{"zero odds", "default_odds: 0"},
		{"bad timezone", "timezone: Mars/Olympus"},
		{"negative threshold", "match_acceptance_threshold: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load accepted %q", tt.yaml)
			}
		})
	}
}

func TestDefaultStakeUnknownLeague(t *testing.T) {
	cfg := Default()
	// Unknown leagues get the smallest configured stake, never zero.
	got := cfg.DefaultStake(picks.LeagueUnknown)
	if got.String() != "20" {
		t.Errorf("DefaultStake(unknown) = %s, want 20", got)
	}
}
