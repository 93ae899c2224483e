// Package config loads the grading configuration surface from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

// Config is the full configuration surface recognized by the engine.
type Config struct {
	// BaseUnit is the dollar value of one quoted stake unit ("$50" in chat
	// means 50 base units).
	BaseUnit float64 `yaml:"base_unit"`

	// DefaultOdds is the American price assumed when a bet states none.
	DefaultOdds int `yaml:"default_odds"`

	// IdleResetMinutes resets conversation context after this much silence.
	IdleResetMinutes int `yaml:"idle_reset_minutes"`

	// MatchAcceptanceThreshold is the minimum game-match score.
	MatchAcceptanceThreshold int `yaml:"match_acceptance_threshold"`

	// Timezone is the conversation's local zone for date normalization.
	Timezone string `yaml:"timezone"`

	// LeaguePriority breaks cross-league alias collisions.
	LeaguePriority []string `yaml:"league_priority"`

	// DefaultStakes is the per-league stake (in base units) assumed when a
	// confirmer acknowledges without naming an amount.
	DefaultStakes map[string]float64 `yaml:"default_stakes"`

	// ExtraAliases adds raw-text -> canonical-name mappings on top of the
	// built-in tables.
	ExtraAliases map[string]string `yaml:"extra_aliases"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BaseUnit:                 1000,
		DefaultOdds:              -110,
		IdleResetMinutes:         240,
		MatchAcceptanceThreshold: 50,
		Timezone:                 "America/New_York",
		LeaguePriority:           []string{"nfl", "nba", "ncaaf", "ncaab"},
		DefaultStakes: map[string]float64{
			"nfl":   50,
			"ncaaf": 50,
			"nba":   20,
			"ncaab": 20,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot work with.
func (c *Config) Validate() error {
	if c.BaseUnit <= 0 {
		return fmt.Errorf("base_unit must be positive, got %v", c.BaseUnit)
	}
	if c.DefaultOdds == 0 {
		return fmt.Errorf("default_odds cannot be 0")
	}
	if c.IdleResetMinutes <= 0 {
		return fmt.Errorf("idle_reset_minutes must be positive, got %d", c.IdleResetMinutes)
	}
	if c.MatchAcceptanceThreshold <= 0 {
		return fmt.Errorf("match_acceptance_threshold must be positive, got %d", c.MatchAcceptanceThreshold)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BaseUnitDecimal returns the base unit as a decimal dollar amount.
func (c *Config) BaseUnitDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.BaseUnit)
}

// IdleReset returns the idle gap as a duration.
func (c *Config) IdleReset() time.Duration {
	return time.Duration(c.IdleResetMinutes) * time.Minute
}

// LeaguePriorityList maps the configured priority strings to leagues.
func (c *Config) LeaguePriorityList() []picks.League {
	var out []picks.League
	for _, s := range c.LeaguePriority {
		out = append(out, picks.League(s))
	}
	return out
}

// DefaultStake returns the per-league default stake in base units.
func (c *Config) DefaultStake(league picks.League) decimal.Decimal {
	if v, ok := c.DefaultStakes[string(league)]; ok {
		return decimal.NewFromFloat(v)
	}
	// Unknown league: take the smallest configured default rather than
	// inventing a size.
	smallest := 0.0
	for _, v := range c.DefaultStakes {
		if smallest == 0 || v < smallest {
			smallest = v
		}
	}
	if smallest == 0 {
		smallest = 10
	}
	return decimal.NewFromFloat(smallest)
}
