// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/primepath/config"
	"github.com/katalvlaran/primepath/prime"
)

// Settings are the per-run engine parameters.
type Settings struct {
	MaxOrder  int
	Start     uint64
	Strategy  prime.Strategy
	Precision config.Precision
	// Verify checks the support of every power against walk reachability.
	// It keeps all powers in memory and is meant for small graphs.
	Verify bool
}

// DefaultSettings mirrors config.Default.
func DefaultSettings() Settings {
	return SettingsFrom(config.Default())
}

// SettingsFrom extracts the engine parameters of c.
func SettingsFrom(c config.Config) Settings {
	return Settings{
		MaxOrder:  c.MaxOrder,
		Start:     c.Prime.StartingValue,
		Strategy:  c.Prime.SpacingStrategy,
		Precision: c.Precision,
		Verify:    c.Verify,
	}
}
