// Package config loads the process-wide Deck Parameters (spec.md §3)
// from a TOML file on disk, the way NikeGunn-tutu loads its node
// configuration at startup. A scheduler run with no config file falls
// back to DefaultDeckParams, which matches stock Anki's constants.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cardcache/srsched/card"
)

// Load reads Deck Parameters from the TOML file at path, starting from
// DefaultDeckParams so an incomplete file only overrides the fields it
// sets.
func Load(path string) (*card.DeckParams, error) {
	params := card.DefaultDeckParams()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &params, nil
	}
	if _, err := toml.DecodeFile(path, &params); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &params, nil
}
