// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// configForCard resolves and caches the ModelConfig for a card's
// model, mirroring sched.py's configForCard. The cache is cleared on
// every Reset; the working set of models in a session is small, so no
// eviction policy is needed.
func (s *Scheduler) configForCard(ctx context.Context, c *card.Card) (*card.ModelConfig, error) {
	if cfg, ok := s.modelConfigs[c.ModelID]; ok {
		return cfg, nil
	}
	cfg, err := s.store.ModelConfig(ctx, c.ModelID)
	if err != nil {
		if errors.Is(err, store.ErrConfigMissing) {
			return nil, fmt.Errorf("%w: model %d", ErrConfigMissing, c.ModelID)
		}
		return nil, err
	}
	s.modelConfigs[c.ModelID] = cfg
	return cfg, nil
}

// learnConf selects the new-card or lapse configuration for a card
// being processed by the learning state machine, per spec.md §4.F:
// lapse config if the card is Mature (re-learning), else new config.
func learnConf(cfg *card.ModelConfig, c *card.Card) (delays []float64, ints [3]float64) {
	if c.Type == card.TypeMature {
		return cfg.Lapse.Delays, cfg.Lapse.Ints
	}
	return cfg.New.Delays, cfg.New.Ints
}
