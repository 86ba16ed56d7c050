// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// spaceCards pushes back c's due sibling cards (same fact, other cards)
// so a learner doesn't see two cards from the same fact back to back
// (spec.md §4.H). Review siblings are pushed by interval*RevSpacing
// days, and not at all when that is under one day; new siblings are
// moved to a fixed point newSpacing seconds out. Neither push is
// checked against the day cutoff. st is the (possibly transaction-scoped)
// store the caller is currently operating under.
func (s *Scheduler) spaceCards(ctx context.Context, st store.Store, c *card.Card) error {
	now := s.clock.Now().Unix()
	newDue := now + s.params.NewSpacing
	if err := st.SpaceSiblings(ctx, c, s.dayCutoff, newDue, s.params.RevSpacing, now); err != nil {
		return err
	}
	s.spacedFacts[c.FactID] = newDue
	return nil
}
