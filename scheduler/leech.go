// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// isLeech reports whether c just crossed the LeechFails threshold: a
// failed card (successive==0) whose lapse count is at or past the
// threshold, re-firing every LeechFails/2 lapses thereafter so a
// repeatedly-failed card keeps getting flagged rather than only once.
func isLeech(params card.DeckParams, c *card.Card) bool {
	max := params.LeechFails
	if max == 0 {
		return false
	}
	if c.Successive != 0 {
		return false
	}
	if c.Lapses < max {
		return false
	}
	every := max / 2
	if every < 1 {
		every = 1
	}
	return (max-c.Lapses)%every == 0
}

// handleLeech tags c's fact "Leech" and, if configured, suspends the
// card so it stops being presented (spec.md §4.I). It reports whether
// the card was suspended, since a suspended card must drop out of the
// caller's in-memory queues immediately.
func (s *Scheduler) handleLeech(ctx context.Context, st store.Store, c *card.Card) (suspended bool, err error) {
	if err := st.AddFactTag(ctx, c.FactID, "Leech", s.clock.Now().Unix()); err != nil {
		return false, err
	}
	if !s.params.SuspendLeeches {
		return false, nil
	}
	c.Queue = card.QueueSuspended
	return true, nil
}
