// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"
	"time"
)

// Clock supplies wall-clock time. Behavior is only defined for a
// non-decreasing sequence of Now() values; the scheduler does not
// detect or handle a regression (spec.md §7, ClockRegression).
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock, backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// updateCutoff recomputes dayCutoff and dayCount following sched.py's
// updateCutoff: take now-utcOffset, add one day, truncate to midnight,
// adjust back by utcOffset-localTZOffset, then walk forward by whole
// days until strictly in the future, capped at now+86400.
func (s *Scheduler) updateCutoff() {
	now := s.clock.Now().Unix()

	shifted := time.Unix(now-s.params.UTCOffset, 0).UTC().Add(24 * time.Hour)
	midnight := time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
	newday := s.params.UTCOffset - s.params.LocalTZOffset
	cutoff := midnight.Unix() + newday

	// cutoff must not be in the past
	for cutoff <= now {
		cutoff += 86400
	}
	// cutoff must not be more than 24h in the future
	if cutoff > now+86400 {
		cutoff = now + 86400
	}

	s.dayCutoff = cutoff
	s.dayCount = int(cutoff/86400 - s.params.DeckCreated/86400)
}

// checkDay probes for day rollover, invoked before every GetCard.
// Idempotent: calling it twice without the clock advancing leaves
// dayCutoff (and therefore all rebuilt queue state) unchanged the
// second time, since the rollover condition is false.
func (s *Scheduler) checkDay(ctx context.Context) error {
	if s.clock.Now().Unix() > s.dayCutoff {
		s.updateCutoff()
		return s.Reset(ctx)
	}
	return nil
}

// CheckDay exposes checkDay to callers that want to force a rollover
// check without also fetching a card.
func (s *Scheduler) CheckDay(ctx context.Context) error {
	return s.checkDay(ctx)
}
