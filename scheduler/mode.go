// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"

	"github.com/cardcache/srsched/card"
)

// modeOps is the small vtable of closures spec.md §9's Design Note
// calls for in place of the source's method-reassignment trick
// (sched.py's setupReviewEarlyScheduler/setupLearnMoreScheduler
// replace bound methods on self). A Mode variant would also work; a
// vtable keeps Scheduler itself mode-agnostic and lets each mode swap
// only the handful of operations it actually changes.
type modeOps struct {
	name string

	countReview     func(s *Scheduler, ctx context.Context) (int, error)
	fillReviewQueue func(s *Scheduler, ctx context.Context) error
	rebuildNewCount func(s *Scheduler, ctx context.Context) error

	// answerPreSave lets a mode munge the card just before it is
	// persisted (spec.md step 9 of the review answer sequence).
	answerPreSave func(c *card.Card, ease card.Ease)

	// finish restores the Standard mode; called by the embedder when
	// a custom-study session ends.
	finish func(s *Scheduler)
}

func standardMode() modeOps {
	return modeOps{
		name:            "standard",
		countReview:     (*Scheduler).countReviewStandard,
		fillReviewQueue: (*Scheduler).fillRevQueueStandard,
		rebuildNewCount: (*Scheduler).rebuildNewCountStandard,
		answerPreSave:   func(*card.Card, card.Ease) {},
		finish:          func(*Scheduler) {},
	}
}

// SetupStandardScheduler restores the default queue/count behavior.
func (s *Scheduler) SetupStandardScheduler() {
	s.mode = standardMode()
	s.cram = false
}

// countReviewEarly counts cards not yet due (due>dayCutoff), the
// inverse of the standard predicate.
func countReviewEarly(s *Scheduler, ctx context.Context) (int, error) {
	return s.store.CountReview(ctx, s.tagFilter, s.dayCutoff, true)
}

// fillReviewQueueEarly fills the review batch from not-yet-due cards,
// ordered by due ascending (earliest-due-first), reversed for
// tail-pop.
func fillReviewQueueEarly(s *Scheduler, ctx context.Context) error {
	if s.revCount == 0 || len(s.revQueue) > 0 {
		return nil
	}
	ids, err := s.store.DueReviewIDs(ctx, s.tagFilter, s.dayCutoff, true, card.RevOrderDue, s.params.QueueLimit)
	if err != nil {
		return err
	}
	reverse(ids)
	s.revQueue = ids
	return nil
}

// reviewEarlyPreSave marks a card answered with any ease above Again
// SchedBuried so it cannot re-enter the current session's review
// queue, per spec.md §4.J. A card failed with Again keeps its queue.
func reviewEarlyPreSave(c *card.Card, ease card.Ease) {
	if ease > card.EaseAgain {
		c.Queue = card.QueueSchedBuried
	}
}

// SetupReviewEarlyScheduler enables the Review Early mode: review
// cards not yet due become selectable, and answering one hides it for
// the rest of the session via the SchedBuried sentinel.
func (s *Scheduler) SetupReviewEarlyScheduler() {
	s.mode = modeOps{
		name:            "reviewEarly",
		countReview:     countReviewEarly,
		fillReviewQueue: fillReviewQueueEarly,
		rebuildNewCount: (*Scheduler).rebuildNewCountStandard,
		answerPreSave:   reviewEarlyPreSave,
		finish:          (*Scheduler).SetupStandardScheduler,
	}
}

// rebuildNewCountLearnMore ignores the per-day cap entirely:
// newCount = newAvail.
func rebuildNewCountLearnMore(s *Scheduler, ctx context.Context) error {
	n, err := s.store.CountNew(ctx, s.tagFilter, s.dayCutoff)
	if err != nil {
		return err
	}
	s.newAvail = n
	s.newCount = n
	return nil
}

// SetupLearnMoreScheduler enables the Learn More mode: new cards are
// never capped by DeckParams.NewCardsPerDay.
func (s *Scheduler) SetupLearnMoreScheduler() {
	s.mode = modeOps{
		name:            "learnMore",
		countReview:     (*Scheduler).countReviewStandard,
		fillReviewQueue: (*Scheduler).fillRevQueueStandard,
		rebuildNewCount: rebuildNewCountLearnMore,
		answerPreSave:   func(*card.Card, card.Ease) {},
		finish:          (*Scheduler).SetupStandardScheduler,
	}
}

// SetupCramScheduler marks the scheduler as cramming. Per spec.md
// §4.J, cram is a bool, not a mode vtable entry, since it affects
// exactly one branch (nextDue's lapse-bonus-day skip).
func (s *Scheduler) SetupCramScheduler() {
	s.cram = true
}

// Finish reverts from a custom-study mode (Review Early, Learn More)
// back to Standard. Calling it while already Standard is a no-op.
func (s *Scheduler) Finish() {
	s.mode.finish(s)
}
