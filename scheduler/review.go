// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"
	"fmt"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// AnswerCard applies the learner's grade to c and persists the result,
// per spec.md §4.F/§4.G. c must currently sit in the Learn or Review
// queue; any other queue is a programmer error (assertQueue panics).
//
// All effects — the card write, sibling spacing, leech tagging, and
// the review-log append — happen inside a single store transaction, so
// a crash mid-answer leaves the card exactly as getCard last returned
// it (spec.md §5).
func (s *Scheduler) AnswerCard(ctx context.Context, c *card.Card, ease card.Ease) error {
	assertQueue(c.Queue)

	before := *c
	var isLeech, wasReview bool

	err := s.store.WithTx(ctx, func(tx store.Store) error {
		switch c.Queue {
		case card.QueueLearn:
			if err := s.answerLearn(ctx, c, ease); err != nil {
				return err
			}
		case card.QueueReview:
			wasReview = true
			leech, err := s.answerReview(ctx, tx, c, ease)
			if err != nil {
				return err
			}
			isLeech = leech
		}
		if err := tx.SaveCard(ctx, c); err != nil {
			return err
		}
		entry := buildRevlogEntry(&before, c, ease, s.clock.Now().Unix())
		return tx.AppendRevlog(ctx, entry)
	})
	if err != nil {
		return err
	}

	if wasReview {
		s.adjustCountsAfterReview(c)
	}
	s.notifyCardAnswered(c.ID, isLeech)

	if isLeech {
		// Leech handling may suspend the card out from under the
		// queues it was counted in; the cheapest correct recovery is
		// a full rebuild (spec.md §4.I, §9 "counters after leech").
		return s.Reset(ctx)
	}
	return nil
}

// answerLearn runs the Learning State Machine (spec.md §4.F) for a
// card currently in the Learn queue.
func (s *Scheduler) answerLearn(ctx context.Context, c *card.Card, ease card.Ease) error {
	cfg, err := s.configForCard(ctx, c)
	if err != nil {
		return err
	}
	delays, ints := learnConf(cfg, c)
	answerLearnCard(delays, ints, s.clock.Now().Unix(), c, ease)
	return nil
}

// answerReview runs the Review Engine's ten-step sequence (spec.md
// §4.G) for a card currently in the Review queue. It returns whether
// the card became a leech this answer.
func (s *Scheduler) answerReview(ctx context.Context, tx store.Store, c *card.Card, ease card.Ease) (bool, error) {
	now := s.clock.Now().Unix()

	// 1. snapshot
	oldState := card.CardState(c)

	// 2.
	last := c.Interval
	c.Interval = s.nextInterval(c, ease)
	c.LastInterval = last
	if c.Reps > 0 {
		c.LastDue = c.Due
	}

	// 3.
	c.Due = s.nextDue(c, ease, oldState, now)

	// 4.
	updateFactor(s.params, c, ease)

	// 5.
	if err := s.spaceCards(ctx, tx, c); err != nil {
		return false, err
	}

	// 6-7. counters are adjusted by the caller once the card has its
	// final queue (see adjustCountsAfterReview); stats update here.
	c.Reps++
	if ease == card.EaseAgain {
		c.Successive = 0
		c.Lapses++
	} else {
		c.Successive++
	}
	c.Modified = now

	// 8.
	c.Type = cardType(c)
	c.Queue = card.Queue(c.Type)
	if ease != card.EaseAgain {
		if c.Due < s.dayCutoff+1 {
			c.Due = s.dayCutoff + 1
		}
	}

	// 9.
	s.mode.answerPreSave(c, ease)

	// leech check, after stats/type are final
	leech := isLeech(s.params, c)
	if leech {
		if _, err := s.handleLeech(ctx, tx, c); err != nil {
			return false, err
		}
	}
	return leech, nil
}

// adjustCountsAfterReview mirrors _answerCard step 6: a card answered
// out of the Review queue re-admits to learnCount if it failed back
// into a still-today learning step (getReviewCard already decremented
// revCount when the card was popped).
func (s *Scheduler) adjustCountsAfterReview(c *card.Card) {
	if c.Queue == card.QueueLearn && c.Due < s.dayCutoff {
		s.learnCount++
	}
}

// cardType reclassifies a card's Type after an answer, matching
// sched.py's implicit post-answer queue/type equivalence (queue =
// type for Review/New cards). A card only ever reaches this function
// through the Review Engine, so Reps is always >0 by this point; a
// zero-interval lapse does not demote a Mature card back to New, it
// simply leaves it immediately due again within Review.
func cardType(c *card.Card) card.Type {
	if c.Queue == card.QueueLearn {
		return card.TypeLearning
	}
	if c.Reps == 0 {
		return card.TypeNew
	}
	return card.TypeMature
}

// nextInterval returns the next interval for c given ease, in days.
func (s *Scheduler) nextInterval(c *card.Card, ease card.Ease) float64 {
	delay := adjustedDelay(s.dayCutoff, c)
	return s.computeInterval(c, delay, ease)
}

// adjustedDelay is the simpler reading adopted per spec.md §9: zero
// for a brand-new card, and zero for a card not yet due (the "cramming
// negative delay" path is reached only through a mode overlay that
// feeds a negative delay directly, never through this function in
// Standard mode).
func adjustedDelay(dayCutoff int64, c *card.Card) float64 {
	if card.CardState(c) == card.StateNew {
		return 0
	}
	if c.Due > dayCutoff {
		return 0
	}
	return float64(dayCutoff-c.Due) / 86400.0
}

// computeInterval is _nextInterval: the ease-driven interval formula,
// including the ease-band draw for brand-new graduations and the fuzz
// applied to ongoing mature reviews.
func (s *Scheduler) computeInterval(c *card.Card, delay float64, ease card.Ease) float64 {
	p := s.params
	interval := c.Interval
	factor := c.Factor

	if delay < 0 {
		interval = maxFloat(c.LastInterval, interval+delay)
		if interval < p.MidIntervalMin {
			interval = 0
		}
		delay = 0
	}

	switch {
	case ease == card.EaseAgain:
		interval *= p.Delay2
		if interval < p.HardIntervalMin {
			interval = 0
		}
		return interval
	case interval == 0:
		switch ease {
		case card.EaseGood:
			interval = uniform(s.rng, p.HardIntervalMin, p.HardIntervalMax)
		case card.EaseRemove:
			interval = uniform(s.rng, p.MidIntervalMin, p.MidIntervalMax)
		case card.EaseEasy:
			interval = uniform(s.rng, p.EasyIntervalMin, p.EasyIntervalMax)
		}
		return interval
	default:
		if interval < p.HardIntervalMax && interval > 0.166 {
			mid := (p.MidIntervalMin + p.MidIntervalMax) / 2.0
			interval = mid / factor
		}
		switch ease {
		case card.EaseGood:
			interval = (interval + delay/4) * 1.2
		case card.EaseRemove:
			interval = (interval + delay/2) * factor
		case card.EaseEasy:
			interval = (interval + delay) * factor * p.FactorFour
		}
		interval *= uniform(s.rng, 0.95, 1.05)
		return interval
	}
}

// nextDue computes c's new due timestamp given ease and its state
// before this answer (spec.md §4.G nextDue). oldState is consulted
// only on a failure (ease=Again); cram mode always skips the
// lapse-bonus-day branch regardless of delay1 (spec.md §4.J).
func (s *Scheduler) nextDue(c *card.Card, ease card.Ease, oldState card.State, now int64) int64 {
	if ease != card.EaseAgain {
		return now + int64(c.Interval*86400.0)
	}
	if !s.cram && oldState == card.StateMature && s.params.Delay1 != 0 && s.params.Delay1 != 600 {
		return s.dayCutoff + int64(s.params.Delay1-1)*86400
	}
	return now
}

// updateFactor adjusts c.Factor in place given ease (spec.md §4.G).
func updateFactor(p card.DeckParams, c *card.Card, ease card.Ease) {
	if c.Reps == 0 {
		c.Factor = p.AverageFactor
	}
	if c.Successive != 0 && c.Queue != card.QueueLearn {
		switch ease {
		case card.EaseAgain:
			c.Factor -= 0.20
		case card.EaseGood:
			c.Factor -= 0.15
		}
	}
	if ease == card.EaseEasy {
		c.Factor += 0.10
	}
	if c.Factor < 1.3 {
		c.Factor = 1.3
	}
}

// NextIntervalStr previews the interval a given ease would produce,
// as a short human-readable duration string, without mutating c
// (spec.md §6: "preview text for buttons"). The computation draws from
// the scheduler's Rand like a real answer does, so a preview advances
// that source, and repeated calls for the same (card, ease) are not
// guaranteed to return the same string.
func (s *Scheduler) NextIntervalStr(c *card.Card, ease card.Ease) string {
	preview := *c
	days := s.nextInterval(&preview, ease)
	return formatDaySpan(days)
}

func formatDaySpan(days float64) string {
	switch {
	case days <= 0:
		return "now"
	case days < 1:
		return fmt.Sprintf("%d min", int(days*24*60))
	case days < 30:
		return fmt.Sprintf("%.1f days", days)
	case days < 365:
		return fmt.Sprintf("%.1f mo", days/30)
	default:
		return fmt.Sprintf("%.1f yr", days/365)
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// uniform draws from [lo, hi) using the scheduler's injected Rand,
// keeping every fuzz/ease-band draw reproducible under a seeded source
// in tests (spec.md §8).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
