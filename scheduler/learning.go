// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import "github.com/cardcache/srsched/card"

// answerLearnCard advances a card through the Learning State Machine
// (spec.md §4.F). It mutates c in place; the caller is responsible for
// persisting it.
func answerLearnCard(delays []float64, ints [3]float64, now int64, c *card.Card, ease card.Ease) {
	if ease == card.EaseRemove {
		removeLearnCard(ints, c)
		return
	}
	c.Cycles++
	if ease == card.EaseGood {
		c.Grade++
	} else {
		c.Grade = 0
	}
	if c.Grade >= len(delays) {
		graduateLearnCard(ints, c)
		return
	}
	c.Due = now + int64(delays[c.Grade]*60)
}

// removeLearnCard handles ease=Remove ("I already know this"): the
// card exits learning immediately.
func removeLearnCard(ints [3]float64, c *card.Card) {
	if c.Type == card.TypeMature {
		rescheduleAsReview(c, 0, false)
		return
	}
	if c.Cycles == 0 {
		// first-time bonus
		rescheduleAsReview(c, ints[1], true)
		return
	}
	rescheduleAsReview(c, ints[2], true)
}

// graduateLearnCard handles a card finishing its final learning step
// normally (grade reached len(delays)).
func graduateLearnCard(ints [3]float64, c *card.Card) {
	if c.Type == card.TypeMature {
		rescheduleAsReview(c, 0, false)
		return
	}
	rescheduleAsReview(c, ints[0], true)
}

// rescheduleAsReview moves c into the Review queue. interval is only
// applied (and c.Type flipped to Mature) when setInterval is true,
// mirroring the source's "int_ may be None" branch for re-learning
// cards that already carry an interval.
func rescheduleAsReview(c *card.Card, interval float64, setInterval bool) {
	c.Queue = card.QueueReview
	if setInterval {
		c.Type = card.TypeMature
		c.Interval = interval
	}
}
