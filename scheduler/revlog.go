// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"github.com/google/uuid"

	"github.com/cardcache/srsched/card"
)

// buildRevlogEntry captures the before/after deltas spec.md §4.K asks
// every answer to append: the review is identified by a fresh UUID
// rather than a sequential id, so entries generated by disconnected
// embedders never collide on merge.
func buildRevlogEntry(before, after *card.Card, ease card.Ease, now int64) *card.ReviewLogEntry {
	return &card.ReviewLogEntry{
		UUID:        uuid.NewString(),
		CardID:      after.ID,
		Time:        now,
		Ease:        ease,
		OldInterval: before.Interval,
		NewInterval: after.Interval,
		OldFactor:   before.Factor,
		NewFactor:   after.Factor,
		OldDue:      before.Due,
		NewDue:      after.Due,
	}
}
