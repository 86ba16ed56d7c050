// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"errors"

	"github.com/cardcache/srsched/card"
)

// Error kinds from spec.md §7. StorageUnavailable is not a sentinel
// here: it is whatever error the store returned, wrapped with %w so
// errors.Is/As still reach it.
var (
	// ErrInvalidQueue: answerCard invoked on a card whose queue is
	// outside {Learn, Review}. A programmer error, not a recoverable
	// one — see assertQueue.
	ErrInvalidQueue = errors.New("scheduler: invalid queue for answerCard")

	// ErrConfigMissing: modelId not found; the card cannot be
	// scheduled.
	ErrConfigMissing = errors.New("scheduler: model config missing")
)

// assertQueue panics with ErrInvalidQueue if q is not one a card may
// be answered from. Per spec.md §7 this is a fatal programmer error,
// not something a caller can meaningfully recover from.
func assertQueue(q card.Queue) {
	if q != card.QueueLearn && q != card.QueueReview {
		panic(ErrInvalidQueue)
	}
}
