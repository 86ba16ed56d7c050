// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"container/heap"
	"context"

	"github.com/cardcache/srsched/card"
)

// learnItem is one entry of the learning min-heap: (due, cardId),
// ordered ascending by due (spec.md invariant 3).
type learnItem struct {
	due int64
	id  card.ID
}

// learnHeap implements container/heap.Interface, replacing sched.py's
// use of Python's heapq on the same (due, id) tuples.
type learnHeap []learnItem

func (h learnHeap) Len() int            { return len(h) }
func (h learnHeap) Less(i, j int) bool  { return h[i].due < h[j].due }
func (h learnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *learnHeap) Push(x interface{}) { *h = append(*h, x.(learnItem)) }
func (h *learnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// resetLearn preloads the learning queue with up to LearnLimit cards
// due before the current cutoff, ordered ascending by due.
func (s *Scheduler) resetLearn(ctx context.Context) error {
	cards, err := s.store.DueLearning(ctx, s.dayCutoff, s.params.LearnLimit)
	if err != nil {
		return err
	}
	h := make(learnHeap, 0, len(cards))
	for _, c := range cards {
		h = append(h, learnItem{due: c.Due, id: c.ID})
	}
	heap.Init(&h)
	s.learnQueue = h
	s.learnCount = len(h)
	return nil
}

// getLearnCard peeks the learning heap; the head is popped and
// returned only if it is actually due, optionally allowing the
// collapseTime grace window used for end-of-session wind-down.
func (s *Scheduler) getLearnCard(collapse bool) (card.ID, bool) {
	if len(s.learnQueue) == 0 {
		return 0, false
	}
	cutoff := s.clock.Now().Unix()
	if collapse {
		cutoff += s.params.CollapseTime
	}
	if s.learnQueue[0].due < cutoff {
		item := heap.Pop(&s.learnQueue).(learnItem)
		if s.learnCount > 0 {
			s.learnCount--
		}
		return item.id, true
	}
	return 0, false
}

// resetReview rebuilds the review count via the active mode's
// countReview hook and empties the batch so the next getReviewCard
// triggers a refill.
func (s *Scheduler) resetReview(ctx context.Context) error {
	n, err := s.mode.countReview(s, ctx)
	if err != nil {
		return err
	}
	s.revCount = n
	s.revQueue = nil
	return nil
}

// haveRevCards lazily fills the review batch when the count is
// nonzero but the batch is currently empty.
func (s *Scheduler) haveRevCards(ctx context.Context) (bool, error) {
	if s.revCount == 0 {
		return false, nil
	}
	if len(s.revQueue) == 0 {
		if err := s.mode.fillReviewQueue(s, ctx); err != nil {
			return false, err
		}
	}
	return len(s.revQueue) > 0, nil
}

// getReviewCard pops the tail of the pre-ordered review batch
// (invariant 4: batches are consumed from the tail).
func (s *Scheduler) getReviewCard(ctx context.Context) (card.ID, bool, error) {
	ok, err := s.haveRevCards(ctx)
	if err != nil || !ok {
		return 0, false, err
	}
	n := len(s.revQueue)
	id := s.revQueue[n-1]
	s.revQueue = s.revQueue[:n-1]
	if s.revCount > 0 {
		s.revCount--
	}
	return id, true, nil
}

// fillRevQueueStandard is the default fillReviewQueue: queue=Review,
// due<cutoff, ordered per DeckParams.RevCardOrder, then reversed so
// tail-pop yields the configured head.
func (s *Scheduler) fillRevQueueStandard(ctx context.Context) error {
	if s.revCount == 0 || len(s.revQueue) > 0 {
		return nil
	}
	ids, err := s.store.DueReviewIDs(ctx, s.tagFilter, s.dayCutoff, false, s.params.RevCardOrder, s.params.QueueLimit)
	if err != nil {
		return err
	}
	reverse(ids)
	s.revQueue = ids
	return nil
}

func (s *Scheduler) countReviewStandard(ctx context.Context) (int, error) {
	return s.store.CountReview(ctx, s.tagFilter, s.dayCutoff, false)
}

// resetNew only empties the new-card batch so the next getNewCard
// refills it; the counts are recomputed by rebuildNewCount instead.
func (s *Scheduler) resetNew() {
	s.newQueue = nil
}

// rebuildNewCountStandard recomputes newAvail then applies the
// per-day cap via updateNewCountToday.
func (s *Scheduler) rebuildNewCountStandard(ctx context.Context) error {
	n, err := s.store.CountNew(ctx, s.tagFilter, s.dayCutoff)
	if err != nil {
		return err
	}
	s.newAvail = n
	s.updateNewCountToday()
	return nil
}

// updateNewCountToday caps newAvail at the remaining per-day new-card
// allowance.
func (s *Scheduler) updateNewCountToday() {
	remaining := s.params.NewCardsPerDay - s.repsSeenNewToday
	if remaining < 0 {
		remaining = 0
	}
	if s.newAvail < remaining {
		s.newCount = s.newAvail
	} else {
		s.newCount = remaining
	}
}

// fillNewQueue lazily fills the new-card batch, ordered per
// DeckParams.NewCardOrder, then reversed for tail-pop.
func (s *Scheduler) fillNewQueue(ctx context.Context) error {
	if s.newCount == 0 || len(s.newQueue) > 0 {
		return nil
	}
	ids, err := s.store.DueNewIDs(ctx, s.tagFilter, s.dayCutoff, s.params.NewCardOrder, s.params.QueueLimit)
	if err != nil {
		return err
	}
	reverse(ids)
	s.newQueue = ids
	return nil
}

// getNewCard pops the tail of the new-card batch, refilling first.
func (s *Scheduler) getNewCard(ctx context.Context) (card.ID, bool, error) {
	if s.newCount == 0 {
		return 0, false, nil
	}
	if err := s.fillNewQueue(ctx); err != nil {
		return 0, false, err
	}
	if len(s.newQueue) == 0 {
		return 0, false, nil
	}
	n := len(s.newQueue)
	id := s.newQueue[n-1]
	s.newQueue = s.newQueue[:n-1]
	if s.newCount > 0 {
		s.newCount--
	}
	return id, true, nil
}

func reverse(ids []card.ID) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
