// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

// Package scheduler implements the card-scheduling core described in
// spec.md: given a Store of cards/facts/config, it decides which card
// a learner sees next and how answering it changes its schedule.
package scheduler

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// Scheduler holds all in-memory session state for one deck. It is not
// safe for concurrent use; callers running multiple decks concurrently
// should give each its own Scheduler, per spec.md §5.
type Scheduler struct {
	store store.Store
	clock Clock
	rng   Rand

	params card.DeckParams

	modelConfigs map[card.ID]*card.ModelConfig
	tagFilter    store.TagFilter

	dayCutoff int64
	dayCount  int

	learnQueue learnHeap
	learnCount int

	revQueue []card.ID
	revCount int

	newQueue []card.ID
	newAvail int
	newCount int

	repsSeenNewToday int
	repsToday        int
	newCardModulus   int

	// spacedFacts records, per fact, the due timestamp most recently
	// given to its new siblings by the Spacing Enforcer (spec.md §4.H).
	// spaceCards writes it on every answer; nothing reads it, so every
	// answer still calls store.SpaceSiblings.
	spacedFacts map[card.ID]int64

	mode modeOps
	cram bool

	listeners []Listener
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithClock overrides the default system clock, for deterministic
// tests.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithRand overrides the default Rand (a math/rand source seeded with
// 1), for deterministic fuzz/ease-band tests (spec.md §8).
func WithRand(r Rand) Option {
	return func(s *Scheduler) { s.rng = r }
}

// WithTagFilter restricts scheduling to cards matching the given
// active/inactive tag-set strings, resolved once at construction time.
func WithTagFilter(ctx context.Context, active, inactive string) Option {
	return func(s *Scheduler) {
		filter, err := resolveTagFilter(ctx, s.store, active, inactive)
		if err != nil {
			// Resolution failure collapses to an unfiltered scheduler
			// rather than a constructor that can fail; WithTagFilter
			// is an option, not a fallible step of New.
			return
		}
		s.tagFilter = filter
	}
}

// New builds a Scheduler backed by st, configured with params, and
// applies opts. Apart from the tag lookup a WithTagFilter option makes,
// it does not query the store; call Reset to load the initial queues.
func New(st store.Store, params card.DeckParams, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:        st,
		clock:        systemClock{},
		rng:          rand.New(rand.NewSource(1)),
		params:       params,
		modelConfigs: make(map[card.ID]*card.ModelConfig),
		spacedFacts:  make(map[card.ID]int64),
		mode:         standardMode(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset reloads every queue from the store and recomputes the day
// cutoff, discarding any in-memory batch state. Call it once at
// session start and whenever the underlying data changes out from
// under the scheduler (e.g. a card was edited elsewhere).
func (s *Scheduler) Reset(ctx context.Context) error {
	if err := s.restoreBuried(ctx); err != nil {
		return err
	}

	s.modelConfigs = make(map[card.ID]*card.ModelConfig)
	s.updateCutoff()

	if err := s.resetLearn(ctx); err != nil {
		return err
	}
	if err := s.resetReview(ctx); err != nil {
		return err
	}
	s.resetNew()
	if err := s.mode.rebuildNewCount(s, ctx); err != nil {
		return err
	}
	s.updateNewCardRatio()
	return nil
}

// restoreBuried runs resetSchedBuried() once per Reset: any card left
// SchedBuried by a prior Review-Early session (e.g. a crash before
// Finish ran) is restored to its home queue. A legacy store missing
// the necessary column reports ErrSchemaOutOfDate, which is logged and
// otherwise ignored per spec.md §7.
func (s *Scheduler) restoreBuried(ctx context.Context) error {
	if err := s.store.RestoreBuried(ctx); err != nil {
		if errors.Is(err, store.ErrSchemaOutOfDate) {
			log.Printf("scheduler: store schema predates SchedBuried support, skipping restore: %v", err)
			return nil
		}
		return err
	}
	return nil
}

// Counts reports the current learn/review/new queue sizes, in that
// priority order, for display in a study-session UI.
func (s *Scheduler) Counts() (learn, review, new int) {
	return s.learnCount, s.revCount, s.newCount
}

// DayCount returns the number of days elapsed since the deck's
// creation, per sched.py's dayCount / finishProgress bookkeeping.
func (s *Scheduler) DayCount() int {
	return s.dayCount
}
