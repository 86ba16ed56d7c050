// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardcache/srsched/card"
)

// Invariant 10 / Scenario-style: entering Review Early, answering a
// card with ease>1 buries it, and finishing plus a buried-card restore
// returns it to its home queue.
func TestReviewEarlyModeReversible(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := newTestScheduler(t, fs, clk, card.DefaultDeckParams())

	notYetDue := &card.Card{
		ID: 1, FactID: 1, ModelID: 1, Queue: card.QueueReview, Type: card.TypeMature,
		Due: s.dayCutoff + 100_000, Interval: 10, Factor: 2.5, Reps: 3, Successive: 3,
	}
	fs.addCard(notYetDue)

	s.SetupReviewEarlyScheduler()
	require.NoError(t, s.Reset(context.Background()))

	got, err := s.GetCard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, card.ID(1), got.ID)

	require.NoError(t, s.AnswerCard(context.Background(), notYetDue, card.EaseRemove))
	assert.Equal(t, card.QueueSchedBuried, notYetDue.Queue, "reviewing early must bury the card for the rest of the session")

	s.Finish()
	require.NoError(t, s.Reset(context.Background()))

	restored, err := fs.GetCard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, card.Queue(restored.Type), restored.Queue, "restoreBuried must put queue back to type")
	assert.NotEqual(t, card.QueueSchedBuried, restored.Queue)
}

// Learn More mode ignores the per-day new-card cap.
func TestLearnMoreIgnoresPerDayCap(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	params := card.DefaultDeckParams()
	params.NewCardsPerDay = 1
	s := New(fs, params, WithClock(clk), WithRand(fixedRand(0.5)))

	now := clk.now.Unix()
	fs.addCard(&card.Card{ID: 1, FactID: 1, ModelID: 1, Queue: card.QueueNew, Due: now - 100})
	fs.addCard(&card.Card{ID: 2, FactID: 2, ModelID: 1, Queue: card.QueueNew, Due: now - 100})
	fs.addCard(&card.Card{ID: 3, FactID: 3, ModelID: 1, Queue: card.QueueNew, Due: now - 100})

	s.SetupLearnMoreScheduler()
	require.NoError(t, s.Reset(context.Background()))

	_, _, newCount := s.Counts()
	assert.Equal(t, 3, newCount, "Learn More must not cap newCount at NewCardsPerDay")
}
