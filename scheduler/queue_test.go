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

// Invariant 1: a card never appears in more than one queue at once —
// exercised here by checking the learning heap pops in ascending due
// order and each popped id is unique.
func TestLearnHeapOrdering(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := newTestScheduler(t, fs, clk, card.DefaultDeckParams())

	now := clk.now.Unix()
	fs.addCard(&card.Card{ID: 1, FactID: 1, ModelID: 1, Queue: card.QueueLearn, Due: now - 300})
	fs.addCard(&card.Card{ID: 2, FactID: 1, ModelID: 1, Queue: card.QueueLearn, Due: now - 500})
	fs.addCard(&card.Card{ID: 3, FactID: 1, ModelID: 1, Queue: card.QueueLearn, Due: now - 100})

	require.NoError(t, s.resetLearn(context.Background()))

	seen := map[card.ID]bool{}
	var order []card.ID
	for {
		id, ok := s.getLearnCard(false)
		if !ok {
			break
		}
		assert.False(t, seen[id], "card %d popped twice", id)
		seen[id] = true
		order = append(order, id)
	}
	assert.Equal(t, []card.ID{2, 1, 3}, order, "must pop in ascending due order")
}

// Invariant 8: learnCount+revCount+newAvail after Reset equals the
// count of cards a fresh query reports eligible.
func TestInvariantCounterConservation(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	params := card.DefaultDeckParams()
	s := newTestScheduler(t, fs, clk, params)

	now := clk.now.Unix()
	fs.addCard(&card.Card{ID: 1, FactID: 1, ModelID: 1, Queue: card.QueueLearn, Due: now - 100})
	fs.addCard(&card.Card{ID: 2, FactID: 2, ModelID: 1, Queue: card.QueueReview, Due: now - 100})
	fs.addCard(&card.Card{ID: 3, FactID: 3, ModelID: 1, Queue: card.QueueNew, Due: now - 100})
	fs.addCard(&card.Card{ID: 4, FactID: 4, ModelID: 1, Queue: card.QueueNew, Due: now - 100})

	require.NoError(t, s.Reset(context.Background()))

	learn, rev, _ := s.Counts()
	assert.Equal(t, 1, learn)
	assert.Equal(t, 1, rev)
	assert.Equal(t, 2, s.newAvail)
}

func TestGetCardPriorityOrder(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := newTestScheduler(t, fs, clk, card.DefaultDeckParams())

	now := clk.now.Unix()
	fs.addCard(&card.Card{ID: 1, FactID: 1, ModelID: 1, Queue: card.QueueLearn, Due: now - 100})
	fs.addCard(&card.Card{ID: 2, FactID: 2, ModelID: 1, Queue: card.QueueReview, Due: now - 100})
	require.NoError(t, s.Reset(context.Background()))

	got, err := s.GetCard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, card.ID(1), got.ID, "a due learning card always wins over review/new")
}
