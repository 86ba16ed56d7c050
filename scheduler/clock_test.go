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

// fakeClock is a mutable Clock for deterministic tests.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

// fixedRand always returns the same Float64, for tests that assert an
// exact interval rather than a fuzz range.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestScheduler(t *testing.T, fs *fakeStore, clk *fakeClock, params card.DeckParams) *Scheduler {
	t.Helper()
	s := New(fs, params, WithClock(clk), WithRand(fixedRand(0.5)))
	require.NoError(t, s.Reset(context.Background()))
	return s
}

func TestCheckDayIdempotent(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := newTestScheduler(t, fs, clk, card.DefaultDeckParams())

	cutoffBefore := s.dayCutoff
	require.NoError(t, s.checkDay(context.Background()))
	assert.Equal(t, cutoffBefore, s.dayCutoff, "checkDay twice without the clock advancing must be a no-op")
}

func TestCutoffBounds(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := newTestScheduler(t, fs, clk, card.DefaultDeckParams())

	now := clk.Now().Unix()
	assert.Greater(t, s.dayCutoff, now)
	assert.LessOrEqual(t, s.dayCutoff, now+86400)
}

func TestDayRollover(t *testing.T) {
	fs := newFakeStore()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := newTestScheduler(t, fs, clk, card.DefaultDeckParams())

	fs.addCard(&card.Card{ID: 1, FactID: 1, ModelID: 1, Queue: card.QueueNew, Type: card.TypeNew, Due: 0})

	cutoffBefore := s.dayCutoff
	clk.now = time.Unix(cutoffBefore+1, 0)

	got, err := s.GetCard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEqual(t, cutoffBefore, s.dayCutoff, "rollover must recompute dayCutoff")
}
