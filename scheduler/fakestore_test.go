// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"
	"sort"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// fakeStore is an in-memory store.Store used by the scheduler package's
// own tests, so the algorithmic core can be exercised without a live
// SQLite file. It applies SQLiteStore's queue/due predicates, but it
// ignores tag filters and the review/new order options: it always
// orders by due ascending.
type fakeStore struct {
	cards    map[card.ID]*card.Card
	facts    map[card.ID]card.Tags
	models   map[card.ID]*card.ModelConfig
	tagIDs   map[string]card.ID
	revlog   []*card.ReviewLogEntry
	buried   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cards:  make(map[card.ID]*card.Card),
		facts:  make(map[card.ID]card.Tags),
		models: make(map[card.ID]*card.ModelConfig),
		tagIDs: make(map[string]card.ID),
	}
}

func (f *fakeStore) addCard(c *card.Card) {
	cp := *c
	f.cards[c.ID] = &cp
}

func (f *fakeStore) DueLearning(ctx context.Context, cutoff int64, limit int) ([]*card.Card, error) {
	var out []*card.Card
	for _, c := range f.cards {
		if c.Queue == card.QueueLearn && c.Due < cutoff {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Due < out[j].Due })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) matchReview(cutoff int64, after bool) []*card.Card {
	var out []*card.Card
	for _, c := range f.cards {
		if c.Queue != card.QueueReview {
			continue
		}
		if after {
			if c.Due > cutoff {
				out = append(out, c)
			}
		} else if c.Due < cutoff {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeStore) DueReviewIDs(ctx context.Context, filter store.TagFilter, cutoff int64, after bool, order card.RevOrder, limit int) ([]card.ID, error) {
	cards := f.matchReview(cutoff, after)
	sort.Slice(cards, func(i, j int) bool { return cards[i].Due < cards[j].Due })
	ids := make([]card.ID, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeStore) CountReview(ctx context.Context, filter store.TagFilter, cutoff int64, after bool) (int, error) {
	return len(f.matchReview(cutoff, after)), nil
}

func (f *fakeStore) DueNewIDs(ctx context.Context, filter store.TagFilter, cutoff int64, order card.NewOrder, limit int) ([]card.ID, error) {
	var cards []*card.Card
	for _, c := range f.cards {
		if c.Queue == card.QueueNew && c.Due < cutoff {
			cards = append(cards, c)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Due < cards[j].Due })
	ids := make([]card.ID, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeStore) CountNew(ctx context.Context, filter store.TagFilter, cutoff int64) (int, error) {
	n := 0
	for _, c := range f.cards {
		if c.Queue == card.QueueNew && c.Due < cutoff {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetCard(ctx context.Context, id card.ID) (*card.Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, store.ErrConfigMissing
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) SaveCard(ctx context.Context, c *card.Card) error {
	cp := *c
	f.cards[c.ID] = &cp
	return nil
}

func (f *fakeStore) SpaceSiblings(ctx context.Context, c *card.Card, cutoff int64, newDue int64, revSpacing float64, now int64) error {
	for _, sib := range f.cards {
		if sib.ID == c.ID || sib.FactID != c.FactID || sib.Due >= cutoff {
			continue
		}
		switch sib.Queue {
		case card.QueueReview:
			delta := sib.Interval * revSpacing
			if delta < 1 {
				delta = 0
			}
			sib.Due += int64(86400 * delta)
			sib.Modified = now
		case card.QueueNew:
			sib.Due = newDue
			sib.Modified = now
		}
	}
	return nil
}

func (f *fakeStore) ModelConfig(ctx context.Context, modelID card.ID) (*card.ModelConfig, error) {
	cfg, ok := f.models[modelID]
	if !ok {
		return nil, store.ErrConfigMissing
	}
	return cfg, nil
}

func (f *fakeStore) TagIDs(ctx context.Context, names []string) ([]card.ID, error) {
	var ids []card.ID
	for _, n := range names {
		if id, ok := f.tagIDs[n]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeStore) FactTags(ctx context.Context, factID card.ID) (card.Tags, error) {
	return f.facts[factID], nil
}

func (f *fakeStore) AddFactTag(ctx context.Context, factID card.ID, tag string, now int64) error {
	f.facts[factID] = f.facts[factID].AddTag(tag)
	return nil
}

func (f *fakeStore) AppendRevlog(ctx context.Context, entry *card.ReviewLogEntry) error {
	f.revlog = append(f.revlog, entry)
	return nil
}

func (f *fakeStore) RestoreBuried(ctx context.Context) error {
	for _, c := range f.cards {
		if c.Queue == card.QueueSchedBuried {
			c.Queue = card.Queue(c.Type)
			f.buried++
		}
	}
	return nil
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(store.Store) error) error {
	return fn(f)
}
