// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

// Package store is the persistence collaborator the scheduler
// consumes (spec.md §6). It is kept deliberately narrow: the
// scheduler never issues raw SQL itself, only the operations below.
package store

import (
	"context"

	"github.com/cardcache/srsched/card"
)

// Store is the persistence surface the scheduler depends on. A single
// implementation, SQLiteStore, is provided, but the scheduler package
// never imports it directly, to keep the core storage-agnostic.
type Store interface {
	// DueLearning returns up to limit cards with queue=Learn and
	// due<cutoff, ordered ascending by due.
	DueLearning(ctx context.Context, cutoff int64, limit int) ([]*card.Card, error)

	// DueReviewIDs returns up to limit card ids matching the given
	// predicate ("due<cutoff" normally, "due>cutoff" for Review-Early),
	// ordered per order.
	DueReviewIDs(ctx context.Context, filter TagFilter, cutoff int64, after bool, order card.RevOrder, limit int) ([]card.ID, error)
	CountReview(ctx context.Context, filter TagFilter, cutoff int64, after bool) (int, error)

	DueNewIDs(ctx context.Context, filter TagFilter, cutoff int64, order card.NewOrder, limit int) ([]card.ID, error)
	CountNew(ctx context.Context, filter TagFilter, cutoff int64) (int, error)

	GetCard(ctx context.Context, id card.ID) (*card.Card, error)
	SaveCard(ctx context.Context, c *card.Card) error

	// SpaceSiblings pushes back the siblings of c's fact (other than c
	// itself) that are due before cutoff, per spec.md §4.H: Review
	// siblings by interval*revSpacing days (not at all when that is
	// under one day), New siblings to newDue.
	SpaceSiblings(ctx context.Context, c *card.Card, cutoff int64, newDue int64, revSpacing float64, now int64) error

	ModelConfig(ctx context.Context, modelID card.ID) (*card.ModelConfig, error)

	// TagIDs resolves tag names to their stable ids, creating no
	// rows for names that don't exist (they simply contribute no id,
	// matching an empty-result tag set).
	TagIDs(ctx context.Context, names []string) ([]card.ID, error)

	FactTags(ctx context.Context, factID card.ID) (card.Tags, error)
	AddFactTag(ctx context.Context, factID card.ID, tag string, now int64) error

	AppendRevlog(ctx context.Context, entry *card.ReviewLogEntry) error

	// RestoreBuried implements resetSchedBuried(): queue=type for
	// every card with queue=SchedBuried. Returns ErrSchemaOutOfDate on
	// a legacy store missing the necessary column/value.
	RestoreBuried(ctx context.Context) error

	// WithTx runs fn inside a single transaction; all of fn's store
	// calls become visible together or not at all (spec.md §5).
	WithTx(ctx context.Context, fn func(Store) error) error
}

// TagFilter is the compiled predicate produced by the scheduler's Tag
// Filter component (spec.md §4.C): a card is eligible iff (active is
// empty OR it has at least one active tag) AND it has no inactive tag.
type TagFilter struct {
	ActiveTagIDs   []card.ID
	InactiveTagIDs []card.ID
}

// Empty reports whether the filter imposes no restriction at all.
func (f TagFilter) Empty() bool {
	return len(f.ActiveTagIDs) == 0 && len(f.InactiveTagIDs) == 0
}
