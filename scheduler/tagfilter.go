// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"

	"github.com/cardcache/srsched/card"
	"github.com/cardcache/srsched/store"
)

// resolveTagFilter translates the active/inactive tag-set strings
// passed to WithTagFilter into a store.TagFilter (DeckParams' own
// ActiveTags/InactiveTags fields are not read here), mirroring sched.py's
// cardLimit/tagIds. Anki stores tag sets as whitespace-separated
// strings of tag names.
func resolveTagFilter(ctx context.Context, st store.Store, active, inactive string) (store.TagFilter, error) {
	var filter store.TagFilter
	if names := card.ParseTags(active); len(names) > 0 {
		ids, err := st.TagIDs(ctx, names)
		if err != nil {
			return filter, err
		}
		filter.ActiveTagIDs = ids
	}
	if names := card.ParseTags(inactive); len(names) > 0 {
		ids, err := st.TagIDs(ctx, names)
		if err != nil {
			return filter, err
		}
		filter.InactiveTagIDs = ids
	}
	return filter, nil
}
