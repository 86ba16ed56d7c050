// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package card

import (
	"sort"
	"strings"
)

// Fact groups related cards (siblings); the scheduler only reads its
// tags and uses its ID as a spacing key.
type Fact struct {
	ID       ID    `db:"id"`
	Tags     Tags  `db:"tags"`
	Modified int64 `db:"modified"`
}

// Tags is a space-separated tag list, mirroring Anki's on-disk
// representation (flimzy-anki/anki_types.go's Tags type).
type Tags []string

// ParseTags splits Anki's space-separated tag string into a sorted
// Tags slice.
func ParseTags(s string) Tags {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	tags := Tags(strings.Fields(s))
	sort.Strings(tags)
	return tags
}

// String renders Tags back into Anki's on-disk representation.
func (t Tags) String() string {
	return strings.Join(t, " ")
}

// Has reports whether name is present among t.
func (t Tags) Has(name string) bool {
	for _, tag := range t {
		if strings.EqualFold(tag, name) {
			return true
		}
	}
	return false
}

// AddTag returns a copy of t with name added, canonicalized (sorted,
// deduplicated) the way sched.py's addTags/canonifyTags leave the
// fact's tag string.
func (t Tags) AddTag(name string) Tags {
	if t.Has(name) {
		return t
	}
	out := append(append(Tags{}, t...), name)
	sort.Strings(out)
	return out
}
