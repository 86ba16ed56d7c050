// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardcache/srsched/card"
)

func TestIsLeech(t *testing.T) {
	params := card.DefaultDeckParams()
	params.LeechFails = 8

	cases := []struct {
		name       string
		successive int
		lapses     int
		want       bool
	}{
		{"below threshold", 0, 7, false},
		{"at threshold", 0, 8, true},
		{"still succeeding", 1, 8, false},
		{"every-4th beyond threshold", 0, 12, true},
		{"off-beat beyond threshold", 0, 10, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cd := &card.Card{Successive: c.successive, Lapses: c.lapses}
			assert.Equal(t, c.want, isLeech(params, cd))
		})
	}
}

func TestIsLeechDisabledWhenZero(t *testing.T) {
	params := card.DefaultDeckParams()
	params.LeechFails = 0
	c := &card.Card{Successive: 0, Lapses: 1000}
	assert.False(t, isLeech(params, c))
}
