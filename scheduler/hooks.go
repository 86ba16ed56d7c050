// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import "github.com/cardcache/srsched/card"

// Listener is notified after a card has been answered and fully
// persisted, replacing the source's global runHook("cardAnswered", ...)
// with an explicit, typed registration (spec.md §4.K). Listeners are
// fire-and-forget: they receive only the id, not the card, so they
// cannot mutate it.
type Listener func(cardID card.ID, isLeech bool)

// AddListener registers fn to be called after every successful
// AnswerCard. Listeners run synchronously, in registration order,
// after the answer has already committed.
func (s *Scheduler) AddListener(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Scheduler) notifyCardAnswered(cardID card.ID, isLeech bool) {
	for _, fn := range s.listeners {
		fn(cardID, isLeech)
	}
}
