// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package scheduler

import (
	"context"
	"math"

	"github.com/cardcache/srsched/card"
)

// GetCard returns the next card the learner should study, or nil if
// nothing is due. It probes for day rollover first (spec.md §4.A:
// "checkDay() is invoked before every getCard()").
func (s *Scheduler) GetCard(ctx context.Context) (*card.Card, error) {
	if err := s.checkDay(ctx); err != nil {
		return nil, err
	}
	id, ok, err := s.getCardID(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return s.store.GetCard(ctx, id)
}

// getCardID implements the fixed five-step priority order from
// spec.md §4.E.
func (s *Scheduler) getCardID(ctx context.Context) (card.ID, bool, error) {
	// 1. a learning card that is actually due now
	if id, ok := s.getLearnCard(false); ok {
		return id, true, nil
	}
	// 2. time for a new card?
	if s.timeForNewCard() {
		if id, ok, err := s.getNewCard(ctx); err != nil || ok {
			return id, ok, err
		}
	}
	// 3. a review card due for review
	if id, ok, err := s.getReviewCard(ctx); err != nil || ok {
		return id, ok, err
	}
	// 4. any new card left
	if id, ok, err := s.getNewCard(ctx); err != nil || ok {
		return id, ok, err
	}
	// 5. collapse / end-of-session wind-down
	if id, ok := s.getLearnCard(true); ok {
		return id, true, nil
	}
	return 0, false, nil
}

// timeForNewCard implements the distribution policy from spec.md
// §4.E, fully specified (the source's short-circuit to false is not
// carried forward — see SPEC_FULL.md §9).
func (s *Scheduler) timeForNewCard() bool {
	if s.newCount == 0 {
		return false
	}
	switch s.params.NewCardSpacing {
	case card.NewCardSpacingLast:
		return false
	case card.NewCardSpacingFirst:
		return true
	default: // Distribute
		if s.newCardModulus == 0 {
			return false
		}
		return s.repsToday%s.newCardModulus == 0
	}
}

// updateNewCardRatio recomputes newCardModulus, used by
// timeForNewCard under Distribute spacing.
func (s *Scheduler) updateNewCardRatio() {
	if s.params.NewCardSpacing != card.NewCardSpacingDistribute || s.newCount == 0 {
		s.newCardModulus = 0
		return
	}
	modulus := int(math.Ceil(float64(s.newCount+s.revCount) / float64(s.newCount)))
	if s.revCount > 0 && modulus < 2 {
		modulus = 2
	}
	s.newCardModulus = modulus
}
