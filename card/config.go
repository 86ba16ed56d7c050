// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package card

import "encoding/json"

// ModelConfig is the per-model (per note type) learning/lapse
// configuration, stored as a JSON blob in the models table and cached
// by the scheduler's config resolver.
type ModelConfig struct {
	New struct {
		// Delays are minutes between learning steps.
		Delays []float64 `json:"delays"`
		// Ints are day intervals for the three graduation paths:
		// [0]=graduate, [1]=first-remove-bonus, [2]=normal-remove.
		Ints [3]float64 `json:"ints"`
	} `json:"new"`
	Lapse struct {
		Delays []float64  `json:"delays"`
		Ints   [3]float64 `json:"ints"`
	} `json:"lapse"`
}

// Scan implements the sql.Scanner interface for ModelConfig, decoding
// the JSON blob stored in models.config.
func (m *ModelConfig) Scan(src interface{}) error {
	var blob []byte
	switch v := src.(type) {
	case []byte:
		blob = v
	case string:
		blob = []byte(v)
	default:
		return errUnsupportedScanType("ModelConfig", src)
	}
	return json.Unmarshal(blob, m)
}

func errUnsupportedScanType(typeName string, src interface{}) error {
	return &scanTypeError{typeName: typeName, src: src}
}

type scanTypeError struct {
	typeName string
	src      interface{}
}

func (e *scanTypeError) Error() string {
	return "card: incompatible type for " + e.typeName + " scan"
}

// NewCardSpacing controls how new cards are distributed across a
// session relative to reviews.
type NewCardSpacing int

const (
	NewCardSpacingDistribute NewCardSpacing = iota
	NewCardSpacingLast
	NewCardSpacingFirst
)

// RevOrder selects the comparator used to pre-order the review queue.
type RevOrder int

const (
	RevOrderIntervalDesc RevOrder = iota
	RevOrderIntervalAsc
	RevOrderDue
	RevOrderFactThenOrdinal
)

// NewOrder selects the comparator used to pre-order the new queue.
type NewOrder int

const (
	NewOrderDue NewOrder = iota
	NewOrderDueAlso // historically a second "due" entry in Anki's table; kept for index compatibility
	NewOrderDueDesc
)

// DeckParams holds the process-wide tunables described in spec.md §3.
// Unlike ModelConfig (per note type, read from the store), DeckParams
// is typically loaded once at process start from a config file; see
// package config.
type DeckParams struct {
	CollapseTime   int64 `toml:"collapse_time"`   // seconds
	UTCOffset      int64 `toml:"utc_offset"`       // seconds east of UTC
	LocalTZOffset  int64 `toml:"local_tz_offset"` // seconds east of UTC for the local zone, stdlib time.timezone analogue

	NewCardsPerDay int            `toml:"new_cards_per_day"`
	NewCardSpacing NewCardSpacing `toml:"new_card_spacing"`

	QueueLimit int `toml:"queue_limit"`
	LearnLimit int `toml:"learn_limit"`

	HardIntervalMin float64 `toml:"hard_interval_min"`
	HardIntervalMax float64 `toml:"hard_interval_max"`
	MidIntervalMin  float64 `toml:"mid_interval_min"`
	MidIntervalMax  float64 `toml:"mid_interval_max"`
	EasyIntervalMin float64 `toml:"easy_interval_min"`
	EasyIntervalMax float64 `toml:"easy_interval_max"`

	Delay0 float64 `toml:"delay0"`
	Delay1 float64 `toml:"delay1"`
	Delay2 float64 `toml:"delay2"`

	FactorFour float64 `toml:"factor_four"`
	RevSpacing float64 `toml:"rev_spacing"`
	NewSpacing int64   `toml:"new_spacing"` // seconds

	AverageFactor float64 `toml:"average_factor"`

	LeechFails      int  `toml:"leech_fails"`
	SuspendLeeches  bool `toml:"suspend_leeches"`

	RevCardOrder RevOrder `toml:"rev_card_order"`
	NewCardOrder NewOrder `toml:"new_card_order"`

	ActiveTags   string `toml:"active_tags"`
	InactiveTags string `toml:"inactive_tags"`

	DeckCreated int64 `toml:"deck_created"` // epoch seconds; used for dayCount
}

// DefaultDeckParams matches the constants hard-coded in sched.py, so a
// deck with no config file on disk behaves like stock Anki.
func DefaultDeckParams() DeckParams {
	return DeckParams{
		CollapseTime:    1200,
		QueueLimit:      200,
		LearnLimit:      1000,
		NewCardsPerDay:  20,
		NewCardSpacing:  NewCardSpacingDistribute,
		HardIntervalMin: 1.0,
		HardIntervalMax: 1.1,
		MidIntervalMin:  3.0,
		MidIntervalMax:  5.0,
		EasyIntervalMin: 7.0,
		EasyIntervalMax: 9.0,
		Delay0:          600,
		Delay1:          600,
		Delay2:          0,
		FactorFour:      1.3,
		RevSpacing:      0.1,
		NewSpacing:      60,
		AverageFactor:   2.5,
		LeechFails:      16,
		SuspendLeeches:  true,
		RevCardOrder:    RevOrderDue,
		NewCardOrder:    NewOrderDue,
	}
}
