// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package card

// ReviewLogEntry is an immutable, append-only record of one answer.
type ReviewLogEntry struct {
	UUID   string `db:"uuid"` // google/uuid-generated; see scheduler.buildRevlogEntry
	CardID ID     `db:"card_id"`
	Time   int64  `db:"time"` // epoch seconds
	Ease   Ease   `db:"ease"`
	Flags  int    `db:"flags"`

	OldInterval float64 `db:"old_interval"`
	NewInterval float64 `db:"new_interval"`
	OldFactor   float64 `db:"old_factor"`
	NewFactor   float64 `db:"new_factor"`
	OldDue      int64   `db:"old_due"`
	NewDue      int64   `db:"new_due"`
}
