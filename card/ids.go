// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

// Package card holds the record types the scheduler reads and writes:
// cards, facts, per-model configuration and review log entries. The
// scheduler only ever sees these through the store.Store interface; it
// never depends on a particular storage engine.
package card

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// ID is a stable identifier for a card, fact or model, stored as an
// integer primary key.
type ID int64

// Scan implements the sql.Scanner interface for the ID type.
func (i *ID) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*i = ID(v)
	case float64:
		*i = ID(int64(v))
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*i = ID(n)
	case nil:
		*i = 0
	default:
		return fmt.Errorf("incompatible type for card.ID: %T", v)
	}
	return nil
}

// Value implements the driver.Valuer interface for the ID type.
func (i ID) Value() (driver.Value, error) {
	return int64(i), nil
}
