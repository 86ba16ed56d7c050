// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package store

import "errors"

// ErrConfigMissing is returned by ModelConfig when no row exists for
// the requested model id (spec.md §7, ConfigMissing).
var ErrConfigMissing = errors.New("store: model config missing")

// ErrSchemaOutOfDate is returned by RestoreBuried against a legacy
// store that predates the SchedBuried sentinel (spec.md §7,
// SchemaOutOfDate).
var ErrSchemaOutOfDate = errors.New("store: schema out of date")
