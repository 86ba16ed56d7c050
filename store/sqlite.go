// Copyright: Jonathan Hall
// License: GNU AGPL, Version 3 or later; http://www.gnu.org/licenses/agpl.html

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/cardcache/srsched/card"
)

// schema is the minimal table set spec.md §6 names. Column names match
// card.Card/card.Fact/card.ReviewLogEntry's `db` tags.
const schema = `
CREATE TABLE IF NOT EXISTS cards (
	id integer primary key,
	fact_id integer not null,
	model_id integer not null,
	queue integer not null,
	type integer not null,
	due integer not null,
	interval real not null default 0,
	last_interval real not null default 0,
	factor real not null default 2.5,
	reps integer not null default 0,
	lapses integer not null default 0,
	successive integer not null default 0,
	cycles integer not null default 0,
	grade integer not null default 0,
	last_due integer not null default 0,
	modified integer not null default 0
);
CREATE INDEX IF NOT EXISTS idx_cards_fact ON cards(fact_id);
CREATE INDEX IF NOT EXISTS idx_cards_queue_due ON cards(queue, due);

CREATE TABLE IF NOT EXISTS facts (
	id integer primary key,
	tags text not null default '',
	modified integer not null default 0
);

CREATE TABLE IF NOT EXISTS tags (
	id integer primary key,
	name text not null unique
);

CREATE TABLE IF NOT EXISTS card_tags (
	card_id integer not null,
	tag_id integer not null
);

CREATE TABLE IF NOT EXISTS models (
	id integer primary key,
	config text not null
);

CREATE TABLE IF NOT EXISTS revlog (
	uuid text primary key,
	card_id integer not null,
	time integer not null,
	ease integer not null,
	flags integer not null default 0,
	old_interval real not null default 0,
	new_interval real not null default 0,
	old_factor real not null default 0,
	new_factor real not null default 0,
	old_due integer not null default 0,
	new_due integer not null default 0
);
`

// execer is the subset of *sqlx.DB and *sqlx.Tx the store needs; it
// lets WithTx hand query methods a live transaction without the store
// caring which one it has.
type execer interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	Rebind(query string) string
}

// SQLiteStore is the default Store implementation, grounded on
// flimzy-anki's DB wrapper over sqlx + go-sqlite3.
type SQLiteStore struct {
	conn *sqlx.DB // nil inside a transaction-scoped SQLiteStore
	db   execer
}

// Open opens (creating if necessary) a SQLite-backed collection at
// path, and ensures the schema above exists.
func Open(path string) (*SQLiteStore, error) {
	conn, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate schema: %w", err)
	}
	return &SQLiteStore{conn: conn, db: conn}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *SQLiteStore) DueLearning(ctx context.Context, cutoff int64, limit int) ([]*card.Card, error) {
	rows := []*card.Card{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM cards WHERE queue = ? AND due < ? ORDER BY due LIMIT ?`,
		card.QueueLearn, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("store: DueLearning: %w", err)
	}
	return rows, nil
}

func tagFilterClause(filter TagFilter, baseWhere string) (string, []interface{}) {
	where := baseWhere
	args := []interface{}{}
	if len(filter.ActiveTagIDs) > 0 {
		where += ` AND c.id IN (SELECT card_id FROM card_tags WHERE tag_id IN (` + placeholders(len(filter.ActiveTagIDs)) + `))`
		for _, id := range filter.ActiveTagIDs {
			args = append(args, id)
		}
	}
	if len(filter.InactiveTagIDs) > 0 {
		where += ` AND c.id NOT IN (SELECT card_id FROM card_tags WHERE tag_id IN (` + placeholders(len(filter.InactiveTagIDs)) + `))`
		for _, id := range filter.InactiveTagIDs {
			args = append(args, id)
		}
	}
	return where, args
}

func placeholders(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += "?"
	}
	return out
}

func revOrderClause(order card.RevOrder) string {
	switch order {
	case card.RevOrderIntervalDesc:
		return "interval DESC"
	case card.RevOrderIntervalAsc:
		return "interval ASC"
	case card.RevOrderFactThenOrdinal:
		return "fact_id, id"
	default:
		return "due"
	}
}

func newOrderClause(order card.NewOrder) string {
	if order == card.NewOrderDueDesc {
		return "due DESC"
	}
	return "due"
}

func (s *SQLiteStore) DueReviewIDs(ctx context.Context, filter TagFilter, cutoff int64, after bool, order card.RevOrder, limit int) ([]card.ID, error) {
	cmp := "<"
	if after {
		cmp = ">"
	}
	where, args := tagFilterClause(filter, fmt.Sprintf("queue = %d AND due %s ?", card.QueueReview, cmp))
	args = append([]interface{}{cutoff}, args...)
	q := fmt.Sprintf(`SELECT c.id FROM cards c WHERE %s ORDER BY %s LIMIT ?`, where, revOrderClause(order))
	args = append(args, limit)
	var ids []card.ID
	if err := s.db.SelectContext(ctx, &ids, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("store: DueReviewIDs: %w", err)
	}
	return ids, nil
}

func (s *SQLiteStore) CountReview(ctx context.Context, filter TagFilter, cutoff int64, after bool) (int, error) {
	cmp := "<"
	if after {
		cmp = ">"
	}
	where, args := tagFilterClause(filter, fmt.Sprintf("queue = %d AND due %s ?", card.QueueReview, cmp))
	args = append([]interface{}{cutoff}, args...)
	q := fmt.Sprintf(`SELECT count(*) FROM cards c WHERE %s`, where)
	var n int
	if err := s.db.GetContext(ctx, &n, s.db.Rebind(q), args...); err != nil {
		return 0, fmt.Errorf("store: CountReview: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) DueNewIDs(ctx context.Context, filter TagFilter, cutoff int64, order card.NewOrder, limit int) ([]card.ID, error) {
	where, args := tagFilterClause(filter, fmt.Sprintf("queue = %d AND due < ?", card.QueueNew))
	args = append([]interface{}{cutoff}, args...)
	q := fmt.Sprintf(`SELECT c.id FROM cards c WHERE %s ORDER BY %s LIMIT ?`, where, newOrderClause(order))
	args = append(args, limit)
	var ids []card.ID
	if err := s.db.SelectContext(ctx, &ids, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("store: DueNewIDs: %w", err)
	}
	return ids, nil
}

func (s *SQLiteStore) CountNew(ctx context.Context, filter TagFilter, cutoff int64) (int, error) {
	where, args := tagFilterClause(filter, fmt.Sprintf("queue = %d AND due < ?", card.QueueNew))
	args = append([]interface{}{cutoff}, args...)
	q := fmt.Sprintf(`SELECT count(*) FROM cards c WHERE %s`, where)
	var n int
	if err := s.db.GetContext(ctx, &n, s.db.Rebind(q), args...); err != nil {
		return 0, fmt.Errorf("store: CountNew: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) GetCard(ctx context.Context, id card.ID) (*card.Card, error) {
	c := &card.Card{}
	if err := s.db.GetContext(ctx, c, `SELECT * FROM cards WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("store: GetCard %d: %w", id, err)
	}
	return c, nil
}

func (s *SQLiteStore) SaveCard(ctx context.Context, c *card.Card) error {
	_, err := s.db.NamedExecContext(ctx, `
		UPDATE cards SET
			fact_id=:fact_id, model_id=:model_id, queue=:queue, type=:type,
			due=:due, interval=:interval, last_interval=:last_interval,
			factor=:factor, reps=:reps, lapses=:lapses, successive=:successive,
			cycles=:cycles, grade=:grade, last_due=:last_due, modified=:modified
		WHERE id=:id`, c)
	if err != nil {
		return fmt.Errorf("store: SaveCard %d: %w", c.ID, err)
	}
	return nil
}

func (s *SQLiteStore) SpaceSiblings(ctx context.Context, c *card.Card, cutoff int64, newDue int64, revSpacing float64, now int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE cards SET
			due = CASE
				WHEN queue = ? THEN due + CAST(86400.0 * (CASE WHEN interval * ? < 1 THEN 0 ELSE interval * ? END) AS integer)
				WHEN queue = ? THEN ?
				ELSE due
			END,
			modified = ?
		WHERE id != ? AND fact_id = ? AND due < ? AND queue IN (?, ?)`,
		card.QueueReview, revSpacing, revSpacing,
		card.QueueNew, newDue,
		now,
		c.ID, c.FactID, cutoff,
		card.QueueReview, card.QueueNew,
	)
	if err != nil {
		return fmt.Errorf("store: SpaceSiblings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ModelConfig(ctx context.Context, modelID card.ID) (*card.ModelConfig, error) {
	var cfg card.ModelConfig
	var raw []byte
	if err := s.db.GetContext(ctx, &raw, `SELECT config FROM models WHERE id = ?`, modelID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrConfigMissing
		}
		return nil, fmt.Errorf("store: ModelConfig %d: %w", modelID, err)
	}
	if err := cfg.Scan(raw); err != nil {
		return nil, fmt.Errorf("store: ModelConfig %d decode: %w", modelID, err)
	}
	return &cfg, nil
}

func (s *SQLiteStore) TagIDs(ctx context.Context, names []string) ([]card.ID, error) {
	if len(names) == 0 {
		return nil, nil
	}
	q, args := `SELECT id FROM tags WHERE name IN (`+placeholders(len(names))+`)`, make([]interface{}, len(names))
	for i, n := range names {
		args[i] = n
	}
	var ids []card.ID
	if err := s.db.SelectContext(ctx, &ids, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("store: TagIDs: %w", err)
	}
	return ids, nil
}

func (s *SQLiteStore) FactTags(ctx context.Context, factID card.ID) (card.Tags, error) {
	var raw string
	if err := s.db.GetContext(ctx, &raw, `SELECT tags FROM facts WHERE id = ?`, factID); err != nil {
		return nil, fmt.Errorf("store: FactTags %d: %w", factID, err)
	}
	return card.ParseTags(raw), nil
}

func (s *SQLiteStore) AddFactTag(ctx context.Context, factID card.ID, tag string, now int64) error {
	tags, err := s.FactTags(ctx, factID)
	if err != nil {
		return err
	}
	tags = tags.AddTag(tag)
	_, err = s.db.ExecContext(ctx, `UPDATE facts SET tags = ?, modified = ? WHERE id = ?`, tags.String(), now, factID)
	if err != nil {
		return fmt.Errorf("store: AddFactTag %d: %w", factID, err)
	}
	return nil
}

func (s *SQLiteStore) AppendRevlog(ctx context.Context, entry *card.ReviewLogEntry) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO revlog (uuid, card_id, time, ease, flags, old_interval, new_interval, old_factor, new_factor, old_due, new_due)
		VALUES (:uuid, :card_id, :time, :ease, :flags, :old_interval, :new_interval, :old_factor, :new_factor, :old_due, :new_due)`, entry)
	if err != nil {
		return fmt.Errorf("store: AppendRevlog: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RestoreBuried(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `UPDATE cards SET queue = type WHERE queue = ?`, card.QueueSchedBuried)
	if err != nil {
		if strings.Contains(err.Error(), "no such column") {
			return fmt.Errorf("%w: %v", ErrSchemaOutOfDate, err)
		}
		return fmt.Errorf("store: RestoreBuried: %w", err)
	}
	return nil
}

// WithTx runs fn against a single *sqlx.Tx, so every store call inside
// fn becomes visible together or not at all (spec.md §5). It can only
// be called on a store opened with Open, not on a store already
// handed to a WithTx callback.
func (s *SQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.conn == nil {
		return fmt.Errorf("store: WithTx called on a transaction-scoped store")
	}
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	txStore := &SQLiteStore{db: tx}
	if err := fn(txStore); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit tx: %w", err)
	}
	return nil
}
