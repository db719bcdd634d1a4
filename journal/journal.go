// ════════════════════════════════════════════════════════════════════════════════════════════════
// Soak Run Journal
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Persistence
//
// Description:
//   Appends soak results to a sqlite database so ring behaviour can be
//   compared across builds and machines. The final ring Stats are stored
//   as the JSON document ringdump produces.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package journal

import (
	"database/sql"
	"fmt"
	"time"

	"spscring/ringdump"
	"spscring/soak"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at     INTEGER NOT NULL,
	mode            TEXT    NOT NULL,
	slots           INTEGER NOT NULL,
	items           INTEGER NOT NULL,
	popped          INTEGER NOT NULL,
	overflows       INTEGER NOT NULL,
	out_of_order    INTEGER NOT NULL,
	corrupt         INTEGER NOT NULL,
	aborted         INTEGER NOT NULL,
	intact          INTEGER NOT NULL,
	elapsed_ns      INTEGER NOT NULL,
	producer_digest TEXT    NOT NULL,
	consumer_digest TEXT    NOT NULL,
	final_stats     TEXT    NOT NULL
)`

// Entry is one journalled run.
type Entry struct {
	ID         int64
	RecordedAt time.Time
	Intact     bool
	Result     soak.Result
}

// Journal is an append-only log of soak runs.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the journal at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create schema: %w", err)
	}
	return &Journal{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends res and returns its row id.
func (j *Journal) Record(res soak.Result) (int64, error) {
	final, err := ringdump.Marshal(res.Final)
	if err != nil {
		return 0, err
	}
	out, err := j.db.Exec(`
		INSERT INTO runs (
			recorded_at, mode, slots, items, popped, overflows, out_of_order,
			corrupt, aborted, intact, elapsed_ns, producer_digest,
			consumer_digest, final_stats
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.now().UnixNano(),
		string(res.Mode),
		res.Slots,
		int64(res.Items),
		int64(res.Popped),
		int64(res.Overflows),
		int64(res.OutOfOrder),
		int64(res.Corrupt),
		res.Aborted,
		res.Intact(),
		int64(res.Elapsed),
		res.ProducerDigest,
		res.ConsumerDigest,
		string(final),
	)
	if err != nil {
		return 0, fmt.Errorf("journal: insert: %w", err)
	}
	return out.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT id, recorded_at, mode, slots, items, popped, overflows,
		       out_of_order, corrupt, aborted, intact, elapsed_ns,
		       producer_digest, consumer_digest, final_stats
		FROM runs
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                   Entry
			recordedAt, elapsed int64
			items, popped       int64
			overflows, ooo      int64
			corrupt             int64
			mode, final         string
		)
		if err := rows.Scan(
			&e.ID, &recordedAt, &mode, &e.Result.Slots, &items, &popped,
			&overflows, &ooo, &corrupt, &e.Result.Aborted, &e.Intact,
			&elapsed, &e.Result.ProducerDigest, &e.Result.ConsumerDigest, &final,
		); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		stats, err := ringdump.DecodeStats([]byte(final))
		if err != nil {
			return nil, fmt.Errorf("journal: run %d: %w", e.ID, err)
		}
		e.RecordedAt = time.Unix(0, recordedAt)
		e.Result.Mode = soak.Mode(mode)
		e.Result.Items = uint64(items)
		e.Result.Popped = uint64(popped)
		e.Result.Overflows = uint64(overflows)
		e.Result.OutOfOrder = uint64(ooo)
		e.Result.Corrupt = uint64(corrupt)
		e.Result.Elapsed = time.Duration(elapsed)
		e.Result.Final = stats
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: rows: %w", err)
	}
	return entries, nil
}
