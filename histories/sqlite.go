package histories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/reusee/e5"
	"github.com/reusee/taicalc/storages"
)

const SchemaVersion = "1"

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// SQLite keeps results as text so that NaN and infinities round trip.
type SQLite struct {
	db *sql.DB
}

var _ Store = new(SQLite)

func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := storages.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init(ctx context.Context) error {
	return storages.WithTx(ctx, s.db, func(tx storages.Tx) error {
		if _, err := tx.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				expression TEXT NOT NULL,
				result TEXT NOT NULL,
				display TEXT NOT NULL,
				time TEXT NOT NULL
			);
			CREATE TABLE IF NOT EXISTS metadata (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);
		`); err != nil {
			return wrap(err)
		}

		var version string
		err := tx.QueryRow(ctx, `SELECT value FROM metadata WHERE key = 'schema_version'`).Scan(&version)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.Exec(ctx, `INSERT INTO metadata (key, value) VALUES ('schema_version', ?)`, SchemaVersion); err != nil {
				return wrap(err)
			}
			return nil
		case err != nil:
			return wrap(err)
		case version != SchemaVersion:
			return fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
		}
		return nil
	})
}

func (s *SQLite) Append(ctx context.Context, entry Entry) (id int64, err error) {
	err = storages.WithTx(ctx, s.db, func(tx storages.Tx) error {
		res, err := tx.Exec(ctx,
			`INSERT INTO history (expression, result, display, time) VALUES (?, ?, ?, ?)`,
			entry.Expression,
			strconv.FormatFloat(entry.Result, 'g', -1, 64),
			entry.Display,
			entry.Time.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return wrap(err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return wrap(err)
		}
		return nil
	})
	return
}

func (s *SQLite) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expression, result, display, time FROM history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()

	var ret []Entry
	for rows.Next() {
		var entry Entry
		var result, t string
		if err := rows.Scan(&entry.ID, &entry.Expression, &result, &entry.Display, &t); err != nil {
			return nil, wrap(err)
		}
		entry.Result, err = strconv.ParseFloat(result, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d: result %q: %w", entry.ID, result, err)
		}
		entry.Time, err = time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return nil, fmt.Errorf("entry %d: time %q: %w", entry.ID, t, err)
		}
		ret = append(ret, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return ret, nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return wrap(err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
