package storages

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestWithTx(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)`); err != nil {
		t.Fatal(err)
	}

	err = WithTx(ctx, db, func(tx Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO kv (k, v) VALUES (?, ?)`, "a", "1")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	rollback := errors.New("rollback")
	err = WithTx(ctx, db, func(tx Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO kv (k, v) VALUES (?, ?)`, "b", "2"); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("got %v", err)
	}

	var n int
	err = WithTx(ctx, db, func(tx Tx) error {
		return tx.QueryRow(ctx, `SELECT count(*) FROM kv`).Scan(&n)
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("got %v", n)
	}
}

func TestOpenSQLiteBadPath(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "missing", "dir", "test.db"))
	if err == nil {
		t.Fatal("should error")
	}
}
