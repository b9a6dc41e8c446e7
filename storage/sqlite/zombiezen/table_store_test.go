package zombiezen

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/revelaction/relex/storage"
)

func newStore(t *testing.T) *TableStore {
	t.Helper()

	pool, err := Open(filepath.Join(t.TempDir(), "relex.db"))
	if err != nil {
		t.Fatalf("failed to open pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	// idempotent
	if err := CreateSchemas(pool, TablesSchema); err != nil {
		t.Fatalf("failed to re-create schema: %v", err)
	}

	return NewTableStore(pool)
}

func TestTableStoreWriteRead(t *testing.T) {
	s := newStore(t)
	tb := storage.Table{Unit: "news", Kind: "svo"}
	rows := []storage.Row{
		{Fields: []string{"cat", "chase", "mouse"}, Count: 4},
		{Fields: []string{"dog", "sleep", "[NONE]"}, Count: 1},
	}

	exists, err := s.Exists(tb)
	if err != nil || exists {
		t.Fatalf("expected no table, got %v %v", exists, err)
	}

	if err := s.Write(tb, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Read(tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("expected %v, got %v", rows, got)
	}

	tables, err := s.Tables()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 || tables[0] != tb {
		t.Errorf("expected [%v], got %v", tb, tables)
	}
}

func TestTableStoreRefusesOverwrite(t *testing.T) {
	s := newStore(t)
	tb := storage.Table{Unit: "news", Kind: "amod"}

	if err := s.Write(tb, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := s.Exists(tb)
	if err != nil || !exists {
		t.Fatalf("expected empty table to exist, got %v %v", exists, err)
	}

	err = s.Write(tb, []storage.Row{{Fields: []string{"big", "dog"}, Count: 1}})
	if !errors.Is(err, storage.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	got, err := s.Read(tb)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected rolled back write, got %v", got)
	}
}

func TestTableStoreReadMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Read(storage.Table{Unit: "none", Kind: "amod"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenKeepsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relex.db")
	tb := storage.Table{Unit: "news", Kind: "amod"}
	rows := []storage.Row{{Fields: []string{"big", "cat"}, Count: 2}}

	pool, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	if err := NewTableStore(pool).Write(tb, rows); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	pool.Close()

	// reopening runs the schema again without touching stored tables
	pool, err = Open(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer pool.Close()

	got, err := NewTableStore(pool).Read(tb)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("expected %v, got %v", rows, got)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing", "relex.db")); err == nil {
		t.Error("expected error for missing directory")
	}
}
