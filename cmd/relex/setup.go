package main

import (
	"path/filepath"
	"strings"

	"github.com/revelaction/relex/corpus"
	"github.com/revelaction/relex/storage"
	"github.com/revelaction/relex/storage/filesystem"
	"github.com/revelaction/relex/storage/sqlite/zombiezen"
)

var sqliteExts = []string{".db", ".sqlite", ".sqlite3"}

func isSqlite(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sqliteExts {
		if ext == e {
			return true
		}
	}
	return false
}

// NewTableRepository returns the store for the output path: a SQLite
// database for .db, .sqlite and .sqlite3 paths, otherwise a TSV file for
// whole-corpus runs or a directory of TSV files for per-directory runs.
// The returned close function releases the store.
func NewTableRepository(path string, g corpus.Granularity) (storage.TableRepository, func() error, error) {
	if isSqlite(path) {
		pool, err := zombiezen.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return zombiezen.NewTableStore(pool), pool.Close, nil
	}

	noop := func() error { return nil }
	if g == corpus.PerDirectory {
		return filesystem.NewTableStore(path), noop, nil
	}
	return filesystem.NewFileStore(path), noop, nil
}
