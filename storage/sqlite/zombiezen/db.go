package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// A command runs one statement at a time on the store; the second
// connection serves Exists while a listing is still open.
const poolSize = 2

// Open opens the relex database at path, creating the file and the table
// schema when missing. The caller closes the pool.
func Open(path string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+path, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite %s: %w", path, err)
	}

	if err := CreateSchemas(pool, TablesSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
