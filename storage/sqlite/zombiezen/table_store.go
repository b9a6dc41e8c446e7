package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/relex/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// fieldSeparator joins pattern fields in the fields column. CoNLL-U
// fields never contain tabs.
const fieldSeparator = "\t"

type TableStore struct {
	pool *sqlitex.Pool
}

var _ storage.TableRepository = (*TableStore)(nil)

// NewTableStore returns a store on pool. CreateSchemas(pool, TablesSchema)
// must have been run.
func NewTableStore(pool *sqlitex.Pool) *TableStore {
	return &TableStore{pool: pool}
}

func (h *TableStore) Exists(t storage.Table) (bool, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return false, err
	}
	defer h.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT 1 FROM tables WHERE unit = ? AND kind = ? LIMIT 1", &sqlitex.ExecOptions{
		Args: []interface{}{t.Unit, t.Kind},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return nil
		},
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (h *TableStore) Write(t storage.Table, rows []storage.Row) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO tables (unit, kind, created) VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))", &sqlitex.ExecOptions{
		Args: []interface{}{t.Unit, t.Kind},
	})
	if err != nil {
		if sqlite.ErrCode(err).ToPrimary() == sqlite.ResultConstraint {
			return fmt.Errorf("%w: table %s/%s", storage.ErrExists, t.Unit, t.Kind)
		}
		return fmt.Errorf("failed to insert table: %w", err)
	}

	for _, row := range rows {
		err = sqlitex.Execute(conn, "INSERT INTO patterns (unit, kind, fields, count) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{t.Unit, t.Kind, strings.Join(row.Fields, fieldSeparator), row.Count},
		})
		if err != nil {
			return fmt.Errorf("failed to insert pattern: %w", err)
		}
	}

	return nil
}

func (h *TableStore) Read(t storage.Table) ([]storage.Row, error) {
	exists, err := h.Exists(t)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s/%s", storage.ErrNotFound, t.Unit, t.Kind)
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var rows []storage.Row
	err = sqlitex.Execute(conn, "SELECT fields, count FROM patterns WHERE unit = ? AND kind = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{t.Unit, t.Kind},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, storage.Row{
				Fields: strings.Split(stmt.ColumnText(0), fieldSeparator),
				Count:  stmt.ColumnInt(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (h *TableStore) Tables() ([]storage.Table, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var tables []storage.Table
	err = sqlitex.Execute(conn, "SELECT unit, kind FROM tables ORDER BY unit, kind", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			tables = append(tables, storage.Table{Unit: stmt.ColumnText(0), Kind: stmt.ColumnText(1)})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return tables, nil
}
