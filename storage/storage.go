package storage

import "errors"

var (
	// ErrExists is returned when a destination table already exists.
	ErrExists = errors.New("output already exists")

	// ErrNotFound is returned when a table is not in the store.
	ErrNotFound = errors.New("table not found")
)

// Row is one distinct pattern with its count.
type Row struct {
	Fields []string `json:"fields"`
	Count  int      `json:"count"`
}

// Table identifies a frequency table in a store.
type Table struct {
	Unit string `json:"unit"`
	Kind string `json:"kind"`
}

// TableReader defines read operations for frequency table storage
type TableReader interface {
	// Read returns the rows of a table in stored order.
	Read(t Table) ([]Row, error)

	// Tables returns the tables present in the store.
	Tables() ([]Table, error)
}

// TableWriter defines write operations for frequency table storage
type TableWriter interface {
	// Exists reports whether the destination of a table is already taken.
	Exists(t Table) (bool, error)

	// Write persists the rows of a table. It fails with ErrExists instead
	// of overwriting.
	Write(t Table, rows []Row) error
}

// TableRepository combines read and write operations
type TableRepository interface {
	TableReader
	TableWriter
}
