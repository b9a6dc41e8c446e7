package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/relex/render"
	"github.com/revelaction/relex/storage"
)

const tsvExt = ".tsv"

// TableStore keeps frequency tables as TSV files. A directory store holds
// one <unit>_<kind>.tsv file per table; a file store maps every table to
// a single file.
type TableStore struct {
	root   string
	single bool
}

var _ storage.TableRepository = (*TableStore)(nil)

// NewTableStore creates a store writing one file per table under dir.
func NewTableStore(dir string) *TableStore {
	return &TableStore{root: dir}
}

// NewFileStore creates a store backed by the single file at path.
func NewFileStore(path string) *TableStore {
	return &TableStore{root: path, single: true}
}

// Path returns the file of the table.
func (s *TableStore) Path(t storage.Table) string {
	if s.single {
		return s.root
	}
	return filepath.Join(s.root, t.Unit+"_"+t.Kind+tsvExt)
}

func (s *TableStore) Exists(t storage.Table) (bool, error) {
	_, err := os.Stat(s.Path(t))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *TableStore) Write(t storage.Table, rows []storage.Row) (err error) {
	path := s.Path(t)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", storage.ErrExists, path)
		}
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := render.NewTSVRenderer(f).Render(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (s *TableStore) Read(t storage.Table) ([]storage.Row, error) {
	path := s.Path(t)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	rows, err := render.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Tables lists the tables of the store. File names that do not follow
// <unit>_<kind>.tsv are ignored in a directory store.
func (s *TableStore) Tables() ([]storage.Table, error) {
	if s.single {
		name := strings.TrimSuffix(filepath.Base(s.root), tsvExt)
		return []storage.Table{tableForName(name)}, nil
	}

	files, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	var tables []storage.Table
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != tsvExt {
			continue
		}

		name := strings.TrimSuffix(file.Name(), tsvExt)
		if !strings.Contains(name, "_") {
			continue
		}
		tables = append(tables, tableForName(name))
	}

	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Unit != tables[j].Unit {
			return tables[i].Unit < tables[j].Unit
		}
		return tables[i].Kind < tables[j].Kind
	})

	return tables, nil
}

// tableForName splits <unit>_<kind> at the last underscore.
func tableForName(name string) storage.Table {
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return storage.Table{Unit: name}
	}
	return storage.Table{Unit: name[:i], Kind: name[i+1:]}
}
