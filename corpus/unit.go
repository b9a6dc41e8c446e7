package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDuplicateUnit is returned when a top-level directory has the name of
// the root and the root also holds files.
var ErrDuplicateUnit = errors.New("duplicate unit name")

// Granularity decides how input files are grouped into frequency tables.
type Granularity string

const (
	// Whole aggregates the entire input tree into one table.
	Whole Granularity = "corpus"
	// PerDirectory aggregates each top-level subdirectory into its own table.
	PerDirectory Granularity = "directory"
)

func (g Granularity) Validate() error {
	switch g {
	case Whole, PerDirectory:
		return nil
	}
	return fmt.Errorf("unknown granularity %q (allowed: %s, %s)", g, Whole, PerDirectory)
}

// Unit is a group of input files aggregated into one frequency table.
type Unit struct {
	Name  string
	Files []string
}

// Discover groups the files under root into units.
//
// With Whole granularity there is exactly one unit, named after root. With
// PerDirectory granularity every top-level subdirectory of root is a unit
// holding its files recursively; files directly under root form a unit
// named after root. A root that is a file is a single unit in both cases.
// Hidden files and directories are ignored. If ext is not empty, only files
// with that suffix are kept. Units are sorted by name and files by path.
func Discover(root string, g Granularity, ext string) ([]Unit, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("input not found: %w", err)
	}

	name := filepath.Base(filepath.Clean(root))

	if !info.IsDir() {
		return []Unit{{Name: name, Files: []string{root}}}, nil
	}

	if g == Whole {
		files, err := walk(root, ext)
		if err != nil {
			return nil, err
		}
		return []Unit{{Name: name, Files: files}}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var units []Unit
	var top []string
	for _, e := range entries {
		if isHidden(e.Name()) {
			continue
		}

		path := filepath.Join(root, e.Name())
		if e.IsDir() {
			files, err := walk(path, ext)
			if err != nil {
				return nil, err
			}
			units = append(units, Unit{Name: e.Name(), Files: files})
			continue
		}

		if e.Type().IsRegular() && hasExt(e.Name(), ext) {
			top = append(top, path)
		}
	}

	if len(top) > 0 {
		for _, u := range units {
			if u.Name == name {
				return nil, fmt.Errorf("%w: directory %s and the files under %s", ErrDuplicateUnit, filepath.Join(root, name), root)
			}
		}
		units = append(units, Unit{Name: name, Files: top})
	}

	sort.Slice(units, func(i, j int) bool {
		return units[i].Name < units[j].Name
	})

	return units, nil
}

func walk(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && hasExt(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func hasExt(name, ext string) bool {
	return ext == "" || strings.HasSuffix(name, ext)
}
