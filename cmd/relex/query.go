package main

import (
	"fmt"

	"github.com/revelaction/relex/query"
	"github.com/revelaction/relex/render"
	"github.com/revelaction/relex/storage"
	"github.com/revelaction/relex/storage/filesystem"
	"github.com/revelaction/relex/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
)

const (
	formatTSV  = "tsv"
	formatJSON = "json"
)

func queryCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "look up lemmas in a frequency table interactively",
		ArgsUsage: "<table>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "unit",
				Usage: "unit of the table in a SQLite database",
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "kind of the table in a SQLite database (amod or svo)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "maximum number of rows per lookup, 0 for all",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatTSV,
				Usage:   "output format: tsv or json",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("query requires a <table> argument")
			}

			r, err := newRenderer(c.String("format"), ui)
			if err != nil {
				return err
			}

			rows, err := loadRows(c.Args().First(), c.String("unit"), c.String("kind"))
			if err != nil {
				return err
			}

			return query.NewHandler(rows, r, c.Int("limit"), ui.Out).Run()
		},
	}
}

func newRenderer(format string, ui UI) (render.Renderer, error) {
	switch format {
	case formatTSV:
		return render.NewTSVRenderer(ui.Out), nil
	case formatJSON:
		return render.NewJSONRenderer(ui.Out), nil
	}
	return nil, fmt.Errorf("unknown format %q (allowed: %s, %s)", format, formatTSV, formatJSON)
}

// loadRows reads a TSV table file, or the table unit/kind of a SQLite
// database. With a single table in the database, unit and kind may be
// omitted.
func loadRows(path, unit, kind string) ([]storage.Row, error) {
	if !isSqlite(path) {
		return filesystem.NewFileStore(path).Read(storage.Table{})
	}

	pool, err := zombiezen.Open(path)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	store := zombiezen.NewTableStore(pool)

	t, err := selectTable(store, unit, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store.Read(t)
}

func selectTable(store storage.TableReader, unit, kind string) (storage.Table, error) {
	if unit != "" && kind != "" {
		return storage.Table{Unit: unit, Kind: kind}, nil
	}

	tables, err := store.Tables()
	if err != nil {
		return storage.Table{}, err
	}

	var found []storage.Table
	for _, t := range tables {
		if (unit == "" || t.Unit == unit) && (kind == "" || t.Kind == kind) {
			found = append(found, t)
		}
	}

	switch len(found) {
	case 0:
		return storage.Table{}, storage.ErrNotFound
	case 1:
		return found[0], nil
	}
	return storage.Table{}, fmt.Errorf("%d tables match, use --unit and --kind", len(found))
}
