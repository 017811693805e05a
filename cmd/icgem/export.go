package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/geomodelling/icgem"
	"github.com/geomodelling/icgem/coeffs"
)

var (
	exportDegree int
	exportOrder  int
)

var exportCmd = &cobra.Command{
	Use:   "export <model.gfc> <out.db>",
	Short: "Extract static coefficients into a SQLite database",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := warnOpts()

		// Resolve the window: default to the file's own maximum.
		probe := icgem.Open(args[0])
		if err := probe.ParseHeader(); err != nil {
			return err
		}
		if _, _, err := probe.Inspect(opts); err != nil {
			return err
		}
		degree, order := exportDegree, exportOrder
		if degree < 0 {
			degree = probe.Degree()
		}
		if order < 0 {
			order = degree
		}

		store, err := coeffs.NewStore(degree)
		if err != nil {
			return err
		}
		m, err := icgem.ParseModel(args[0], degree, order, store, opts)
		if err != nil {
			return err
		}

		if err = writeDB(args[1], m, store, degree, order); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %s up to degree %d, order %d -> %s\n",
			m.ModelName, degree, order, args[1])

		return nil
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportDegree, "degree", -1, "max degree to export (default: file maximum)")
	exportCmd.Flags().IntVar(&exportOrder, "order", -1, "max order to export (default: degree)")
}

const exportSchema = `
CREATE TABLE IF NOT EXISTS model (
	name TEXT NOT NULL,
	product_type TEXT,
	gm REAL,
	radius REAL,
	max_degree INTEGER,
	tide_system TEXT,
	norm TEXT
);
CREATE TABLE IF NOT EXISTS coefficients (
	l INTEGER NOT NULL,
	m INTEGER NOT NULL,
	c REAL NOT NULL,
	s REAL NOT NULL,
	PRIMARY KEY (l, m)
) WITHOUT ROWID;
`

// writeDB bulk-inserts the extracted window inside one transaction with
// a prepared statement.
func writeDB(path string, m *icgem.Model, store *coeffs.Store, degree, order int) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	if _, err = db.Exec("PRAGMA synchronous = OFF"); err != nil {
		return err
	}
	if _, err = db.Exec(exportSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(
		`INSERT INTO model (name, product_type, gm, radius, max_degree, tide_system, norm)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ModelName, m.ProductType, m.GM, m.Radius, m.MaxDegree, m.TideSystem, m.Norm,
	); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO coefficients (l, m, c, s) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for l := 0; l <= degree; l++ {
		for mm := 0; mm <= l && mm <= order; mm++ {
			c, _ := store.C(l, mm)
			s, _ := store.S(l, mm)
			if _, err = stmt.Exec(l, mm, c, s); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("insert C(%d,%d): %w", l, mm, err)
			}
		}
	}

	return tx.Commit()
}
