package output

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ukaji3/htmltable-go/pkg/tablescrape/models"
)

// DefaultTableName is the SQLite table cells are written to.
const DefaultTableName = "cells"

// WriteSQLiteFile replaces path with a SQLite database holding one record
// per cell: (row, col, value), both indexes 1-based. Ragged rows keep their
// own width.
func WriteSQLiteFile(path string, t models.Table, tableName string) (err error) {
	if tableName == "" {
		tableName = DefaultTableName
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing existing database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	table := fmt.Sprintf("%q", tableName)
	if _, err := db.Exec(`CREATE TABLE ` + table + ` ("row" INTEGER NOT NULL, "col" INTEGER NOT NULL, "value" TEXT NOT NULL, PRIMARY KEY ("row", "col"))`); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO ` + table + ` ("row", "col", "value") VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for rowIdx, row := range t {
		for colIdx, cell := range row {
			if _, err := stmt.Exec(rowIdx+1, colIdx+1, cell); err != nil {
				return fmt.Errorf("inserting cell (%d, %d): %w", rowIdx+1, colIdx+1, err)
			}
		}
	}

	return tx.Commit()
}
