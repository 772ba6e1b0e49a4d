package export

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteSink mirrors a table into a sqlite database file. Every column is
// TEXT so values land exactly as the CSV renders them, "N/A" and empty
// fields included.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file.
func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", path, err)
	}
	return &SQLiteSink{db: db}, nil
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// WriteTable replaces the table whole, so rerunning an extraction never
// accumulates stale rows. The rows load inside one transaction.
func (s *SQLiteSink) WriteTable(name string, columns []string, rows [][]string) error {
	if _, err := s.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", name)); err != nil {
		return fmt.Errorf("error dropping table %s: %w", name, err)
	}

	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = c + " TEXT"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(cols, ", "))
	if _, err := s.db.Exec(create); err != nil {
		return fmt.Errorf("error creating table %s: %w", name, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)", name, placeholders))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error preparing insert for %s: %w", name, err)
	}

	for _, row := range rows {
		args := make([]interface{}, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("error inserting into %s: %w", name, err)
		}
	}

	stmt.Close()
	return tx.Commit()
}
