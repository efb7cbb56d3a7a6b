// Package sqlite reads corpus tokens from a SQLite database, so large
// text corpora can be imported once and re-read without re-parsing.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/tagseq/pkg/tagseq/corpus"
)

// Format streams tokens from a database produced by Import. The corpus
// file path is the database path; rows come back in (file, line) order,
// so sequence boundaries recorded at import time are preserved.
type Format struct{}

func (Format) Name() string { return "sqlite" }

// Tokens opens the database at path and emits every stored token.
func (Format) Tokens(path string, emit func(corpus.Token) error) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT character, char_type, tag, line FROM tokens ORDER BY file, line`)
	if err != nil {
		return fmt.Errorf("query tokens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tok corpus.Token
		if err := rows.Scan(&tok.Char, &tok.Type, &tok.Tag, &tok.Line); err != nil {
			return err
		}
		if err := emit(tok); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Open opens (or creates) a corpus database with WAL mode enabled and
// the schema initialized.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS tokens (
	file TEXT NOT NULL,
	line INTEGER NOT NULL,
	character TEXT NOT NULL,
	char_type TEXT NOT NULL,
	tag TEXT NOT NULL,
	PRIMARY KEY(file, line)
);
`
	_, err := db.Exec(schema)
	return err
}

// Import replaces all stored tokens for the named source file in one
// transaction. Token order is preserved through the line column.
func Import(db *sql.DB, file string, tokens []corpus.Token) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tokens WHERE file = ?`, file); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO tokens (file, line, character, char_type, tag) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, tok := range tokens {
		if _, err := stmt.Exec(file, tok.Line, tok.Char, tok.Type, tok.Tag); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportFile parses a text corpus file with the given format and stores
// its tokens under the file's own path.
func ImportFile(db *sql.DB, path string, format corpus.Format) error {
	var tokens []corpus.Token
	err := format.Tokens(path, func(tok corpus.Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	if err != nil {
		return err
	}
	return Import(db, path, tokens)
}
