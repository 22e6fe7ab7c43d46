// internal/writers/sqlite.go
package writers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"pephom/internal/pipeline"
)

func init() {
	Register("sqlite", func(ctx context.Context, _ io.Writer, o Options) (MatchWriter, error) {
		return NewSQLiteWriter(ctx, o.DBPath)
	})
}

const matchesSchema = `
CREATE TABLE IF NOT EXISTS matches (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	prot_name       TEXT    NOT NULL,
	prot_species    TEXT    NOT NULL,
	prot_uniprot_id TEXT    NOT NULL,
	match_start     INTEGER NOT NULL,
	match_end       INTEGER NOT NULL,
	pep_sequence    TEXT    NOT NULL,
	match_seq       TEXT    NOT NULL,
	pep_name        TEXT    NOT NULL,
	pep_species     TEXT    NOT NULL,
	pep_function    TEXT    NOT NULL,
	match_pident    REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_prot ON matches(prot_name);
CREATE INDEX IF NOT EXISTS idx_matches_pep ON matches(pep_name);`

const insertMatch = `
INSERT INTO matches (prot_name, prot_species, prot_uniprot_id, match_start, match_end,
	pep_sequence, match_seq, pep_name, pep_species, pep_function, match_pident)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLiteWriter appends hits to the matches table of a SQLite file.
// Rows are committed once per protein (on Flush) and on Close.
type SQLiteWriter struct {
	ctx  context.Context
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
}

func NewSQLiteWriter(ctx context.Context, path string) (*SQLiteWriter, error) {
	if path == "" {
		return nil, errors.New("sqlite output needs --db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, matchesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	w := &SQLiteWriter{ctx: ctx, db: db}
	if err := w.begin(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return w, nil
}

func (w *SQLiteWriter) begin() error {
	tx, err := w.db.BeginTx(w.ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(w.ctx, insertMatch)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	w.tx, w.stmt = tx, stmt
	return nil
}

func (w *SQLiteWriter) commit() error {
	if w.tx == nil {
		return nil
	}
	_ = w.stmt.Close()
	err := w.tx.Commit()
	w.tx, w.stmt = nil, nil
	return err
}

func (w *SQLiteWriter) Write(h pipeline.Hit) error {
	_, err := w.stmt.ExecContext(w.ctx,
		h.Protein.Name, h.Protein.Species, h.Protein.UniprotID,
		h.Match.Start, h.Match.End,
		h.Peptide.Sequence, h.Match.Seq,
		h.Peptide.Name, h.Peptide.Species, h.Peptide.Function,
		h.Match.PIdent,
	)
	return err
}

func (w *SQLiteWriter) Flush() error {
	if err := w.commit(); err != nil {
		return err
	}
	return w.begin()
}

func (w *SQLiteWriter) Close() error {
	err := w.commit()
	if cerr := w.db.Close(); err == nil {
		err = cerr
	}
	return err
}
