package core

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// DocumentInfo describes a stored document without exposing its table.
type DocumentInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"` // cell count of row 0; later rows may differ
	StoredAt time.Time `json:"storedAt"`
}

// Store-level failures, distinct from the csv package's parse and query
// errors.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentTooLarge = errors.New("document too large")
	ErrStoreFull        = errors.New("document store is full")
	ErrAuditDisabled    = errors.New("audit log is not configured")
)
