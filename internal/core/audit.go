package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"csvq/internal/logging"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AuditAction represents the type of operation being audited.
type AuditAction string

const (
	ActionStore  AuditAction = "store"
	ActionDelete AuditAction = "delete"
	ActionLine   AuditAction = "line_query"
	ActionColumn AuditAction = "column_query"
	ActionSum    AuditAction = "sum_query"
	ActionRender AuditAction = "render"
)

// AuditEntry represents a single audit log row.
type AuditEntry struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	DocumentID   string    `json:"documentId"`
	DocumentName string    `json:"documentName"`
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS csvq_audit_log (
		id UUID PRIMARY KEY,
		action TEXT NOT NULL,
		document_id TEXT NOT NULL,
		document_name TEXT NOT NULL,
		detail TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS csvq_audit_log_created_at_idx
		ON csvq_audit_log (created_at DESC)`,
}

// EnsureSchema creates the audit log table if it does not exist. Called once
// at startup when a database is configured.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure audit schema: %w", err)
		}
	}
	return nil
}

// audit records one operation in the audit log. It is best-effort: with no
// database configured it does nothing, and an insert failure is logged
// without failing the operation being audited.
func (s *Service) audit(ctx context.Context, action AuditAction, info DocumentInfo, detail string) {
	if s.db == nil {
		return
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO csvq_audit_log (id, action, document_id, document_name, detail)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(),
		string(action),
		info.ID,
		info.Name,
		toPgText(detail),
	)
	if err != nil {
		logging.FromContext(ctx).Warn("audit insert failed",
			"action", string(action),
			"document_id", info.ID,
			"error", err,
		)
	}
}

// RecentAudit returns the newest audit entries, newest first, up to limit.
// Fails with ErrAuditDisabled when no database is configured.
func (s *Service) RecentAudit(ctx context.Context, limit int) ([]AuditEntry, error) {
	if s.db == nil {
		return nil, ErrAuditDisabled
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, action, document_id, document_name, detail, created_at
		 FROM csvq_audit_log
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var (
			entry  AuditEntry
			detail pgtype.Text
		)
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.DocumentID, &entry.DocumentName, &detail, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.Detail = detail.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	return entries, nil
}

// toPgText converts a string to pgtype.Text, mapping empty to NULL.
func toPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}
