package core

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"csvq/internal/config"
	"csvq/internal/csv"

	"github.com/google/uuid"
)

// Service provides the core business logic for CSV document queries.
type Service struct {
	db              DBTX // nil disables auditing
	maxDocuments    int
	maxDocumentSize int64

	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	info  DocumentInfo
	table csv.Table
}

// NewService creates a new Service instance. db may be nil, in which case
// no audit entries are written.
func NewService(db DBTX, cfg *config.Config) *Service {
	return &Service{
		db:              db,
		maxDocuments:    cfg.Query.MaxDocuments,
		maxDocumentSize: cfg.Query.MaxDocumentSize,
		docs:            make(map[string]*document),
	}
}

// Store parses raw CSV content and retains the resulting table under a
// generated document ID. Size and count caps are enforced before parsing;
// a parse failure propagates the csv package's error with provenance.
func (s *Service) Store(ctx context.Context, name, content string) (DocumentInfo, error) {
	if int64(len(content)) > s.maxDocumentSize {
		return DocumentInfo{}, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrDocumentTooLarge, len(content), s.maxDocumentSize)
	}

	table, err := csv.Parse(content)
	if err != nil {
		return DocumentInfo{}, fmt.Errorf("store document: %w", err)
	}

	if name == "" {
		name = "untitled.csv"
	}

	info := DocumentInfo{
		ID:       uuid.New().String(),
		Name:     name,
		Rows:     len(table),
		Columns:  len(table[0]),
		StoredAt: time.Now().UTC(),
	}

	s.mu.Lock()
	if len(s.docs) >= s.maxDocuments {
		s.mu.Unlock()
		return DocumentInfo{}, fmt.Errorf("%w: limit is %d documents", ErrStoreFull, s.maxDocuments)
	}
	s.docs[info.ID] = &document{info: info, table: table}
	s.mu.Unlock()

	s.audit(ctx, ActionStore, info, fmt.Sprintf("%d rows", info.Rows))
	return info, nil
}

// Get returns metadata for a stored document.
func (s *Service) Get(id string) (DocumentInfo, error) {
	doc, err := s.lookup(id)
	if err != nil {
		return DocumentInfo{}, err
	}
	return doc.info, nil
}

// List returns metadata for all stored documents, oldest first.
func (s *Service) List() []DocumentInfo {
	s.mu.RLock()
	infos := make([]DocumentInfo, 0, len(s.docs))
	for _, doc := range s.docs {
		infos = append(infos, doc.info)
	}
	s.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].StoredAt.Equal(infos[j].StoredAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].StoredAt.Before(infos[j].StoredAt)
	})
	return infos
}

// Delete removes a stored document.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	doc, ok := s.docs[id]
	if ok {
		delete(s.docs, id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}

	s.audit(ctx, ActionDelete, doc.info, "")
	return nil
}

// Line returns the document's row at the given 0-based index, cells joined
// with ", ".
func (s *Service) Line(ctx context.Context, id string, line int) (string, error) {
	doc, err := s.lookup(id)
	if err != nil {
		return "", err
	}

	joined, err := csv.GetLine(doc.table, line)
	if err != nil {
		return "", err
	}

	s.audit(ctx, ActionLine, doc.info, fmt.Sprintf("line %d", line))
	return joined, nil
}

// Column returns the cell at the given 0-based column index from every row.
func (s *Service) Column(ctx context.Context, id string, col int) ([]string, error) {
	doc, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	column, err := csv.GetCol(doc.table, col)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, ActionColumn, doc.info, fmt.Sprintf("column %d", col))
	return column, nil
}

// Sum returns the int32 sum of the given column, skipping the header row.
func (s *Service) Sum(ctx context.Context, id string, col int) (int32, error) {
	doc, err := s.lookup(id)
	if err != nil {
		return 0, err
	}

	sum, err := csv.SumCol(doc.table, col)
	if err != nil {
		return 0, err
	}

	s.audit(ctx, ActionSum, doc.info, fmt.Sprintf("column %d = %d", col, sum))
	return sum, nil
}

// RenderTo writes the document's fixed-width rendering to w.
func (s *Service) RenderTo(ctx context.Context, id string, w io.Writer) error {
	doc, err := s.lookup(id)
	if err != nil {
		return err
	}

	csv.Render(w, doc.table)
	s.audit(ctx, ActionRender, doc.info, "")
	return nil
}

func (s *Service) lookup(id string) (*document, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return doc, nil
}
