// Package core provides the business logic for CSV document queries.
//
// This package wraps the parser and query functions of internal/csv in a
// Service that any frontend can use: documents are parsed once on store,
// held in memory under a generated ID, and queried read-only afterwards.
// It has no HTTP dependencies and is consumed by both the web handlers
// and the command-line reporter.
//
// # Document Store
//
// [Service.Store] parses raw CSV text and retains the resulting table
// together with its metadata ([DocumentInfo]). The store is bounded: both
// the number of documents and the size of a single document are capped by
// configuration, and exceeding either cap fails with a typed error before
// any parsing happens.
//
// # Queries
//
// [Service.Line], [Service.Column], and [Service.Sum] delegate to the csv
// package and propagate its error taxonomy unchanged, so callers can use
// errors.Is / errors.As against csv.ErrParse, csv.IndexError, and
// csv.NumericError regardless of which layer they talk to.
//
// # Audit
//
// When constructed with a database handle, every store, query, and delete
// is recorded in the csvq_audit_log table. Auditing is best-effort: a
// failed insert is logged and never fails the operation it describes.
// With a nil handle the audit path is a no-op.
package core
