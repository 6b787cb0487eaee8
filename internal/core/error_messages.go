package core

// error_messages.go maps technical errors to user-friendly messages with
// support codes. When users hit an error they can quote the code instead of
// pasting a stack of wrapped error strings.
//
// Codes by category:
//
//	CSV001 - Parse failure: the input could not be read as CSV
//	CSV002 - Numeric failure: a summed cell is not a valid integer
//
//	QRY001 - Line index out of range
//	QRY002 - Column index out of range
//	QRY003 - Index parameter is not a number
//
//	DOC001 - Document not found
//	DOC002 - Document too large
//	DOC003 - Document store is full
//
//	SYS001 - Request cancelled
//	SYS002 - Request timed out
//	DB001  - Audit database unreachable
//	AUD001 - Audit log not configured
//
//	ERR000 - Unrecognized error (fallback)

import (
	"fmt"
	"strings"
)

// UserMessage is a user-friendly rendering of an error.
type UserMessage struct {
	Message string // What happened, in plain language
	Action  string // What the user can do about it
	Code    string // Support reference code
}

// errorPatterns maps substrings of technical error text to user messages.
// First match wins, so more specific patterns come first.
var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"could not be parsed", UserMessage{
		Message: "The file could not be read as CSV",
		Action:  "Check that the file is comma-separated text and not empty",
		Code:    "CSV001",
	}},
	{"is not a valid integer", UserMessage{
		Message: "A cell in the summed column is not a whole number",
		Action:  "Sum a numeric column, or fix the offending cell",
		Code:    "CSV002",
	}},
	{"line index", UserMessage{
		Message: "The requested line does not exist in this document",
		Action:  "Line numbers start at 0; check the document's row count",
		Code:    "QRY001",
	}},
	{"column index", UserMessage{
		Message: "The requested column does not exist in every row",
		Action:  "Column numbers start at 0; short rows end a column early",
		Code:    "QRY002",
	}},
	{"invalid index", UserMessage{
		Message: "The line or column index must be a non-negative number",
		Action:  "Use a plain decimal index such as 0, 1, or 2",
		Code:    "QRY003",
	}},
	{"document not found", UserMessage{
		Message: "No document with that ID is loaded",
		Action:  "It may have been deleted; upload the CSV again",
		Code:    "DOC001",
	}},
	{"document too large", UserMessage{
		Message: "The file exceeds the size limit",
		Action:  "Split the file or raise QUERY_MAX_DOCUMENT_SIZE",
		Code:    "DOC002",
	}},
	{"document store is full", UserMessage{
		Message: "Too many documents are loaded",
		Action:  "Delete unused documents or raise QUERY_MAX_DOCUMENTS",
		Code:    "DOC003",
	}},
	{"context canceled", UserMessage{
		Message: "The request was cancelled",
		Action:  "Please try again",
		Code:    "SYS001",
	}},
	{"context deadline exceeded", UserMessage{
		Message: "The request timed out",
		Action:  "Try a smaller document or try again later",
		Code:    "SYS002",
	}},
	{"audit log is not configured", UserMessage{
		Message: "This deployment has no audit database",
		Action:  "Set DATABASE_URL to enable the audit log",
		Code:    "AUD001",
	}},
	{"connection refused", UserMessage{
		Message: "The audit database is unreachable",
		Action:  "Please try again in a few moments",
		Code:    "DB001",
	}},
}

// defaultMessage is returned when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again; contact support if it persists",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
