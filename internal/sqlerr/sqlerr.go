// Package sqlerr handles database driver errors.
//
// It parses cryptic error codes from the SQLite driver and converts them into
// user-friendly application errors (e.g. converting a unique-constraint
// violation into a "already exists" Bad Request).
package sqlerr

import (
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Code classifies a database error into a category the application can
// switch on.
type Code int

const (
	// Other is any database error not covered by a specific category.
	Other Code = iota

	// UniqueViolation is a duplicate value on a unique index.
	UniqueViolation

	// ForeignKeyViolation is a reference to a row that does not exist.
	ForeignKeyViolation

	// NotNullViolation is a missing value for a NOT NULL column.
	NotNullViolation

	// CheckViolation is a value rejected by a CHECK constraint.
	CheckViolation
)

// Error is the normalized form of a SQLite driver error.
//
// TableName and ColumnName are parsed from the driver message when present;
// SQLite does not expose them as structured fields.
type Error struct {
	Code         Code
	DatabaseCode string
	Message      string
	TableName    string
	ColumnName   string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertSqliteError converts a raw sqlite3.Error into our normalized Error.
//
// The driver reports constraint failures via the extended result code, with
// the offending table/column only inside the message text, e.g.
//
//	UNIQUE constraint failed: customers.email
//	NOT NULL constraint failed: customers.name
//	FOREIGN KEY constraint failed
func ConvertSqliteError(src sqlite3.Error) *Error {
	e := &Error{
		Code:         mapExtendedCode(src.ExtendedCode),
		DatabaseCode: src.ExtendedCode.Error(),
		Message:      src.Error(),
		driverErr:    src,
	}
	e.TableName, e.ColumnName = parseConstraintTarget(src.Error())
	return e
}

func mapExtendedCode(code sqlite3.ErrNoExtended) Code {
	switch code {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	default:
		return Other
	}
}

// parseConstraintTarget extracts "table.column" from a constraint message.
// Returns empty strings when the message carries no target (FK violations).
func parseConstraintTarget(message string) (table, column string) {
	idx := strings.LastIndex(message, ": ")
	if idx < 0 {
		return "", ""
	}

	target := strings.TrimSpace(message[idx+2:])
	parts := strings.SplitN(target, ".", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
