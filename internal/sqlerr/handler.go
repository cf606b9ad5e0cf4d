package sqlerr

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ecomportal/backend/internal/errs"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format is <DOMAIN>_<ACTION>, e.g.
//
//	customers + UniqueViolation => CUSTOMER_ALREADY_EXISTS
//
// These codes are meant for machines (frontend logic), not humans.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(strings.ReplaceAll(tableName, " ", "_"))

	// Naive singularization: "CUSTOMERS" -> "CUSTOMER". Good enough for this
	// schema's table names.
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message using
// the table/column parsed from the driver error.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := humanizeText(singularize(sqlErr.TableName))
	if entityName == "" {
		entityName = "record"
	}

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return "The referenced record does not exist"

	case UniqueViolation:
		field := humanizeText(sqlErr.ColumnName)
		if field == "" {
			field = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", strings.ToLower(entityName), strings.ToLower(field))

	case NotNullViolation:
		field := humanizeText(sqlErr.ColumnName)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)

	case CheckViolation:
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

func singularize(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case identifiers into readable words.
//
// Example: "item_name" -> "item name".
func humanizeText(text string) string {
	return strings.ReplaceAll(text, "_", " ")
}

// HandleError converts a low-level database error into an application-level
// error.
//
// Output:
//   - Already *errs.HTTPError: returned unchanged
//   - sqlite3.Error constraint violations: mapped to 400s with friendly codes
//   - gorm.ErrRecordNotFound / sql.ErrNoRows: mapped to 404
//   - Otherwise: generic 500
//
// It is the last-resort funnel for store failures that escape the service
// layer; repositories normally translate not-found themselves.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		sqlErr := ConvertSqliteError(sqliteErr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, UniqueViolation, CheckViolation:
			return errs.NewBadRequestError(userMessage, &errorCode, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, &errorCode, fieldErrors)

		default:
			return errs.NewInternalServerError()
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewInternalServerError()
}
