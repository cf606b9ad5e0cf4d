package sqlerr

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/ecomportal/backend/internal/errs"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestParseConstraintTarget(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantTable  string
		wantColumn string
	}{
		{"unique", "UNIQUE constraint failed: customers.email", "customers", "email"},
		{"not null", "NOT NULL constraint failed: customers.name", "customers", "name"},
		{"foreign key", "FOREIGN KEY constraint failed", "", ""},
		{"no target", "constraint failed", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, column := parseConstraintTarget(tt.message)
			assert.Equal(t, tt.wantTable, table)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestMapExtendedCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, mapExtendedCode(sqlite3.ErrConstraintUnique))
	assert.Equal(t, UniqueViolation, mapExtendedCode(sqlite3.ErrConstraintPrimaryKey))
	assert.Equal(t, ForeignKeyViolation, mapExtendedCode(sqlite3.ErrConstraintForeignKey))
	assert.Equal(t, NotNullViolation, mapExtendedCode(sqlite3.ErrConstraintNotNull))
	assert.Equal(t, CheckViolation, mapExtendedCode(sqlite3.ErrConstraintCheck))
	assert.Equal(t, Other, mapExtendedCode(sqlite3.ErrIoErrRead))
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", generateErrorCode("customers", UniqueViolation))
	assert.Equal(t, "ORDER_NOT_FOUND", generateErrorCode("orders", ForeignKeyViolation))
	assert.Equal(t, "CUSTOMER_REQUIRED", generateErrorCode("customers", NotNullViolation))
	assert.Equal(t, "ORDER_ITEM_INVALID", generateErrorCode("order_items", CheckViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}

func TestFormatUserFriendlyMessage(t *testing.T) {
	msg := formatUserFriendlyMessage(&Error{
		Code:       UniqueViolation,
		TableName:  "customers",
		ColumnName: "email",
	})
	assert.Equal(t, "A customer with this email already exists", msg)

	msg = formatUserFriendlyMessage(&Error{Code: ForeignKeyViolation})
	assert.Equal(t, "The referenced record does not exist", msg)

	msg = formatUserFriendlyMessage(&Error{
		Code:       NotNullViolation,
		TableName:  "order_items",
		ColumnName: "item_name",
	})
	assert.Equal(t, "The item name is required", msg)
}

func TestHandleError_NotFound(t *testing.T) {
	for _, src := range []error{gorm.ErrRecordNotFound, sql.ErrNoRows} {
		err := HandleError(src)

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Resource not found", httpErr.Message)
	}
}

func TestHandleError_PassthroughHTTPError(t *testing.T) {
	src := errs.NewNotFoundError("Customer not found", nil)
	assert.Equal(t, src, HandleError(src))
}

func TestHandleError_UnknownError(t *testing.T) {
	err := HandleError(errors.New("boom"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	type customer struct {
		ID    uint   `gorm:"primaryKey"`
		Email string `gorm:"uniqueIndex"`
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&customer{}))

	require.NoError(t, db.Create(&customer{Email: "alice@example.com"}).Error)
	dup := db.Create(&customer{Email: "alice@example.com"}).Error
	require.Error(t, dup)

	handled := HandleError(dup)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(handled, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A customer with this email already exists", httpErr.Message)
}
