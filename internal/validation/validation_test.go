package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecomportal/backend/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

type signupRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (r *signupRequest) Validate() error {
	return validate.Struct(r)
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newJSONContext(t, `{"name":"Alice","email":"alice@example.com"}`)

	payload := new(signupRequest)
	err := BindAndValidate(c, payload)

	require.NoError(t, err)
	assert.Equal(t, "Alice", payload.Name)
	assert.Equal(t, "alice@example.com", payload.Email)
}

func TestBindAndValidate_MissingFields(t *testing.T) {
	c := newJSONContext(t, `{"email":"alice@example.com"}`)

	err := BindAndValidate(c, new(signupRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestBindAndValidate_InvalidEmail(t *testing.T) {
	c := newJSONContext(t, `{"name":"Alice","email":"not-an-email"}`)

	err := BindAndValidate(c, new(signupRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a valid email address", httpErr.Errors[0].Error)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newJSONContext(t, `{"name":`)

	err := BindAndValidate(c, new(signupRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestExtractValidationError_CustomErrors(t *testing.T) {
	err := CustomValidationErrors{
		{Field: "quantity", Message: "must be positive"},
	}

	msg, fieldErrors := extractValidationError(err)
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "quantity", fieldErrors[0].Field)
	assert.Equal(t, "must be positive", fieldErrors[0].Error)
}
