package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NotFound("product", "42")
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "product with id 42 not found")
}

func TestAppError_Unwrap(t *testing.T) {
	err := InvalidInput("quantity must be positive")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	wrapped := fmt.Errorf("add item: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
}

func TestHTTPStatus_AppError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("line", "1")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("bad")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthorized("no token")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("busy")))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(Unavailable("down")))
}

func TestHTTPStatus_Sentinels(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("x: %w", ErrNotFound)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "Product not found", Message(InvalidInput("Product not found")))
	assert.Equal(t, "boom", Message(errors.New("boom")))

	// Wrapped AppError still yields the structured message.
	wrapped := fmt.Errorf("add to cart: %w", Unauthorized("token expired"))
	assert.Equal(t, "token expired", Message(wrapped))
}
