package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_CarriesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	err := NewError(ctx, LayerDomain, ErrorTypeValidation, "bad input", nil, "uuid-1")

	assert.Equal(t, "req-42", err.GetRequestID())
	assert.Equal(t, "uuid-1", err.GetUUID())
	assert.Equal(t, "[domain][VALIDATION][uuid-1] bad input", err.Error())
}

func TestAsError_PreservesType(t *testing.T) {
	ctx := context.Background()
	inner := NewError(ctx, LayerRepository, ErrorTypeDatabaseError, "insert failed", errors.New("disk full"), "uuid-2")
	wrapped := fmt.Errorf("outer: %w", inner)

	err := AsError(ctx, LayerDomain, wrapped, "save message")
	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeDatabaseError, err.Type)
	assert.Equal(t, "uuid-2", err.UUID)
	assert.True(t, IsErrorType(err, ErrorTypeDatabaseError))
	assert.ErrorIs(t, err, inner)
}

func TestAsError_PlainErrorBecomesInternal(t *testing.T) {
	err := AsError(context.Background(), LayerHandler, errors.New("boom"), "unexpected")
	require.NotNil(t, err)
	assert.Equal(t, ErrorTypeInternal, err.Type)
	assert.Nil(t, AsError(context.Background(), LayerHandler, nil, "nothing"))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorType("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorTypeToHTTPStatus(tt.errorType))
		})
	}
}
