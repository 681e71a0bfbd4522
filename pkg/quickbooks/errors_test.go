package quickbooks_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

func TestNormalizeHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantKind   quickbooks.ErrorKind
	}{
		{"unauthorized", 401, `{}`, quickbooks.ErrorKindUnauthorized},
		{"forbidden", 403, `{}`, quickbooks.ErrorKindUnauthorized},
		{"rate limited", 429, `{}`, quickbooks.ErrorKindRateLimited},
		{"server error", 500, `{}`, quickbooks.ErrorKindAPI},
		{"validation", 400, `{"Fault":{"Error":[{"Message":"Invalid Reference","code":"2500"}],"type":"ValidationFault"}}`, quickbooks.ErrorKindAPI},
		{
			"expired token wording",
			401,
			`{"Fault":{"Error":[{"Message":"message=AuthenticationFailed; errorCode=003200","Detail":"Token expired: AB123 on date","code":"3200"}],"type":"AUTHENTICATION"}}`,
			quickbooks.ErrorKindTokenExpired,
		},
		{"garbage body", 502, `<html>bad gateway</html>`, quickbooks.ErrorKindAPI},
		{"empty body", 404, ``, quickbooks.ErrorKindAPI},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := quickbooks.NormalizeHTTPError(tt.statusCode, []byte(tt.body))
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.statusCode, err.StatusCode)
		})
	}
}

func TestNormalizeHTTPErrorKeepsFault(t *testing.T) {
	t.Parallel()

	body := `{"Fault":{"Error":[{"Message":"Duplicate Name","Detail":"name already exists","code":"6240","element":"Name"}],"type":"ValidationFault"},"time":"2025-06-01T00:00:00Z"}`

	err := quickbooks.NormalizeHTTPError(400, []byte(body))
	require.NotNil(t, err.Fault)
	require.Len(t, err.Fault.Errors, 1)
	assert.Equal(t, "6240", err.Fault.Errors[0].Code)
	assert.Equal(t, "Name", err.Fault.Errors[0].Element)
	assert.Equal(t, "ValidationFault", err.Fault.Type)
	assert.Contains(t, err.Message, "Duplicate Name")
	assert.Contains(t, err.Message, "name already exists")
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	withStatus := quickbooks.NormalizeHTTPError(429, nil)
	assert.Contains(t, withStatus.Error(), "429")
	assert.Contains(t, withStatus.Error(), "rate_limited")

	withoutStatus := quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "client ID is required")
	assert.Contains(t, withoutStatus.Error(), "invalid_config")
	assert.Contains(t, withoutStatus.Error(), "client ID is required")
}

func TestKindHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, quickbooks.IsUnauthorized(quickbooks.NewError(quickbooks.ErrorKindUnauthorized, "x")))
	assert.True(t, quickbooks.IsRateLimited(quickbooks.NewError(quickbooks.ErrorKindRateLimited, "x")))
	assert.True(t, quickbooks.IsTokenExpired(quickbooks.NewError(quickbooks.ErrorKindTokenExpired, "x")))
	assert.True(t, quickbooks.IsInvalidConfig(quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "x")))

	assert.False(t, quickbooks.IsUnauthorized(quickbooks.NewError(quickbooks.ErrorKindAPI, "x")))
	assert.Empty(t, quickbooks.KindOf(fmt.Errorf("plain error")))
}

func TestKindOfWrappedError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing invoices: %w", quickbooks.NewError(quickbooks.ErrorKindRateLimited, "too many requests"))
	assert.True(t, quickbooks.IsRateLimited(wrapped))
	assert.Equal(t, quickbooks.ErrorKindRateLimited, quickbooks.KindOf(wrapped))
}
