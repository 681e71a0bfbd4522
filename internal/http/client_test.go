package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type fakeTokenProvider struct {
	token        *quickbooks.BearerToken
	refreshCalls int32
	refreshErr   error
}

func (f *fakeTokenProvider) Token(_ context.Context) (*quickbooks.BearerToken, error) {
	return f.token, nil
}

func (f *fakeTokenProvider) ForceRefresh(_ context.Context) (*quickbooks.BearerToken, error) {
	atomic.AddInt32(&f.refreshCalls, 1)

	if f.refreshErr != nil {
		return nil, f.refreshErr
	}

	f.token = &quickbooks.BearerToken{
		AccessToken: "refreshed-token",
		RealmID:     f.token.RealmID,
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}

	return f.token, nil
}

func newTestProvider() *fakeTokenProvider {
	return &fakeTokenProvider{
		token: &quickbooks.BearerToken{
			AccessToken: "test-token",
			RealmID:     "12345",
			ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		},
	}
}

// recordingLogger captures log entries by level for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: map[string][]string{}}
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[level] = append(l.entries[level], msg)
}

func (l *recordingLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.entries[level]...)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record("error", msg) }

// noSleep replaces the 429 backoff sleep and records requested delays.
func noSleep(slept *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)

		return nil
	}
}

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/12345/invoice/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "65", r.URL.Query().Get("minorversion"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Invoice":{"Id":"42"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestProvider())

	resp, err := client.Get(context.Background(), "/invoice/42", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `"Id":"42"`)
}

func TestClientPostEncodesJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestProvider())

	_, err := client.Post(context.Background(), "/invoice", map[string]string{"DocNumber": "1001"})
	require.NoError(t, err)
}

func TestClientRetryAfterHeader(t *testing.T) {
	t.Parallel()

	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var slept []time.Duration

	client := NewClient(server.URL, newTestProvider())
	client.sleep = noSleep(&slept)

	resp, err := client.Get(context.Background(), "/invoice/1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, slept, 1)
	assert.Equal(t, 2*time.Second, slept[0])
}

func TestClientRateRetryExhaustion(t *testing.T) {
	t.Parallel()

	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	var slept []time.Duration

	client := NewClient(server.URL, newTestProvider())
	client.sleep = noSleep(&slept)

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.Error(t, err)
	assert.True(t, quickbooks.IsRateLimited(err))

	// Three retries with doubling backoff, four calls total.
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	require.Len(t, slept, 3)
	assert.Equal(t, time.Second, slept[0])
	assert.Equal(t, 2*time.Second, slept[1])
	assert.Equal(t, 4*time.Second, slept[2])
}

func TestClientUnauthorizedTriggersOneRefresh(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer refreshed-token" {
			_, _ = w.Write([]byte(`{}`))

			return
		}

		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := newTestProvider()
	client := NewClient(server.URL, provider)

	resp, err := client.Get(context.Background(), "/invoice/1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&provider.refreshCalls))
}

func TestClientPersistentUnauthorized(t *testing.T) {
	t.Parallel()

	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := newTestProvider()
	client := NewClient(server.URL, provider)

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.Error(t, err)
	assert.True(t, quickbooks.IsUnauthorized(err))

	// One refresh, two calls, then the failure propagates.
	assert.Equal(t, int32(1), atomic.LoadInt32(&provider.refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClientRefreshFailurePropagates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := newTestProvider()
	provider.refreshErr = quickbooks.NewError(quickbooks.ErrorKindRefreshFailed, "refresh token revoked")

	client := NewClient(server.URL, provider)

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.Error(t, err)
	assert.Equal(t, quickbooks.ErrorKindRefreshFailed, quickbooks.KindOf(err))
}

func TestClientNormalizesFaultResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Fault":{"Error":[{"Message":"Invalid Reference Id","Detail":"CustomerRef missing","code":"2500"}],"type":"ValidationFault"},"time":"2025-06-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestProvider())

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.Error(t, err)

	qbErr := &quickbooks.Error{}
	require.ErrorAs(t, err, &qbErr)
	assert.Equal(t, quickbooks.ErrorKindAPI, qbErr.Kind)
	assert.Equal(t, http.StatusBadRequest, qbErr.StatusCode)
	require.NotNil(t, qbErr.Fault)
	require.Len(t, qbErr.Fault.Errors, 1)
	assert.Equal(t, "2500", qbErr.Fault.Errors[0].Code)
}

func TestClientRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestProvider(),
		WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/invoice/1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClientCustomOptions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "qb-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "70", r.URL.Query().Get("minorversion"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestProvider(),
		WithUserAgent("qb-test/1.0"),
		WithMinorVersion(70))

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.NoError(t, err)
}

func TestClientRateLimitOption(t *testing.T) {
	t.Parallel()

	client := NewClient("http://example.com", newTestProvider(),
		WithRateLimit(5, 10*time.Second),
		WithRateRetry(1, 500*time.Millisecond))

	assert.Equal(t, 5, client.limiter.limit)
	assert.Equal(t, 10*time.Second, client.limiter.window)
	assert.Equal(t, 1, client.rateRetryMax)
	assert.Equal(t, 500*time.Millisecond, client.rateRetryBase)
}

func TestClientLogsRequestsWithoutDebugMode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := newRecordingLogger()
	client := NewClient(server.URL, newTestProvider(), WithLogger(logger))

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.NoError(t, err)

	// The sink decides what to keep; every outbound call reaches it.
	assert.Contains(t, logger.messages("debug"), "HTTP Request")
	assert.Contains(t, logger.messages("debug"), "HTTP Response")
}

func TestClientCancelledRateWaitAbortsBeforeRequest(t *testing.T) {
	t.Parallel()

	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestProvider(), WithRateLimit(1, time.Minute))

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.NoError(t, err)

	// The window is full, so the next call must wait; a cancelled context
	// aborts it before anything goes on the wire.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Get(ctx, "/invoice/2", nil)
	require.Error(t, err)
	assert.Equal(t, quickbooks.ErrorKindNetwork, quickbooks.KindOf(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClientNetworkError(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", newTestProvider(),
		WithRetryConfig(0, time.Millisecond, time.Millisecond))

	_, err := client.Get(context.Background(), "/invoice/1", nil)
	require.Error(t, err)
	assert.Equal(t, quickbooks.ErrorKindNetwork, quickbooks.KindOf(err))
}
