package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

func TestAuthorizationURL(t *testing.T) {
	t.Parallel()

	client := NewOAuthClient(&OAuthConfig{
		ClientID:    "test-client",
		RedirectURI: "https://example.com/callback",
	})

	raw := client.AuthorizationURL("xyzzy")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "test-client", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "com.intuit.quickbooks.accounting", query.Get("scope"))
	assert.Equal(t, "https://example.com/callback", query.Get("redirect_uri"))
	assert.Equal(t, "xyzzy", query.Get("state"))
}

func TestExchange(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "test-client", username)
		assert.Equal(t, "test-secret", password)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://example.com/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	client := NewOAuthClient(&OAuthConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURI:  "https://example.com/callback",
		TokenURL:     server.URL,
	})

	token, err := client.Exchange(context.Background(), "auth-code", "12345")
	require.NoError(t, err)
	assert.Equal(t, "at", token.AccessToken)
	assert.Equal(t, "rt", token.RefreshToken)
	assert.Equal(t, "12345", token.RealmID)
	assert.Positive(t, token.ExpiresAt)
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt-old", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-new","refresh_token":"rt-new","expires_in":3600}`))
	}))
	defer server.Close()

	client := NewOAuthClient(&OAuthConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		TokenURL:     server.URL,
	})

	token, err := client.Refresh(context.Background(), "rt-old", "12345")
	require.NoError(t, err)
	assert.Equal(t, "at-new", token.AccessToken)
	assert.Equal(t, "rt-new", token.RefreshToken)
}

func TestRefreshFailureKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := NewOAuthClient(&OAuthConfig{TokenURL: server.URL})

	_, err := client.Refresh(context.Background(), "rt-dead", "12345")
	require.Error(t, err)

	qbErr := &quickbooks.Error{}
	require.ErrorAs(t, err, &qbErr)
	assert.Equal(t, quickbooks.ErrorKindRefreshFailed, qbErr.Kind)
	assert.Equal(t, http.StatusBadRequest, qbErr.StatusCode)
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			_, _, ok := r.BasicAuth()
			assert.True(t, ok)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewOAuthClient(&OAuthConfig{RevokeURL: server.URL})

		require.NoError(t, client.Revoke(context.Background(), "rt"))
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewOAuthClient(&OAuthConfig{RevokeURL: server.URL})

		err := client.Revoke(context.Background(), "rt")
		require.Error(t, err)
	})
}

func TestExchangeNetworkError(t *testing.T) {
	t.Parallel()

	client := NewOAuthClient(&OAuthConfig{TokenURL: "http://127.0.0.1:1"})

	_, err := client.Exchange(context.Background(), "code", "12345")
	require.Error(t, err)
	assert.Equal(t, quickbooks.ErrorKindNetwork, quickbooks.KindOf(err))
}
