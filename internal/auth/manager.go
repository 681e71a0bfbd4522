package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/constants"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// Manager owns token validity tracking and transparent refresh. Credentials
// live in the supplied store; the manager holds them only transiently during
// a call.
type Manager struct {
	store  quickbooks.TokenStore
	oauth  *OAuthClient
	logger quickbooks.Logger
	now    func() time.Time
}

// NewManager creates a token manager backed by store and oauth.
func NewManager(store quickbooks.TokenStore, oauth *OAuthClient, logger quickbooks.Logger) *Manager {
	if logger == nil {
		logger = quickbooks.NopLogger()
	}

	return &Manager{
		store:  store,
		oauth:  oauth,
		logger: logger,
		now:    time.Now,
	}
}

// Token returns credentials that are valid for at least the expiry buffer,
// refreshing them first when they are expired or expiring soon. It fails with
// an Unauthorized error when the store holds no credentials.
func (m *Manager) Token(ctx context.Context) (*quickbooks.BearerToken, error) {
	token, err := m.storedToken(ctx)
	if err != nil {
		return nil, err
	}

	if !m.expiresSoon(token) {
		return token, nil
	}

	return m.refresh(ctx, token)
}

// ForceRefresh refreshes unconditionally, bypassing the expiry check. Used
// after the server rejects a token the local clock still considers valid.
func (m *Manager) ForceRefresh(ctx context.Context) (*quickbooks.BearerToken, error) {
	token, err := m.storedToken(ctx)
	if err != nil {
		return nil, err
	}

	return m.refresh(ctx, token)
}

func (m *Manager) storedToken(ctx context.Context) (*quickbooks.BearerToken, error) {
	token, err := m.store.GetTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading token store: %w", err)
	}

	if token == nil || token.AccessToken == "" {
		return nil, quickbooks.NewError(quickbooks.ErrorKindUnauthorized, "no tokens in store, authorization required")
	}

	return token, nil
}

// expiresSoon reports whether the token expires inside the safety buffer, so
// a token is never used for a call the API would itself reject. A token with
// exactly the buffer remaining is still usable.
func (m *Manager) expiresSoon(token *quickbooks.BearerToken) bool {
	buffer := int64(constants.TokenExpiryBuffer / time.Second)

	return m.now().Unix() > token.ExpiresAt-buffer
}

// refresh exchanges the refresh token for fresh credentials and persists
// them: one store write per refresh. A refresh rejected with 401/403 clears
// the store once before the failure propagates, so dead credentials are not
// retried on the next call.
func (m *Manager) refresh(ctx context.Context, stale *quickbooks.BearerToken) (*quickbooks.BearerToken, error) {
	if stale.RefreshToken == "" {
		return nil, quickbooks.NewError(quickbooks.ErrorKindUnauthorized, "stored credentials carry no refresh token")
	}

	m.logger.Info("refreshing access token", map[string]interface{}{
		"realm_id": stale.RealmID,
	})

	fresh, err := m.oauth.Refresh(ctx, stale.RefreshToken, stale.RealmID)
	if err != nil {
		if refreshRejected(err) {
			m.logger.Warn("refresh token rejected, clearing stored credentials", map[string]interface{}{
				"realm_id": stale.RealmID,
			})

			clearErr := m.store.ClearTokens(ctx)
			if clearErr != nil {
				m.logger.Error("failed to clear token store", map[string]interface{}{
					"error": clearErr.Error(),
				})
			}
		}

		return nil, err
	}

	err = m.store.StoreTokens(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("persisting refreshed tokens: %w", err)
	}

	m.logger.Info("access token refreshed", map[string]interface{}{
		"realm_id":   fresh.RealmID,
		"expires_at": fresh.ExpiresAt,
	})

	return fresh, nil
}

// refreshRejected reports whether the token endpoint declared the stored
// credentials dead, as opposed to a transient failure.
func refreshRejected(err error) bool {
	qbErr := &quickbooks.Error{}
	if !errors.As(err, &qbErr) {
		return false
	}

	return qbErr.StatusCode == 401 || qbErr.StatusCode == 403
}
