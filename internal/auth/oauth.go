package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/constants"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// OAuthConfig configures the OAuth client. The endpoint fields exist for
// tests; they default to the fixed Intuit hosts.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string

	TokenURL     string
	RevokeURL    string
	AuthorizeURL string
	HTTPClient   *http.Client
}

// OAuthClient wraps the token endpoint calls: authorization-code exchange,
// refresh, and revocation. Both environments share the same token host.
type OAuthClient struct {
	config     *OAuthConfig
	httpClient *http.Client
	now        func() time.Time
}

// NewOAuthClient creates an OAuth client, filling endpoint defaults.
func NewOAuthClient(config *OAuthConfig) *OAuthClient {
	if config.TokenURL == "" {
		config.TokenURL = constants.TokenEndpoint
	}

	if config.RevokeURL == "" {
		config.RevokeURL = constants.RevokeEndpoint
	}

	if config.AuthorizeURL == "" {
		config.AuthorizeURL = constants.AuthorizeEndpoint
	}

	if len(config.Scopes) == 0 {
		config.Scopes = []string{constants.DefaultScope}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	return &OAuthClient{
		config:     config,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// AuthorizationURL returns the consent URL to send the user to.
func (c *OAuthClient) AuthorizationURL(state string) string {
	query := url.Values{}
	query.Set("client_id", c.config.ClientID)
	query.Set("response_type", "code")
	query.Set("scope", strings.Join(c.config.Scopes, " "))
	query.Set("redirect_uri", c.config.RedirectURI)
	query.Set("state", state)

	return c.config.AuthorizeURL + "?" + query.Encode()
}

// Exchange trades an authorization code for a bearer token scoped to realmID.
func (c *OAuthClient) Exchange(ctx context.Context, code, realmID string) (*quickbooks.BearerToken, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.config.RedirectURI)

	tokenResp, err := c.requestToken(ctx, form, quickbooks.ErrorKindAPI)
	if err != nil {
		return nil, err
	}

	return c.bearerToken(tokenResp, realmID), nil
}

// Refresh obtains a fresh bearer token using refreshToken. Failures carry
// kind RefreshFailed along with the token endpoint's HTTP status.
func (c *OAuthClient) Refresh(ctx context.Context, refreshToken, realmID string) (*quickbooks.BearerToken, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	tokenResp, err := c.requestToken(ctx, form, quickbooks.ErrorKindRefreshFailed)
	if err != nil {
		return nil, err
	}

	return c.bearerToken(tokenResp, realmID), nil
}

// Revoke invalidates token (access or refresh) at the provider.
func (c *OAuthClient) Revoke(ctx context.Context, token string) error {
	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return fmt.Errorf("encoding revoke payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.RevokeURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building revoke request: %w", err)
	}

	req.SetBasicAuth(c.config.ClientID, c.config.ClientSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return quickbooks.NewError(quickbooks.ErrorKindNetwork, fmt.Sprintf("revoking token: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		return quickbooks.NormalizeHTTPError(resp.StatusCode, body)
	}

	return nil
}

// tokenResponse is the token endpoint's success payload.
type tokenResponse struct {
	AccessToken            string `json:"access_token"`
	RefreshToken           string `json:"refresh_token"`
	TokenType              string `json:"token_type"`
	ExpiresIn              int64  `json:"expires_in"`
	XRefreshTokenExpiresIn int64  `json:"x_refresh_token_expires_in"`
}

func (c *OAuthClient) requestToken(ctx context.Context, form url.Values, failureKind quickbooks.ErrorKind) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}

	req.SetBasicAuth(c.config.ClientID, c.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindNetwork, fmt.Sprintf("calling token endpoint: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindNetwork, fmt.Sprintf("reading token response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		qbErr := quickbooks.NormalizeHTTPError(resp.StatusCode, body)
		qbErr.Kind = failureKind

		return nil, qbErr
	}

	var tokenResp tokenResponse

	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	return &tokenResp, nil
}

// bearerToken converts a token endpoint response into a credential record.
// ExpiresAt is computed at issuance from expires_in.
func (c *OAuthClient) bearerToken(resp *tokenResponse, realmID string) *quickbooks.BearerToken {
	return &quickbooks.BearerToken{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		RealmID:      realmID,
		ExpiresAt:    c.now().Unix() + resp.ExpiresIn,
		TokenType:    resp.TokenType,
	}
}
