// Package client implements the QuickBooks Online API client: OAuth2 token
// lifecycle, realm-scoped request execution, the query engine, and the typed
// per-entity facades.
package client

import (
	"context"
	"fmt"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/auth"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/constants"
	internalhttp "github.com/Panoptic-IT-Solutions/quickbooks-client/internal/http"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// Client implements the full quickbooks.Client interface.
type Client struct {
	config *quickbooks.Config
	logger quickbooks.Logger
	store  quickbooks.TokenStore
	oauth  *auth.OAuthClient
	tokens *auth.Manager
	http   *internalhttp.Client

	invoices  quickbooks.InvoicesClient
	customers quickbooks.CustomersClient
	payments  quickbooks.PaymentsClient
	vendors   quickbooks.VendorsClient
	bills     quickbooks.BillsClient
	items     quickbooks.ItemsClient
	accounts  quickbooks.AccountsClient
}

// New creates a client from config. ClientID, ClientSecret, RedirectURI, and
// TokenStore are mandatory; a missing one is an invalid-config error raised
// before any network activity.
func New(config *quickbooks.Config) (*Client, error) {
	if err := validate(config); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = quickbooks.NopLogger()
	}

	oauthClient := auth.NewOAuthClient(&auth.OAuthConfig{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURI:  config.RedirectURI,
		Scopes:       config.Scopes,
	})

	manager := auth.NewManager(config.TokenStore, oauthClient, logger)

	opts := []internalhttp.Option{
		internalhttp.WithLogger(logger),
		internalhttp.WithDebug(config.Debug),
	}

	if config.MinorVersion > 0 {
		opts = append(opts, internalhttp.WithMinorVersion(config.MinorVersion))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax := config.RetryMax
		if retryMax <= 0 {
			retryMax = constants.DefaultTransportRetryMax
		}

		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	client := &Client{
		config: config,
		logger: logger,
		store:  config.TokenStore,
		oauth:  oauthClient,
		tokens: manager,
		http:   internalhttp.NewClient(baseURL(config), manager, opts...),
	}

	client.invoices = &invoicesClient{client: client}
	client.customers = &customersClient{client: client}
	client.payments = &paymentsClient{client: client}
	client.vendors = &vendorsClient{client: client}
	client.bills = &billsClient{client: client}
	client.items = &itemsClient{client: client}
	client.accounts = &accountsClient{client: client}

	return client, nil
}

func validate(config *quickbooks.Config) error {
	if config == nil {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "config is required")
	}

	if config.ClientID == "" {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "client ID is required")
	}

	if config.ClientSecret == "" {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "client secret is required")
	}

	if config.RedirectURI == "" {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "redirect URI is required")
	}

	if config.TokenStore == nil {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, "token store is required")
	}

	switch config.Environment {
	case "", quickbooks.EnvironmentSandbox, quickbooks.EnvironmentProduction:
	default:
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig,
			fmt.Sprintf("unknown environment %q", config.Environment))
	}

	return nil
}

func baseURL(config *quickbooks.Config) string {
	if config.Endpoint != "" {
		return config.Endpoint
	}

	if config.Environment == quickbooks.EnvironmentProduction {
		return constants.ProductionAPIEndpoint
	}

	return constants.SandboxAPIEndpoint
}

// Invoices returns the invoices client.
func (c *Client) Invoices() quickbooks.InvoicesClient {
	return c.invoices
}

// Customers returns the customers client.
func (c *Client) Customers() quickbooks.CustomersClient {
	return c.customers
}

// Payments returns the payments client.
func (c *Client) Payments() quickbooks.PaymentsClient {
	return c.payments
}

// Vendors returns the vendors client.
func (c *Client) Vendors() quickbooks.VendorsClient {
	return c.vendors
}

// Bills returns the bills client.
func (c *Client) Bills() quickbooks.BillsClient {
	return c.bills
}

// Items returns the items client.
func (c *Client) Items() quickbooks.ItemsClient {
	return c.items
}

// Accounts returns the accounts client.
func (c *Client) Accounts() quickbooks.AccountsClient {
	return c.accounts
}

// AuthorizationURL returns the consent URL to send the user to.
func (c *Client) AuthorizationURL(state string) string {
	return c.oauth.AuthorizationURL(state)
}

// ExchangeCode trades an authorization code for tokens and persists them.
func (c *Client) ExchangeCode(ctx context.Context, code, realmID string) (*quickbooks.BearerToken, error) {
	token, err := c.oauth.Exchange(ctx, code, realmID)
	if err != nil {
		return nil, err
	}

	if err := c.store.StoreTokens(ctx, token); err != nil {
		return nil, fmt.Errorf("storing tokens: %w", err)
	}

	c.logger.Info("authorization code exchanged", map[string]interface{}{
		"realm_id": realmID,
	})

	return token, nil
}

// RevokeToken revokes the stored refresh token and clears the store.
func (c *Client) RevokeToken(ctx context.Context) error {
	token, err := c.store.GetTokens(ctx)
	if err != nil {
		return fmt.Errorf("loading tokens: %w", err)
	}

	if token == nil || token.RefreshToken == "" {
		return quickbooks.NewError(quickbooks.ErrorKindUnauthorized, "no tokens to revoke")
	}

	if err := c.oauth.Revoke(ctx, token.RefreshToken); err != nil {
		return err
	}

	if err := c.store.ClearTokens(ctx); err != nil {
		return fmt.Errorf("clearing tokens: %w", err)
	}

	c.logger.Info("connection revoked", map[string]interface{}{
		"realm_id": token.RealmID,
	})

	return nil
}

// Query issues one query statement and returns the unwrapped records.
func (c *Client) Query(ctx context.Context, stmt string) ([]map[string]interface{}, error) {
	return queryPage[map[string]interface{}](ctx, c, stmt)
}

// QueryAll pages through all records matching stmt. The statement must not
// carry its own STARTPOSITION or MAXRESULTS clauses.
func (c *Client) QueryAll(ctx context.Context, stmt string, pageSize int) ([]map[string]interface{}, error) {
	return queryAll[map[string]interface{}](ctx, c, stmt, pageSize)
}
