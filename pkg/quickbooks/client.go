package quickbooks

import (
	"context"
	"time"
)

// Environment selects which QuickBooks company host the client talks to.
type Environment string

const (
	// EnvironmentSandbox targets sandbox companies.
	EnvironmentSandbox Environment = "sandbox"

	// EnvironmentProduction targets production companies.
	EnvironmentProduction Environment = "production"
)

// BearerToken is the credential record the client passes between the token
// store and the API. ExpiresAt is an epoch-seconds estimate computed from the
// provider's expires_in at issuance; a record is never persisted without its
// realm.
type BearerToken struct {
	AccessToken  string `json:"access_token"            yaml:"access_token"`
	RefreshToken string `json:"refresh_token"           yaml:"refresh_token"`
	RealmID      string `json:"realm_id"                yaml:"realm_id"`
	ExpiresAt    int64  `json:"expires_at"              yaml:"expires_at"`
	TokenType    string `json:"token_type,omitempty"    yaml:"token_type,omitempty"`
}

// TokenStore is the persistence capability supplied by the host application.
// GetTokens returns (nil, nil) when no credentials are stored. Implementations
// must be safe to call repeatedly; the client performs at most one write per
// refresh and at most one clear per failed refresh.
type TokenStore interface {
	GetTokens(ctx context.Context) (*BearerToken, error)
	StoreTokens(ctx context.Context, token *BearerToken) error
	ClearTokens(ctx context.Context) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// Config represents client configuration for building a quickbooks.Client.
//
// ClientID, ClientSecret, RedirectURI, and TokenStore are mandatory; their
// absence is a construction-time error. Environment defaults to sandbox.
type Config struct {
	// ClientID is the OAuth2 app client ID from the Intuit developer portal.
	ClientID string
	// ClientSecret is the OAuth2 app client secret.
	ClientSecret string
	// RedirectURI is the registered OAuth2 redirect target.
	RedirectURI string
	// Environment selects sandbox or production hosts. Defaults to sandbox.
	Environment Environment
	// Scopes requested during authorization. Defaults to the accounting scope.
	Scopes []string
	// TokenStore persists credentials across refreshes. Required.
	TokenStore TokenStore
	// Logger is an optional structured logging sink. Nil is a no-op.
	Logger Logger

	// Endpoint overrides the environment-derived API base URL. Intended for
	// tests and proxies; leave empty otherwise.
	Endpoint string
	// MinorVersion is the API minor version appended to every request.
	// Defaults to 65 when zero.
	MinorVersion int
	// Debug enables request/response logging through Logger.
	Debug bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds each physical HTTP attempt. Defaults to 30s.
	HTTPTimeout time.Duration

	// RetryMax is the transport-level retry budget for connection errors and
	// 5xx responses. Zero keeps the default.
	RetryMax int
	// RetryWaitMin is the minimum transport-level retry backoff.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum transport-level retry backoff.
	RetryWaitMax time.Duration
}

// InvoicesClient provides invoice operations.
type InvoicesClient interface {
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, filter string) ([]Invoice, error)
	Create(ctx context.Context, invoice *Invoice) (*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) (*Invoice, error)
	Delete(ctx context.Context, id, syncToken string) error
}

// CustomersClient provides customer operations.
type CustomersClient interface {
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter string) ([]Customer, error)
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Update(ctx context.Context, customer *Customer) (*Customer, error)
}

// PaymentsClient provides payment operations.
type PaymentsClient interface {
	Get(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter string) ([]Payment, error)
	Create(ctx context.Context, payment *Payment) (*Payment, error)
	Update(ctx context.Context, payment *Payment) (*Payment, error)
	Delete(ctx context.Context, id, syncToken string) error
}

// VendorsClient provides vendor operations.
type VendorsClient interface {
	Get(ctx context.Context, id string) (*Vendor, error)
	List(ctx context.Context, filter string) ([]Vendor, error)
	Create(ctx context.Context, vendor *Vendor) (*Vendor, error)
	Update(ctx context.Context, vendor *Vendor) (*Vendor, error)
}

// BillsClient provides bill operations.
type BillsClient interface {
	Get(ctx context.Context, id string) (*Bill, error)
	List(ctx context.Context, filter string) ([]Bill, error)
	Create(ctx context.Context, bill *Bill) (*Bill, error)
	Update(ctx context.Context, bill *Bill) (*Bill, error)
	Delete(ctx context.Context, id, syncToken string) error
}

// ItemsClient provides item operations. List without a filter returns active
// items only.
type ItemsClient interface {
	Get(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, filter string) ([]Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, item *Item) (*Item, error)
}

// AccountsClient provides account operations. List without a filter returns
// active accounts only.
type AccountsClient interface {
	Get(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, filter string) ([]Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	Update(ctx context.Context, account *Account) (*Account, error)
}

// EntityClients provides access to all per-entity clients.
type EntityClients interface {
	Invoices() InvoicesClient
	Customers() CustomersClient
	Payments() PaymentsClient
	Vendors() VendorsClient
	Bills() BillsClient
	Items() ItemsClient
	Accounts() AccountsClient
}

// AuthClient provides the OAuth2 lifecycle operations the host application
// drives directly.
type AuthClient interface {
	// AuthorizationURL returns the URL to send the user to for consent.
	AuthorizationURL(state string) string
	// ExchangeCode trades an authorization code for tokens and persists them.
	ExchangeCode(ctx context.Context, code, realmID string) (*BearerToken, error)
	// RevokeToken revokes the stored refresh token and clears the store.
	RevokeToken(ctx context.Context) error
}

// QueryClient issues raw query-language statements. Typed access goes through
// the per-entity List methods; these variants decode into generic maps.
type QueryClient interface {
	// Query issues one statement and returns the unwrapped entity array.
	Query(ctx context.Context, stmt string) ([]map[string]interface{}, error)
	// QueryAll pages through all matching records. The statement must not
	// carry its own STARTPOSITION/MAXRESULTS clauses.
	QueryAll(ctx context.Context, stmt string, pageSize int) ([]map[string]interface{}, error)
}

// Client is the full QuickBooks Online API client surface.
type Client interface {
	EntityClients
	AuthClient
	QueryClient

	// GetCompanyInfo fetches the company record for the connected realm.
	GetCompanyInfo(ctx context.Context) (*CompanyInfo, error)
}
