package constants

import "time"

// Intuit endpoints. The token and revocation hosts are shared between the
// sandbox and production environments; only the resource API host differs.
const (
	// SandboxAPIEndpoint is the resource API base URL for sandbox companies.
	SandboxAPIEndpoint = "https://sandbox-quickbooks.api.intuit.com"

	// ProductionAPIEndpoint is the resource API base URL for production companies.
	ProductionAPIEndpoint = "https://quickbooks.api.intuit.com"

	// TokenEndpoint is the OAuth2 token endpoint for code exchange and refresh.
	TokenEndpoint = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"

	// RevokeEndpoint is the OAuth2 token revocation endpoint.
	RevokeEndpoint = "https://developer.api.intuit.com/v2/oauth2/tokens/revoke"

	// AuthorizeEndpoint is the user-facing authorization URL.
	AuthorizeEndpoint = "https://appcenter.intuit.com/connect/oauth2"

	// CompanyAPIPath is the path prefix for realm-scoped resource calls.
	CompanyAPIPath = "/v3/company"
)

// Token lifecycle.
const (
	// TokenExpiryBuffer is subtracted from a token's expiry when deciding
	// whether it is still usable, absorbing clock skew and in-flight latency.
	TokenExpiryBuffer = 300 * time.Second

	// DefaultScope is the accounting API scope requested when none is configured.
	DefaultScope = "com.intuit.quickbooks.accounting"
)

// Client-side rate limiting.
const (
	// RateLimitCeiling is the maximum number of requests per window.
	RateLimitCeiling = 500

	// RateLimitWindow is the trailing window the ceiling applies to.
	RateLimitWindow = 60 * time.Second

	// RateLimitWaitBuffer pads the computed wait so the next slot opens
	// strictly after the oldest entry ages out of the window.
	RateLimitWaitBuffer = 100 * time.Millisecond
)

// Retry behavior.
const (
	// RateRetryMax is the maximum number of retries after a 429 response.
	RateRetryMax = 3

	// RateRetryBaseDelay is the initial backoff for 429 retries when the
	// server supplies no Retry-After hint; it doubles per attempt.
	RateRetryBaseDelay = 1 * time.Second

	// DefaultTransportRetryMax is the retryablehttp retry budget for
	// connection errors and 5xx responses.
	DefaultTransportRetryMax = 3

	// DefaultRetryWaitMin is the minimum transport-level retry backoff.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum transport-level retry backoff.
	DefaultRetryWaitMax = 30 * time.Second
)

// HTTP defaults.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations like token revocation.
	ShortHTTPTimeout = 10 * time.Second
)

// Query engine.
const (
	// MaxQueryPageSize is the hard cap the API places on MAXRESULTS.
	MaxQueryPageSize = 1000

	// DefaultMinorVersion is the API minor version sent with every request.
	DefaultMinorVersion = 65
)
