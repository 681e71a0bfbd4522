// Package quickbooks defines the public types for the QuickBooks Online API
// client: entity shapes, the error taxonomy, configuration, and the client
// interfaces.
//
// Build a client with the qbclient package:
//
//	store, _ := tokenstore.NewFileStore("/var/lib/app/qb-tokens.json")
//	qb, err := qbclient.New(&quickbooks.Config{
//		ClientID:     os.Getenv("QB_CLIENT_ID"),
//		ClientSecret: os.Getenv("QB_CLIENT_SECRET"),
//		RedirectURI:  "https://example.com/callback",
//		Environment:  quickbooks.EnvironmentSandbox,
//		TokenStore:   store,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	invoices, err := qb.Invoices().List(ctx, "Balance > '0'")
//
// The client tracks token validity and refreshes transparently, enforces a
// client-side sliding-window rate budget (500 requests per rolling minute),
// and retries rate-limited (429) and unauthorized (401) responses within
// bounded budgets. Failures are normalized to *quickbooks.Error and
// distinguished by kind, not message text:
//
//	if quickbooks.IsRateLimited(err) { ... }
package quickbooks
