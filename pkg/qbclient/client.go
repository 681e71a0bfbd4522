// Package qbclient creates QuickBooks Online API clients.
//
// The package is a thin constructor layer over the internal implementation:
// it validates configuration and hands back the quickbooks.Client interface.
package qbclient

import (
	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/client"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// New creates a client from config.
//
// ClientID, ClientSecret, RedirectURI, and TokenStore are mandatory and their
// absence fails construction before any network activity. Environment
// defaults to sandbox.
func New(config *quickbooks.Config) (quickbooks.Client, error) {
	return client.New(config)
}

// NewSandbox creates a sandbox client with the minimal required settings.
func NewSandbox(clientID, clientSecret, redirectURI string, store quickbooks.TokenStore) (quickbooks.Client, error) {
	return New(&quickbooks.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		Environment:  quickbooks.EnvironmentSandbox,
		TokenStore:   store,
	})
}

// NewProduction creates a production client with the minimal required
// settings.
func NewProduction(clientID, clientSecret, redirectURI string, store quickbooks.TokenStore) (quickbooks.Client, error) {
	return New(&quickbooks.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		Environment:  quickbooks.EnvironmentProduction,
		TokenStore:   store,
	})
}
