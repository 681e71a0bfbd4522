// Package commands implements the qb CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/qbclient"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/tokenstore"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Static errors for err113 compliance.
var (
	ErrClientIDRequired     = errors.New("client ID is required (use --client-id or QB_CLIENT_ID)")
	ErrClientSecretRequired = errors.New("client secret is required (use --client-secret or QB_CLIENT_SECRET)")
	ErrRedirectURIRequired  = errors.New("redirect URI is required (use --redirect-uri or QB_REDIRECT_URI)")
	ErrNotConnected         = errors.New("not connected (run 'qb connect auth' first)")
)

// createClient builds a client from viper configuration. The token store is
// NATS-backed when a NATS URL is configured, otherwise a file under ~/.qb.
func createClient() (quickbooks.Client, error) {
	clientID := viper.GetString("client-id")
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	clientSecret := viper.GetString("client-secret")
	if clientSecret == "" {
		clientSecret = promptSecret("Client secret: ")
	}

	if clientSecret == "" {
		return nil, ErrClientSecretRequired
	}

	redirectURI := viper.GetString("redirect-uri")
	if redirectURI == "" {
		return nil, ErrRedirectURIRequired
	}

	store, err := createTokenStore()
	if err != nil {
		return nil, err
	}

	return qbclient.New(&quickbooks.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		Environment:  quickbooks.Environment(viper.GetString("environment")),
		TokenStore:   store,
		Debug:        viper.GetBool("verbose"),
	})
}

func createTokenStore() (quickbooks.TokenStore, error) {
	if natsURL := viper.GetString("nats-url"); natsURL != "" {
		store, err := tokenstore.NewNATSStore(&tokenstore.NATSConfig{URL: natsURL})
		if err != nil {
			return nil, fmt.Errorf("creating NATS token store: %w", err)
		}

		return store, nil
	}

	path := viper.GetString("token-file")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}

		path = filepath.Join(home, ".qb", "tokens.json")
	}

	return tokenstore.NewFileStore(path), nil
}

// promptSecret reads a value from the terminal without echoing it. Returns
// empty when stdin is not a terminal.
func promptSecret(prompt string) string {
	if !term.IsTerminal(syscall.Stdin) {
		return ""
	}

	fmt.Fprint(os.Stderr, prompt)

	secretBytes, err := term.ReadPassword(syscall.Stdin)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return ""
	}

	return string(secretBytes)
}

// renderStructured writes data as JSON or YAML and reports whether it handled
// the configured output format. Table output stays with the caller.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(data); err != nil {
			return true, fmt.Errorf("encoding to JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(data); err != nil {
			return true, fmt.Errorf("encoding to YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func refName(ref *quickbooks.Ref) string {
	if ref == nil {
		return ""
	}

	if ref.Name != "" {
		return ref.Name
	}

	return ref.Value
}
