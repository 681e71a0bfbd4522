package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

const (
	defaultNATSBucket = "qb-tokens"
	defaultNATSKey    = "default"
)

// NATSConfig configures the NATS JetStream KV token store.
type NATSConfig struct {
	// URL is the NATS server URL. Defaults to nats.DefaultURL.
	URL string
	// Bucket is the KV bucket name. Defaults to "qb-tokens". Created if it
	// does not exist.
	Bucket string
	// Key is the KV key for the token record. Set per realm when one bucket
	// serves several connections. Defaults to "default".
	Key string
	// Options are extra connection options (credentials, TLS).
	Options []nats.Option
}

// NATSStore persists tokens in a NATS JetStream key-value bucket, letting
// several processes share one QuickBooks connection.
type NATSStore struct {
	conn *nats.Conn
	kv   nats.KeyValue
	key  string
}

// NewNATSStore connects to NATS and binds (creating if needed) the KV bucket.
func NewNATSStore(config *NATSConfig) (*NATSStore, error) {
	if config == nil {
		config = &NATSConfig{}
	}

	serverURL := config.URL
	if serverURL == "" {
		serverURL = nats.DefaultURL
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = defaultNATSBucket
	}

	key := config.Key
	if key == "" {
		key = defaultNATSKey
	}

	conn, err := nats.Connect(serverURL, config.Options...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	jetStream, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening JetStream context: %w", err)
	}

	keyValue, err := jetStream.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		keyValue, err = jetStream.CreateKeyValue(&nats.KeyValueConfig{Bucket: bucket})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %s: %w", bucket, err)
	}

	return &NATSStore{conn: conn, kv: keyValue, key: key}, nil
}

// GetTokens reads the token record, returning (nil, nil) when the key is
// absent.
func (s *NATSStore) GetTokens(_ context.Context) (*quickbooks.BearerToken, error) {
	entry, err := s.kv.Get(s.key)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading token record: %w", err)
	}

	var token quickbooks.BearerToken
	if err := json.Unmarshal(entry.Value(), &token); err != nil {
		return nil, fmt.Errorf("parsing token record: %w", err)
	}

	return &token, nil
}

// StoreTokens writes the token record.
func (s *NATSStore) StoreTokens(_ context.Context, token *quickbooks.BearerToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	if _, err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("writing token record: %w", err)
	}

	return nil
}

// ClearTokens deletes the token record. A missing key is not an error.
func (s *NATSStore) ClearTokens(_ context.Context) error {
	err := s.kv.Delete(s.key)
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting token record: %w", err)
	}

	return nil
}

// Close closes the NATS connection.
func (s *NATSStore) Close() {
	s.conn.Close()
}
