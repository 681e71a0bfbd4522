package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/Panoptic-IT-Solutions/quickbooks-client/internal/http"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// Write responses wrap the record under its entity name, for example
// {"Invoice": {...}, "time": "..."}.

// getEntity fetches one record by ID. resource is the URL path segment
// (lowercase), entity the envelope key.
func getEntity[T any](ctx context.Context, c *Client, resource, entity, id string) (*T, error) {
	if id == "" {
		return nil, quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, entity+" ID is required")
	}

	resp, err := c.http.Get(ctx, "/"+resource+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return unwrapEntity[T](resp.Body, entity)
}

// createEntity posts a new record and returns the server's copy.
func createEntity[T any](ctx context.Context, c *Client, resource, entity string, record *T) (*T, error) {
	if record == nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, entity+" payload is required")
	}

	resp, err := c.http.Post(ctx, "/"+resource, record)
	if err != nil {
		return nil, err
	}

	return unwrapEntity[T](resp.Body, entity)
}

// updateEntity performs a sparse-less full update. The record must carry its
// ID and current SyncToken.
func updateEntity[T any](ctx context.Context, c *Client, resource, entity string, record *T) (*T, error) {
	if record == nil {
		return nil, quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, entity+" payload is required")
	}

	resp, err := c.http.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "/" + resource,
		Query:  url.Values{"operation": {"update"}},
		Body:   record,
	})
	if err != nil {
		return nil, err
	}

	return unwrapEntity[T](resp.Body, entity)
}

// deleteEntity soft-deletes a record. The API keeps the record and flags it
// deleted; only the ID and SyncToken travel in the body.
func deleteEntity(ctx context.Context, c *Client, resource, entity, id, syncToken string) error {
	if id == "" {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, entity+" ID is required")
	}

	if syncToken == "" {
		return quickbooks.NewError(quickbooks.ErrorKindInvalidConfig, entity+" sync token is required")
	}

	body := struct {
		ID        string `json:"Id"`
		SyncToken string `json:"SyncToken"`
	}{ID: id, SyncToken: syncToken}

	_, err := c.http.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "/" + resource,
		Query:  url.Values{"operation": {"delete"}},
		Body:   body,
	})

	return err
}

func unwrapEntity[T any](body []byte, entity string) (*T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", entity, err)
	}

	raw, ok := envelope[entity]
	if !ok {
		return nil, quickbooks.NewError(quickbooks.ErrorKindAPI,
			fmt.Sprintf("response has no %s record", entity))
	}

	record := new(T)
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", entity, err)
	}

	return record, nil
}
