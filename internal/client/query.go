package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/internal/constants"
	internalhttp "github.com/Panoptic-IT-Solutions/quickbooks-client/internal/http"
)

// The query endpoint takes the statement verbatim as the request body.
const queryContentType = "application/text"

// queryResponseMetadata marks the envelope keys that describe the result set
// rather than carry it. The remaining key names the entity array.
var queryResponseMetadata = map[string]bool{
	"startPosition": true,
	"maxResults":    true,
	"totalCount":    true,
}

type queryEnvelope struct {
	QueryResponse map[string]json.RawMessage `json:"QueryResponse"`
	Time          string                     `json:"time"`
}

// queryPage issues one statement and decodes the unwrapped entity array. An
// envelope with no entity key (no matches) decodes to an empty slice.
func queryPage[T any](ctx context.Context, c *Client, stmt string) ([]T, error) {
	resp, err := c.http.Do(ctx, &internalhttp.Request{
		Method:      http.MethodPost,
		Path:        "/query",
		RawBody:     []byte(stmt),
		ContentType: queryContentType,
	})
	if err != nil {
		return nil, err
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding query response: %w", err)
	}

	for key, raw := range envelope.QueryResponse {
		if queryResponseMetadata[key] {
			continue
		}

		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding %s records: %w", key, err)
		}

		return records, nil
	}

	return []T{}, nil
}

// queryAll pages through every record matching stmt by appending
// STARTPOSITION and MAXRESULTS clauses. Positions are 1-based; a page shorter
// than pageSize ends the walk.
func queryAll[T any](ctx context.Context, c *Client, stmt string, pageSize int) ([]T, error) {
	if pageSize <= 0 || pageSize > constants.MaxQueryPageSize {
		pageSize = constants.MaxQueryPageSize
	}

	var all []T

	for position := 1; ; position += pageSize {
		paged := fmt.Sprintf("%s STARTPOSITION %d MAXRESULTS %d", stmt, position, pageSize)

		page, err := queryPage[T](ctx, c, paged)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		c.logger.Debug("query page fetched", map[string]interface{}{
			"position": position,
			"records":  len(page),
		})

		if len(page) < pageSize {
			return all, nil
		}
	}
}

// listEntities fetches all records of one entity type, optionally filtered by
// a WHERE condition.
func listEntities[T any](ctx context.Context, c *Client, entity, filter string) ([]T, error) {
	stmt := "SELECT * FROM " + entity
	if filter != "" {
		stmt += " WHERE " + filter
	}

	return queryAll[T](ctx, c, stmt, constants.MaxQueryPageSize)
}
