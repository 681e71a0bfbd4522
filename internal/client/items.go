package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type itemsClient struct {
	client *Client
}

func (i *itemsClient) Get(ctx context.Context, id string) (*quickbooks.Item, error) {
	return getEntity[quickbooks.Item](ctx, i.client, "item", "Item", id)
}

// List filters to active items when no filter is given.
func (i *itemsClient) List(ctx context.Context, filter string) ([]quickbooks.Item, error) {
	if filter == "" {
		filter = "Active = true"
	}

	return listEntities[quickbooks.Item](ctx, i.client, "Item", filter)
}

func (i *itemsClient) Create(ctx context.Context, item *quickbooks.Item) (*quickbooks.Item, error) {
	return createEntity(ctx, i.client, "item", "Item", item)
}

func (i *itemsClient) Update(ctx context.Context, item *quickbooks.Item) (*quickbooks.Item, error) {
	return updateEntity(ctx, i.client, "item", "Item", item)
}
