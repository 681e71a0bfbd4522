package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type customersClient struct {
	client *Client
}

func (c *customersClient) Get(ctx context.Context, id string) (*quickbooks.Customer, error) {
	return getEntity[quickbooks.Customer](ctx, c.client, "customer", "Customer", id)
}

func (c *customersClient) List(ctx context.Context, filter string) ([]quickbooks.Customer, error) {
	return listEntities[quickbooks.Customer](ctx, c.client, "Customer", filter)
}

func (c *customersClient) Create(ctx context.Context, customer *quickbooks.Customer) (*quickbooks.Customer, error) {
	return createEntity(ctx, c.client, "customer", "Customer", customer)
}

func (c *customersClient) Update(ctx context.Context, customer *quickbooks.Customer) (*quickbooks.Customer, error) {
	return updateEntity(ctx, c.client, "customer", "Customer", customer)
}
