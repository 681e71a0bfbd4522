package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type billsClient struct {
	client *Client
}

func (b *billsClient) Get(ctx context.Context, id string) (*quickbooks.Bill, error) {
	return getEntity[quickbooks.Bill](ctx, b.client, "bill", "Bill", id)
}

func (b *billsClient) List(ctx context.Context, filter string) ([]quickbooks.Bill, error) {
	return listEntities[quickbooks.Bill](ctx, b.client, "Bill", filter)
}

func (b *billsClient) Create(ctx context.Context, bill *quickbooks.Bill) (*quickbooks.Bill, error) {
	return createEntity(ctx, b.client, "bill", "Bill", bill)
}

func (b *billsClient) Update(ctx context.Context, bill *quickbooks.Bill) (*quickbooks.Bill, error) {
	return updateEntity(ctx, b.client, "bill", "Bill", bill)
}

func (b *billsClient) Delete(ctx context.Context, id, syncToken string) error {
	return deleteEntity(ctx, b.client, "bill", "Bill", id, syncToken)
}
