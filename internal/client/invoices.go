package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type invoicesClient struct {
	client *Client
}

func (i *invoicesClient) Get(ctx context.Context, id string) (*quickbooks.Invoice, error) {
	return getEntity[quickbooks.Invoice](ctx, i.client, "invoice", "Invoice", id)
}

func (i *invoicesClient) List(ctx context.Context, filter string) ([]quickbooks.Invoice, error) {
	return listEntities[quickbooks.Invoice](ctx, i.client, "Invoice", filter)
}

func (i *invoicesClient) Create(ctx context.Context, invoice *quickbooks.Invoice) (*quickbooks.Invoice, error) {
	return createEntity(ctx, i.client, "invoice", "Invoice", invoice)
}

func (i *invoicesClient) Update(ctx context.Context, invoice *quickbooks.Invoice) (*quickbooks.Invoice, error) {
	return updateEntity(ctx, i.client, "invoice", "Invoice", invoice)
}

func (i *invoicesClient) Delete(ctx context.Context, id, syncToken string) error {
	return deleteEntity(ctx, i.client, "invoice", "Invoice", id, syncToken)
}
