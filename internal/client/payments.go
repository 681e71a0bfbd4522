package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type paymentsClient struct {
	client *Client
}

func (p *paymentsClient) Get(ctx context.Context, id string) (*quickbooks.Payment, error) {
	return getEntity[quickbooks.Payment](ctx, p.client, "payment", "Payment", id)
}

func (p *paymentsClient) List(ctx context.Context, filter string) ([]quickbooks.Payment, error) {
	return listEntities[quickbooks.Payment](ctx, p.client, "Payment", filter)
}

func (p *paymentsClient) Create(ctx context.Context, payment *quickbooks.Payment) (*quickbooks.Payment, error) {
	return createEntity(ctx, p.client, "payment", "Payment", payment)
}

func (p *paymentsClient) Update(ctx context.Context, payment *quickbooks.Payment) (*quickbooks.Payment, error) {
	return updateEntity(ctx, p.client, "payment", "Payment", payment)
}

func (p *paymentsClient) Delete(ctx context.Context, id, syncToken string) error {
	return deleteEntity(ctx, p.client, "payment", "Payment", id, syncToken)
}
