package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type vendorsClient struct {
	client *Client
}

func (v *vendorsClient) Get(ctx context.Context, id string) (*quickbooks.Vendor, error) {
	return getEntity[quickbooks.Vendor](ctx, v.client, "vendor", "Vendor", id)
}

func (v *vendorsClient) List(ctx context.Context, filter string) ([]quickbooks.Vendor, error) {
	return listEntities[quickbooks.Vendor](ctx, v.client, "Vendor", filter)
}

func (v *vendorsClient) Create(ctx context.Context, vendor *quickbooks.Vendor) (*quickbooks.Vendor, error) {
	return createEntity(ctx, v.client, "vendor", "Vendor", vendor)
}

func (v *vendorsClient) Update(ctx context.Context, vendor *quickbooks.Vendor) (*quickbooks.Vendor, error) {
	return updateEntity(ctx, v.client, "vendor", "Vendor", vendor)
}
