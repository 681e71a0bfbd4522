package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

type accountsClient struct {
	client *Client
}

func (a *accountsClient) Get(ctx context.Context, id string) (*quickbooks.Account, error) {
	return getEntity[quickbooks.Account](ctx, a.client, "account", "Account", id)
}

// List filters to active accounts when no filter is given.
func (a *accountsClient) List(ctx context.Context, filter string) ([]quickbooks.Account, error) {
	if filter == "" {
		filter = "Active = true"
	}

	return listEntities[quickbooks.Account](ctx, a.client, "Account", filter)
}

func (a *accountsClient) Create(ctx context.Context, account *quickbooks.Account) (*quickbooks.Account, error) {
	return createEntity(ctx, a.client, "account", "Account", account)
}

func (a *accountsClient) Update(ctx context.Context, account *quickbooks.Account) (*quickbooks.Account, error) {
	return updateEntity(ctx, a.client, "account", "Account", account)
}
