package client

import (
	"context"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// GetCompanyInfo fetches the company record for the connected realm. The
// resource is addressed by realm ID, which comes from the stored token.
func (c *Client) GetCompanyInfo(ctx context.Context) (*quickbooks.CompanyInfo, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	return getEntity[quickbooks.CompanyInfo](ctx, c, "companyinfo", "CompanyInfo", token.RealmID)
}
