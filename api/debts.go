package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/etnz/networth"
)

func debtPath(id string) string { return "/debts/" + url.PathEscape(id) }

// ListDebts returns every debt, most recent first.
func (c *Client) ListDebts(ctx context.Context) ([]networth.Debt, error) {
	var debts []networth.Debt
	err := c.get(ctx, "/debts", &debts)
	return debts, err
}

// GetDebt returns the debt id.
func (c *Client) GetDebt(ctx context.Context, id string) (networth.Debt, error) {
	var debt networth.Debt
	err := c.get(ctx, debtPath(id), &debt)
	return debt, err
}

// CreateDebt creates a debt. The service assigns its id.
func (c *Client) CreateDebt(ctx context.Context, draft networth.DebtDraft) (networth.Created, error) {
	var created networth.Created
	err := c.sendJSON(ctx, http.MethodPost, "/debts", draft, &created)
	return created, err
}

// UpdateDebt applies patch to the debt id.
func (c *Client) UpdateDebt(ctx context.Context, id string, patch networth.DebtPatch) error {
	var a ack
	if err := c.sendJSON(ctx, http.MethodPut, debtPath(id), patch, &a); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "debt updated", "id", id, "message", a.Message)
	return nil
}

// DeleteDebt deletes the debt id.
func (c *Client) DeleteDebt(ctx context.Context, id string) error {
	var a ack
	if err := c.do(ctx, request{method: http.MethodDelete, path: debtPath(id)}, &a); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "debt deleted", "id", id, "message", a.Message)
	return nil
}
