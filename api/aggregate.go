package api

import (
	"context"

	"github.com/etnz/networth"
)

// NetWorth returns the service's net worth aggregate.
func (c *Client) NetWorth(ctx context.Context) (networth.NetWorth, error) {
	var nw networth.NetWorth
	err := c.get(ctx, "/networth", &nw)
	return nw, err
}

// Summary returns the service's daily summary.
func (c *Client) Summary(ctx context.Context) (networth.Summary, error) {
	var s networth.Summary
	err := c.get(ctx, "/summary", &s)
	return s, err
}

// Health checks that the service is up. The payload is whatever the service reports.
func (c *Client) Health(ctx context.Context) (networth.Health, error) {
	h := networth.Health{}
	err := c.get(ctx, "/health", &h)
	return h, err
}
