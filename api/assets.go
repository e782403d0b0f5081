package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/etnz/networth"
)

func assetPath(id string) string { return "/assets/" + url.PathEscape(id) }

// ListAssets returns every asset, most recent first.
func (c *Client) ListAssets(ctx context.Context) ([]networth.Asset, error) {
	var assets []networth.Asset
	err := c.get(ctx, "/assets", &assets)
	return assets, err
}

// GetAsset returns the asset id.
func (c *Client) GetAsset(ctx context.Context, id string) (networth.Asset, error) {
	var asset networth.Asset
	err := c.get(ctx, assetPath(id), &asset)
	return asset, err
}

// CreateAsset creates an asset. The service assigns its id.
func (c *Client) CreateAsset(ctx context.Context, draft networth.AssetDraft) (networth.Created, error) {
	var created networth.Created
	err := c.sendJSON(ctx, http.MethodPost, "/assets", draft, &created)
	return created, err
}

// UpdateAsset applies patch to the asset id.
func (c *Client) UpdateAsset(ctx context.Context, id string, patch networth.AssetPatch) error {
	var a ack
	if err := c.sendJSON(ctx, http.MethodPut, assetPath(id), patch, &a); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "asset updated", "id", id, "message", a.Message)
	return nil
}

// DeleteAsset deletes the asset id.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	var a ack
	if err := c.do(ctx, request{method: http.MethodDelete, path: assetPath(id)}, &a); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "asset deleted", "id", id, "message", a.Message)
	return nil
}

// AssetHistory returns the recorded values of the asset id.
func (c *Client) AssetHistory(ctx context.Context, id string) ([]networth.AssetHistory, error) {
	var history []networth.AssetHistory
	err := c.get(ctx, assetPath(id)+"/history", &history)
	return history, err
}
