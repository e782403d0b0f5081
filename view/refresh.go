package view

import (
	"context"
	"fmt"

	"github.com/etnz/networth"
)

// SummaryReader reads the daily summary.
type SummaryReader interface {
	Summary(ctx context.Context) (networth.Summary, error)
}

// AssetLister lists assets.
type AssetLister interface {
	ListAssets(ctx context.Context) ([]networth.Asset, error)
}

// DebtLister lists debts.
type DebtLister interface {
	ListDebts(ctx context.Context) ([]networth.Debt, error)
}

// HistoryReader reads an asset and its recorded values.
type HistoryReader interface {
	GetAsset(ctx context.Context, id string) (networth.Asset, error)
	AssetHistory(ctx context.Context, id string) ([]networth.AssetHistory, error)
}

// Source is everything the dashboard reads.
type Source interface {
	SummaryReader
	AssetLister
	DebtLister
}

// Reader is everything the pages and the assistant read.
type Reader interface {
	Source
	HistoryReader
}

// RefreshSummary renders the summary into page. On failure the totals are
// shown as zero.
func RefreshSummary(ctx context.Context, src SummaryReader, page *Page, n Notifier) (networth.Summary, error) {
	s, err := src.Summary(ctx)
	if err != nil {
		notifyError(n, err)
		page.Set(SlotSummary, SummaryMarkdown(networth.Summary{}))
		return networth.Summary{}, fmt.Errorf("failed to load summary: %w", err)
	}
	page.Set(SlotSummary, SummaryMarkdown(s))
	return s, nil
}

// RefreshAssets renders the asset list into page. The whole list is always
// fetched, layout only decides what is shown.
func RefreshAssets(ctx context.Context, src AssetLister, page *Page, n Notifier, layout Layout) ([]networth.Asset, error) {
	slot, title := SlotAssets, "Assets"
	if layout == Recent {
		slot, title = SlotRecentAssets, "Recent Assets"
	}
	assets, err := src.ListAssets(ctx)
	if err != nil {
		notifyError(n, err)
		page.Set(slot, emptyState(title, "Failed to load assets"))
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	page.Set(slot, AssetsMarkdown(assets, layout))
	return assets, nil
}

// RefreshDebts renders the debt list into page.
func RefreshDebts(ctx context.Context, src DebtLister, page *Page, n Notifier, layout Layout) ([]networth.Debt, error) {
	slot, title := SlotDebts, "Debts"
	if layout == Recent {
		slot, title = SlotRecentDebts, "Recent Debts"
	}
	debts, err := src.ListDebts(ctx)
	if err != nil {
		notifyError(n, err)
		page.Set(slot, emptyState(title, "Failed to load debts"))
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	page.Set(slot, DebtsMarkdown(debts, layout))
	return debts, nil
}

// RefreshHistory renders the recorded values of the asset id into page.
func RefreshHistory(ctx context.Context, src HistoryReader, page *Page, n Notifier, id string) error {
	asset, err := src.GetAsset(ctx, id)
	if err == nil {
		var history []networth.AssetHistory
		if history, err = src.AssetHistory(ctx, id); err == nil {
			page.Set(SlotHistory, HistoryMarkdown(asset, history))
			return nil
		}
	}
	notifyError(n, err)
	page.Set(SlotHistory, emptyState("History", "Failed to load history"))
	return fmt.Errorf("failed to load history of %q: %w", id, err)
}
