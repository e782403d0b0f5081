package view

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// SummaryInterval is how often Watch refreshes the summary by default.
const SummaryInterval = 30 * time.Second

// Dashboard is the dashboard page controller. It owns the two live charts.
//
// Create it with NewDashboard when the page is shown and Close it when it is
// left.
type Dashboard struct {
	src    Source
	page   *Page
	notify Notifier
	charts ChartFactory
	log    *slog.Logger

	mu           sync.Mutex
	distribution Chart
	comparison   Chart
}

// NewDashboard returns a dashboard reading from src. A nil notifier discards
// notifications, a nil factory draws TextCharts.
func NewDashboard(src Source, n Notifier, charts ChartFactory) *Dashboard {
	if n == nil {
		n = Discard
	}
	if charts == nil {
		charts = TextCharts{}
	}
	return &Dashboard{
		src:    src,
		page:   NewPage(DashboardSlots...),
		notify: n,
		charts: charts,
		log:    slog.Default(),
	}
}

// Page returns the rendered page.
func (d *Dashboard) Page() *Page { return d.page }

// Load refreshes every section. The reads run concurrently and a failing
// read only degrades its own section.
func (d *Dashboard) Load(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		d.RefreshSummary(ctx)
		return nil
	})
	g.Go(func() error {
		RefreshAssets(ctx, d.src, d.page, d.notify, Recent)
		return nil
	})
	g.Go(func() error {
		RefreshDebts(ctx, d.src, d.page, d.notify, Recent)
		return nil
	})
	g.Go(func() error {
		d.RefreshCharts(ctx)
		return nil
	})
	g.Wait()
}

// RefreshSummary refreshes the summary section.
func (d *Dashboard) RefreshSummary(ctx context.Context) {
	if _, err := RefreshSummary(ctx, d.src, d.page, d.notify); err != nil {
		d.log.Debug("summary refresh failed", "error", err)
	}
}

// RefreshCharts fetches the assets and replaces both charts.
func (d *Dashboard) RefreshCharts(ctx context.Context) {
	assets, err := d.src.ListAssets(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.destroyCharts()

	switch {
	case err != nil:
		d.log.Debug("chart refresh failed", "error", err)
		notifyError(d.notify, err)
		d.page.Set(SlotDistribution, emptyState("Charts", "Failed to load charts"))
		d.page.Set(SlotComparison, "")
		return
	case len(assets) == 0:
		d.page.Set(SlotDistribution, emptyState("Charts", "No assets to chart yet."))
		d.page.Set(SlotComparison, "")
		return
	}

	d.distribution = d.charts.NewChart(Doughnut, "Asset Distribution", Distribution(assets))
	d.comparison = d.charts.NewChart(Bar, "Invested vs Current Value", Comparison(assets))
	d.page.Set(SlotDistribution, d.distribution.Markdown())
	d.page.Set(SlotComparison, d.comparison.Markdown())
}

// destroyCharts discards the live charts. Callers hold d.mu.
func (d *Dashboard) destroyCharts() {
	if d.distribution != nil {
		d.distribution.Destroy()
		d.distribution = nil
	}
	if d.comparison != nil {
		d.comparison.Destroy()
		d.comparison = nil
	}
}

// Watch refreshes the summary every interval until ctx is done, calling
// render after each refresh. A non positive interval means SummaryInterval.
func (d *Dashboard) Watch(ctx context.Context, interval time.Duration, render func(*Page)) {
	if interval <= 0 {
		interval = SummaryInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.RefreshSummary(ctx)
			if render != nil {
				render(d.page)
			}
		}
	}
}

// Close destroys the live charts and clears the page.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.destroyCharts()
	d.page.Reset()
}

// Charts returns the live charts, nil when there are none.
func (d *Dashboard) Charts() (distribution, comparison Chart) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.distribution, d.comparison
}
