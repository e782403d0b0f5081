package cmd

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/networth/view"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	watch time.Duration
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display totals, recent records and charts" }
func (*dashboardCmd) Usage() string {
	return `dashboard [-watch <interval>]

  Displays the summary, the most recent assets and debts, the distribution of
  assets per type and the invested versus current value comparison.

  With -watch, the summary is refreshed every interval until interrupted.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.watch, "watch", 0, "refresh the summary periodically, e.g. "+view.SummaryInterval.String())
}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.watch < 0 {
		fmt.Fprintln(stderr, "-watch must not be negative")
		return subcommands.ExitUsageError
	}
	client, _, err := newClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	d := view.NewDashboard(client, newTerminal(stderr), nil)
	defer d.Close()
	d.Load(ctx)
	printMarkdown(d.Page().Markdown())

	if c.watch == 0 {
		return subcommands.ExitSuccess
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	d.Watch(ctx, c.watch, func(p *view.Page) {
		printMarkdown(p.Get(view.SlotSummary))
	})
	return subcommands.ExitSuccess
}
