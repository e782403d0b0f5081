package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type addAssetCmd struct {
	fields fieldFlags
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "create an asset" }
func (*addAssetCmd) Usage() string {
	return `add-asset -name <name> -buy-price <price> -quantity <qty> [-type stock] [-current-value <value>]
          [-currency USD] [-purchase-date YYYY-MM-DD] [-source manual|market_api]

  Creates an asset. The purchase date defaults to today, the currency to USD.
  The current value is required, except for a stock whose source is market_api:
  the service fetches it.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	c.fields.register(f, manage.AssetFields...)
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	m, err := newManager(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	events := []manage.Event{{Kind: manage.AddAsset}}
	events = append(events, c.fields.changes(f, manage.ChangeAsset)...)
	events = append(events, manage.Event{Kind: manage.SubmitAsset})
	return run(ctx, m, events...)
}
