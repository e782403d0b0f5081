package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type editAssetCmd struct {
	fields fieldFlags
}

func (*editAssetCmd) Name() string     { return "edit-asset" }
func (*editAssetCmd) Synopsis() string { return "edit an asset's name, value, quantity or source" }
func (*editAssetCmd) Usage() string {
	return `edit-asset [-name <name>] [-current-value <value>] [-quantity <qty>] [-source manual|market_api] <asset-id>

  Updates an asset. Fields that are not given keep their current value.
`
}

func (c *editAssetCmd) SetFlags(f *flag.FlagSet) {
	c.fields.register(f, manage.AssetEditFields...)
}

func (c *editAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := singleID(f, "asset")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := newManager(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	events := []manage.Event{{Kind: manage.EditAsset, ID: id}}
	events = append(events, c.fields.changes(f, manage.ChangeAsset)...)
	events = append(events, manage.Event{Kind: manage.SubmitAsset})
	return run(ctx, m, events...)
}
