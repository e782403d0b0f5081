package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type deleteAssetCmd struct {
	yes bool
}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "delete an asset" }
func (*deleteAssetCmd) Usage() string {
	return `delete-asset [-y] <asset-id>

  Deletes an asset after confirmation.
`
}

func (c *deleteAssetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *deleteAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := singleID(f, "asset")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := newManager(confirmer(c.yes))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return run(ctx, m, manage.Event{Kind: manage.DeleteAsset, ID: id})
}

// confirmer returns a Confirmer that accepts everything when yes is set, nil
// otherwise so that the terminal is asked.
func confirmer(yes bool) manage.Confirmer {
	if yes {
		return manage.ConfirmFunc(func(string) bool { return true })
	}
	return nil
}
