package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/view"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the value history of an asset" }
func (*historyCmd) Usage() string {
	return `history <asset-id>

  Displays the values recorded by the service for a single asset.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (*historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := singleID(f, "asset")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	c, _, err := newClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	page := view.NewPage(view.SlotHistory)
	if err := view.RefreshHistory(ctx, c, page, newTerminal(stderr), id); err != nil {
		return subcommands.ExitFailure
	}
	printMarkdown(page.Markdown())
	return subcommands.ExitSuccess
}
