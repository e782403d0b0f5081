package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/view"
	"github.com/google/subcommands"
)

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list every debt" }
func (*debtsCmd) Usage() string {
	return `debts

  Lists every debt with its start date and ID.
`
}

func (*debtsCmd) SetFlags(*flag.FlagSet) {}

func (*debtsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, _, err := newClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	page := view.NewPage(view.SlotDebts)
	_, err = view.RefreshDebts(ctx, c, page, newTerminal(stderr), view.Full)
	printMarkdown(page.Markdown())
	if err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
