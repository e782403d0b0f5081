package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/view"
	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list every asset" }
func (*assetsCmd) Usage() string {
	return `assets

  Lists every asset with its buy price, purchase date and ID.
`
}

func (*assetsCmd) SetFlags(*flag.FlagSet) {}

func (*assetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, _, err := newClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	page := view.NewPage(view.SlotAssets)
	_, err = view.RefreshAssets(ctx, c, page, newTerminal(stderr), view.Full)
	printMarkdown(page.Markdown())
	if err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
