package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type networthCmd struct{}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the current net worth" }
func (*networthCmd) Usage() string {
	return `networth

  Displays total assets, total debts and net worth as computed by the service.
`
}

func (*networthCmd) SetFlags(*flag.FlagSet) {}

func (*networthCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, _, err := newClient()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	nw, err := c.NetWorth(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(netWorthMarkdown(nw))
	return subcommands.ExitSuccess
}

func netWorthMarkdown(nw networth.NetWorth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Net Worth")
	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Total Assets", networth.FormatCurrency(nw.TotalAssets, nw.Currency)},
			{"Total Debts", networth.FormatCurrency(nw.TotalDebts, nw.Currency)},
			{md.Bold("Net Worth"), md.Bold(networth.FormatCurrency(nw.NetWorth, nw.Currency))},
		},
	})
	if !nw.CalculatedAt.IsZero() {
		doc.PlainText(md.Italic("Calculated at " + nw.CalculatedAt.Local().Format("Jan 2, 2006 15:04")))
	}
	return doc.String()
}
