package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type addDebtCmd struct {
	fields fieldFlags
}

func (*addDebtCmd) Name() string     { return "add-debt" }
func (*addDebtCmd) Synopsis() string { return "create a debt" }
func (*addDebtCmd) Usage() string {
	return `add-debt -name <name> -principal <amount> [-type credit_card] [-current-value <balance>]
         [-interest-rate <percent>] [-currency USD] [-start-date YYYY-MM-DD]

  Creates a debt. The start date defaults to today, the currency to USD and
  the interest rate to 0.
`
}

func (c *addDebtCmd) SetFlags(f *flag.FlagSet) {
	c.fields.register(f, manage.DebtFields...)
}

func (c *addDebtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	m, err := newManager(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	events := []manage.Event{{Kind: manage.AddDebt}}
	events = append(events, c.fields.changes(f, manage.ChangeDebt)...)
	events = append(events, manage.Event{Kind: manage.SubmitDebt})
	return run(ctx, m, events...)
}
