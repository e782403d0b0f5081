package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type editDebtCmd struct {
	fields fieldFlags
}

func (*editDebtCmd) Name() string     { return "edit-debt" }
func (*editDebtCmd) Synopsis() string { return "change the name, balance or interest rate of a debt" }
func (*editDebtCmd) Usage() string {
	return `edit-debt [-name <name>] [-current-value <balance>] [-interest-rate <percent>] <debt-id>

  Updates a debt. Fields that are not given keep their current value.
`
}

func (c *editDebtCmd) SetFlags(f *flag.FlagSet) {
	c.fields.register(f, manage.DebtEditFields...)
}

func (c *editDebtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := singleID(f, "debt")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := newManager(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	events := []manage.Event{{Kind: manage.EditDebt, ID: id}}
	events = append(events, c.fields.changes(f, manage.ChangeDebt)...)
	events = append(events, manage.Event{Kind: manage.SubmitDebt})
	return run(ctx, m, events...)
}
