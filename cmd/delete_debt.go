package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type deleteDebtCmd struct {
	yes bool
}

func (*deleteDebtCmd) Name() string     { return "delete-debt" }
func (*deleteDebtCmd) Synopsis() string { return "delete a debt" }
func (*deleteDebtCmd) Usage() string {
	return `delete-debt [-y] <debt-id>

  Deletes a debt after confirmation.
`
}

func (c *deleteDebtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *deleteDebtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := singleID(f, "debt")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := newManager(confirmer(c.yes))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return run(ctx, m, manage.Event{Kind: manage.DeleteDebt, ID: id})
}
