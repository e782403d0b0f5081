package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

// newManager returns a management controller talking to the configured
// service, notifying and confirming on the terminal.
func newManager(confirm manage.Confirmer) (*manage.Manager, error) {
	c, _, err := newClient()
	if err != nil {
		return nil, err
	}
	if confirm == nil {
		confirm = newPrompter(stderr, stdin)
	}
	return manage.NewManager(c, newTerminal(stderr), confirm), nil
}

// run dispatches events in order and prints the page once they all
// succeeded. The Manager already reported any failure.
func run(ctx context.Context, m *manage.Manager, events ...manage.Event) subcommands.ExitStatus {
	for _, ev := range events {
		if _, err := m.Dispatch(ctx, ev); err != nil {
			return subcommands.ExitFailure
		}
	}
	if md := m.Page().Markdown(); md != "" {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// fieldFlags binds one string flag per form field: "buy_price" becomes
// -buy-price. Only the flags given on the command line become changes, so
// that form defaults and edited values are kept.
type fieldFlags struct {
	fields []manage.Field
	values map[manage.Field]*string
}

func (ff *fieldFlags) register(f *flag.FlagSet, fields ...manage.Field) {
	ff.fields = fields
	ff.values = make(map[manage.Field]*string, len(fields))
	for _, field := range fields {
		ff.values[field] = f.String(flagName(field), "", field.Label())
	}
}

// changes returns one change event per flag set on f, in field order.
func (ff *fieldFlags) changes(f *flag.FlagSet, kind manage.EventKind) []manage.Event {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var events []manage.Event
	for _, field := range ff.fields {
		if set[flagName(field)] {
			events = append(events, manage.Event{Kind: kind, Field: field, Value: *ff.values[field]})
		}
	}
	return events
}

func flagName(field manage.Field) string {
	return strings.ReplaceAll(string(field), "_", "-")
}

// singleID returns the only positional argument of f.
func singleID(f *flag.FlagSet, what string) (string, error) {
	if f.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one %s ID, got %d arguments", what, f.NArg())
	}
	return f.Arg(0), nil
}
