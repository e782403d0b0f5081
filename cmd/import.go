package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/networth"
	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type importCmd struct {
	kind string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "upload assets or debts from a JSON or CSV file" }
func (*importCmd) Usage() string {
	return `import -kind assets|debts <file>

  Uploads the records of a .json or .csv file. Records whose ID already exists
  are skipped. Records that cannot be read are reported while the others are
  imported.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "records in the file: assets or debts")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "expected exactly one file to import")
		return subcommands.ExitUsageError
	}
	kind, err := networth.ParseKind(c.kind)
	if err != nil || kind == networth.KindAll {
		fmt.Fprintf(stderr, "-kind must be %s or %s\n", networth.KindAssets, networth.KindDebts)
		return subcommands.ExitUsageError
	}

	filename := f.Arg(0)
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	m, err := newManager(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return run(ctx, m, manage.Event{Kind: manage.Import, Records: kind, Filename: filepath.Base(filename), Body: file})
}
