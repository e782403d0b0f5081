package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/networth"
	"github.com/etnz/networth/manage"
	"github.com/google/subcommands"
)

type exportCmd struct {
	kind   string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "download records as JSON or CSV" }
func (*exportCmd) Usage() string {
	return `export [-kind assets|debts|all] [-format json|csv] [-o <file>]

  Downloads records from the service. The file is named as the service
  proposes unless -o is given; "-o -" writes to stdout. The "all" kind is only
  available in JSON.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", string(networth.KindAll), "records to export: assets, debts or all")
	f.StringVar(&c.format, "format", string(networth.FormatJSON), "file format: json or csv")
	f.StringVar(&c.output, "o", "", "output file, - for stdout")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := networth.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	format, err := networth.ParseFileFormat(c.format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := newManager(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// The download is buffered so that a failed export leaves no file behind.
	var buf bytes.Buffer
	mut, err := m.Dispatch(ctx, manage.Event{Kind: manage.Export, Records: kind, Format: format, Out: &buf})
	if err != nil {
		return subcommands.ExitFailure
	}

	out := c.output
	if out == "" {
		out = exportName(mut.Filename, kind, format)
	}
	if out == "-" {
		_, err = io.Copy(stdout, &buf)
	} else if err = os.WriteFile(out, buf.Bytes(), 0644); err == nil {
		fmt.Fprintf(stderr, "Exported %s to %s\n", kind, out)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// exportName returns the file name proposed by the service, or a default one.
func exportName(proposed string, kind networth.Kind, format networth.FileFormat) string {
	if name := filepath.Base(proposed); proposed != "" && name != "." && name != "/" {
		return name
	}
	return fmt.Sprintf("%s.%s", kind, format)
}
