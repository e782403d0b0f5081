package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/networth"
	"github.com/microcosm-cc/bluemonday"
	md "github.com/nao1215/markdown"
)

// Layout selects how much of a list is shown.
type Layout int

const (
	// Recent shows the first RecentLimit records with the essential columns.
	Recent Layout = iota
	// Full shows every record with every column.
	Full
)

// RecentLimit is the number of records shown in the Recent layout.
const RecentLimit = 5

// strict removes any markup from user supplied text.
var strict = bluemonday.StrictPolicy()

// cell makes s safe to be written in a table cell.
func cell(s string) string {
	s = strict.Sanitize(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

func emptyState(title, message string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.PlainText(md.Italic(message))
	return doc.String()
}

// SummaryMarkdown renders the four labelled totals of a summary.
func SummaryMarkdown(s networth.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Summary")

	sign := "positive"
	if s.TotalProfitLoss.IsNegative() {
		sign = "negative"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Total Assets", networth.FormatCurrency(s.TotalAssets, s.Currency)},
			{"Total Debts", networth.FormatCurrency(s.TotalDebts, s.Currency)},
			{md.Bold("Net Worth"), md.Bold(networth.FormatCurrency(s.NetWorth, s.Currency))},
			{"Profit/Loss", fmt.Sprintf("%s (%s)", networth.FormatCurrency(s.TotalProfitLoss, s.Currency), sign)},
		},
	})
	return doc.String()
}

// AssetsMarkdown renders assets as a table. An empty list renders a hint
// instead.
func AssetsMarkdown(assets []networth.Asset, layout Layout) string {
	title := "Assets"
	if layout == Recent {
		title = "Recent Assets"
	}
	if len(assets) == 0 {
		if layout == Recent {
			return emptyState(title, "No assets found. Add your first asset!")
		}
		return emptyState(title, `No assets found. Run "nw add-asset" to get started!`)
	}

	table := md.TableSet{Rows: [][]string{}}
	if layout == Recent {
		if len(assets) > RecentLimit {
			assets = assets[:RecentLimit]
		}
		table.Header = []string{"Name", "Type", "Quantity", "Current Value", "Total Value", "Profit/Loss"}
		table.Alignment = []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight}
		for _, a := range assets {
			table.Rows = append(table.Rows, []string{
				md.Bold(cell(a.Name)),
				networth.TypeLabel(a.Type),
				a.Quantity.String(),
				networth.FormatCurrency(a.CurrentValue, a.Currency),
				md.Bold(networth.FormatCurrency(a.TotalValue(), a.Currency)),
				md.Bold(networth.FormatCurrency(a.ProfitLoss(), a.Currency)),
			})
		}
	} else {
		table.Header = []string{"Name", "Type", "Buy Price", "Current Value", "Quantity", "Total Value", "Profit/Loss", "Purchase Date", "ID"}
		table.Alignment = []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft}
		for _, a := range assets {
			table.Rows = append(table.Rows, []string{
				md.Bold(cell(a.Name)),
				networth.TypeLabel(a.Type),
				networth.FormatCurrency(a.BuyPrice, a.Currency),
				networth.FormatCurrency(a.CurrentValue, a.Currency),
				a.Quantity.String(),
				md.Bold(networth.FormatCurrency(a.TotalValue(), a.Currency)),
				md.Bold(networth.FormatCurrency(a.ProfitLoss(), a.Currency)),
				networth.FormatDate(a.PurchaseDate.String()),
				md.Code(a.ID),
			})
		}
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.Table(table)
	return doc.String()
}

// DebtsMarkdown renders debts as a table. An empty list renders a hint instead.
func DebtsMarkdown(debts []networth.Debt, layout Layout) string {
	title := "Debts"
	if layout == Recent {
		title = "Recent Debts"
	}
	if len(debts) == 0 {
		return emptyState(title, "No debts found.")
	}

	table := md.TableSet{
		Header:    []string{"Name", "Type", "Principal", "Current Value", "Interest Rate"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Rows:      [][]string{},
	}
	if layout == Recent && len(debts) > RecentLimit {
		debts = debts[:RecentLimit]
	}
	if layout == Full {
		table.Header = append(table.Header, "Start Date", "ID")
		table.Alignment = append(table.Alignment, md.AlignLeft, md.AlignLeft)
	}
	for _, d := range debts {
		row := []string{
			md.Bold(cell(d.Name)),
			networth.TypeLabel(d.Type),
			networth.FormatCurrency(d.Principal, d.Currency),
			md.Bold(networth.FormatCurrency(d.CurrentValue, d.Currency)),
			networth.FormatPercent(d.InterestRate),
		}
		if layout == Full {
			row = append(row, networth.FormatDate(d.StartDate.String()), md.Code(d.ID))
		}
		table.Rows = append(table.Rows, row)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.Table(table)
	return doc.String()
}

// HistoryMarkdown renders the recorded values of an asset.
func HistoryMarkdown(asset networth.Asset, history []networth.AssetHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("History for %s", cell(asset.Name)))
	if len(history) == 0 {
		doc.PlainText(md.Italic("No recorded values."))
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
		Rows:      [][]string{},
	}
	for _, h := range history {
		table.Rows = append(table.Rows, []string{
			networth.FormatDate(h.Date.String()),
			networth.FormatCurrency(h.Value, asset.Currency),
		})
	}
	doc.Table(table)
	return doc.String()
}
