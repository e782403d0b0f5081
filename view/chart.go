package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// ChartKind is the shape of a chart.
type ChartKind int

const (
	// Doughnut shows the share of each value in the total.
	Doughnut ChartKind = iota
	// Bar compares values side by side.
	Bar
)

// Dataset is a labelled series of values.
type Dataset struct {
	Labels []string
	Values []networth.Amount
}

// Chart is a live chart. A chart must be destroyed before another one takes
// its place.
type Chart interface {
	Markdown() string
	Destroy()
}

// ChartFactory creates charts.
type ChartFactory interface {
	NewChart(kind ChartKind, title string, data Dataset) Chart
}

// Distribution aggregates the total value of assets by type, in order of
// first appearance.
func Distribution(assets []networth.Asset) Dataset {
	var ds Dataset
	index := make(map[networth.AssetType]int)
	for _, a := range assets {
		i, ok := index[a.Type]
		if !ok {
			i = len(ds.Labels)
			index[a.Type] = i
			ds.Labels = append(ds.Labels, networth.TypeLabel(a.Type))
			ds.Values = append(ds.Values, networth.A(0))
		}
		ds.Values[i] = ds.Values[i].Add(a.TotalValue())
	}
	return ds
}

// Comparison returns the invested amount, the current value and the
// profit or loss of assets.
func Comparison(assets []networth.Asset) Dataset {
	var invested, current networth.Amount
	for _, a := range assets {
		invested = invested.Add(a.Invested())
		current = current.Add(a.TotalValue())
	}
	return Dataset{
		Labels: []string{"Invested", "Current Value", "Profit/Loss"},
		Values: []networth.Amount{invested, current, current.Sub(invested)},
	}
}

// TextCharts draws charts as markdown tables with text bars.
type TextCharts struct {
	// Width is the length of the longest bar. Zero means 20.
	Width int
}

func (f TextCharts) NewChart(kind ChartKind, title string, data Dataset) Chart {
	width := f.Width
	if width <= 0 {
		width = 20
	}
	return &textChart{kind: kind, title: title, data: data, width: width}
}

type textChart struct {
	kind      ChartKind
	title     string
	data      Dataset
	width     int
	destroyed bool
}

func (c *textChart) Destroy() { c.destroyed = true }

func (c *textChart) Markdown() string {
	if c.destroyed {
		return ""
	}
	var total, peak decimal.Decimal
	for _, v := range c.data.Values {
		d := v.Decimal().Abs()
		total = total.Add(d)
		if d.GreaterThan(peak) {
			peak = d
		}
	}

	table := md.TableSet{
		Header:    []string{"", "Amount", ""},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Rows:      [][]string{},
	}
	if c.kind == Doughnut {
		table.Header = append(table.Header, "Share")
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for i, label := range c.data.Labels {
		v := c.data.Values[i]
		row := []string{label, networth.FormatCurrency(v, networth.DefaultCurrency), bar(v.Decimal().Abs(), peak, c.width)}
		if c.kind == Doughnut {
			share := decimal.Zero
			if !total.IsZero() {
				share = v.Decimal().Div(total).Shift(2)
			}
			row = append(row, share.StringFixed(1)+"%")
		}
		table.Rows = append(table.Rows, row)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H3(c.title)
	doc.Table(table)
	return doc.String()
}

// bar draws v as a bar of at most width blocks, peak being the full width.
func bar(v, peak decimal.Decimal, width int) string {
	if peak.IsZero() {
		return ""
	}
	n := int(v.Div(peak).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	return fmt.Sprintf("`%s`", strings.Repeat("█", n)+strings.Repeat("░", width-n))
}
