// Package renderer renders computed statements to markdown, suitable for
// the terminal (through glamour) or for publishing as-is.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/finbook/statements"
)

// StatementMarkdown renders the full statement: headline cards, the report
// table, the advisory message and the chart series.
func StatementMarkdown(s *statements.Statement) string {
	var b strings.Builder

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s - %s", s.Title, s.Company))
	if s.Message != "" {
		doc.PlainText(fmt.Sprintf("**Warning**: %s.", s.Message))
	}
	b.WriteString(doc.String())

	ConditionalBlock(&b, func(w io.Writer) bool { return renderSummary(w, s) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderTable(w, s) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderChart(w, s) })

	return b.String()
}

// renderSummary writes the headline cards as a two-column table.
func renderSummary(w io.Writer, s *statements.Statement) bool {
	if len(s.Summary) == 0 {
		return false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Summary")

	table := md.TableSet{Header: []string{"Metric", "Value"}}
	for _, card := range s.Summary {
		table.Rows = append(table.Rows, []string{card.Label, statements.M(card.Value, card.Currency).String()})
	}
	doc.Table(table)

	io.WriteString(w, doc.String())
	return true
}

// renderTable writes the report table. Hidden columns are skipped and
// account rows are indented to show their depth in the chart of accounts.
func renderTable(w io.Writer, s *statements.Statement) bool {
	if len(s.Rows) == 0 {
		return false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Statement")

	var columns []statements.Column
	var header []string
	for _, col := range s.Columns {
		if col.Hidden {
			continue
		}
		columns = append(columns, col)
		header = append(header, col.Label)
	}

	table := md.TableSet{Header: header}
	for _, row := range s.Rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, cell(row, col))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	io.WriteString(w, doc.String())
	return true
}

// cell formats a single table cell according to the column fieldtype.
func cell(row statements.Row, col statements.Column) string {
	switch {
	case col.Fieldname == "account":
		name := strings.Repeat("··", row.Indent) + row.AccountName
		if row.IsTotal {
			return "**" + name + "**"
		}
		return name
	case col.Fieldname == "total":
		return row.Total.String()
	case col.Fieldtype == statements.FieldtypePercent:
		return row.Percents[col.Fieldname].SignedString()
	case col.Fieldtype == statements.FieldtypeCurrency:
		return row.Values[col.Fieldname].String()
	default:
		return ""
	}
}

// renderChart writes the chart series as a table, one row per dataset.
func renderChart(w io.Writer, s *statements.Statement) bool {
	if s.Chart == nil || len(s.Chart.Datasets) == 0 {
		return false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Chart (%s)", s.Chart.Type))

	header := append([]string{"Series"}, s.Chart.Labels...)
	table := md.TableSet{Header: header}
	for _, ds := range s.Chart.Datasets {
		cells := make([]string, 0, len(ds.Values)+1)
		cells = append(cells, ds.Name)
		for _, v := range ds.Values {
			cells = append(cells, fmt.Sprintf("%.2f", v))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	io.WriteString(w, doc.String())
	return true
}

// PeriodsMarkdown renders a period list, used by the `periods` command.
func PeriodsMarkdown(periods []statements.FiscalPeriod) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Fiscal Periods")

	table := md.TableSet{Header: []string{"Key", "Label", "From", "To"}}
	for _, p := range periods {
		table.Rows = append(table.Rows, []string{p.Key, p.Label, p.From.String(), p.To.String()})
	}
	doc.Table(table)
	return doc.String()
}

// AccountsMarkdown renders the chart of accounts, used by the `accounts`
// command.
func AccountsMarkdown(l *statements.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Chart of Accounts")

	table := md.TableSet{Header: []string{"Number", "Account", "Root Type", "Group"}}
	for a := range l.Accounts() {
		group := ""
		if a.IsGroup {
			group = "yes"
		}
		name := strings.Repeat("··", l.Depth(a.Name)) + a.Name
		table.Rows = append(table.Rows, []string{a.Number, name, string(a.RootType), group})
	}
	doc.Table(table)
	return doc.String()
}
