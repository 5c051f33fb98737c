package statements

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// This file holds the difference column derivation: next to each period
// column, the report can show how the value moved against another period
// (the previous one, or the same period one year earlier) both as an
// amount and as a percentage.

// DifferenceColumns injects a difference and a percent column after every
// period column that has a comparison counterpart. The original column
// order is preserved.
func DifferenceColumns(columns []Column, periods []FiscalPeriod, mode DifferenceMode) []Column {
	if mode == DiffNone {
		return columns
	}

	byKey := make(map[string]FiscalPeriod, len(periods))
	for _, p := range periods {
		byKey[p.Key] = p
	}

	out := make([]Column, 0, len(columns)*3)
	previous := ""     // fieldname of the previous period column
	previousLabel := ""

	for _, col := range columns {
		out = append(out, col)
		if !col.IsPeriod() {
			continue
		}

		old, oldLabel := "", ""
		switch mode {
		case DiffPreviousPeriod:
			old, oldLabel = previous, previousLabel
		case DiffPriorYear:
			if key, ok := priorYearKey(periods, byKey[col.Fieldname]); ok {
				old, oldLabel = key, byKey[key].Label
			}
		}
		previous, previousLabel = col.Fieldname, col.Label
		if old == "" {
			continue
		}

		out = append(out,
			Column{
				Fieldname:  fmt.Sprintf("diff_with_%s_and_%s", old, col.Fieldname),
				Label:      fmt.Sprintf("Diff W/%s", oldLabel),
				Fieldtype:  FieldtypeCurrency,
				Options:    "currency",
				Width:      150,
				CompareOld: old,
				CompareNew: col.Fieldname,
			},
			Column{
				Fieldname:  fmt.Sprintf("percent_with_%s_and_%s", old, col.Fieldname),
				Label:      fmt.Sprintf("Percent Diff W/%s", oldLabel),
				Fieldtype:  FieldtypePercent,
				Width:      150,
				CompareOld: old,
				CompareNew: col.Fieldname,
			},
		)
	}
	return out
}

// ApplyDifferences fills the derived difference and percent values on every
// row, using the comparison pairs carried by the columns.
func ApplyDifferences(columns []Column, rows []Row) {
	for _, col := range columns {
		if col.CompareOld == "" {
			continue
		}
		for i := range rows {
			oldValue := rows[i].Values[col.CompareOld]
			newValue := rows[i].Values[col.CompareNew]
			switch col.Fieldtype {
			case FieldtypeCurrency:
				rows[i].Values[col.Fieldname] = newValue.Sub(oldValue)
			case FieldtypePercent:
				rows[i].Percents[col.Fieldname] = PercentDiff(oldValue, newValue)
			}
		}
	}
}

// PercentDiff computes the percentage difference between two values,
// rounded to two decimal places. A zero old value yields 0 when the new
// value is also zero, and 100 otherwise.
func PercentDiff(oldValue, newValue Money) Percent {
	if oldValue.IsZero() {
		if newValue.IsZero() {
			return 0
		}
		return 100
	}
	ratio := newValue.Sub(oldValue).Decimal().Div(oldValue.Decimal()).Mul(hundred).Round(2)
	return Percent(ratio.InexactFloat64())
}
