package statements

// Chart is the dataset block for the chart widget accompanying a
// statement.
type Chart struct {
	Labels    []string
	Datasets  []ChartDataset
	Type      string // "bar" for per-period movements, "line" for accumulated
	Fieldtype Fieldtype
	Options   string
	Currency  string
}

// ChartDataset is a single named series.
type ChartDataset struct {
	Name   string
	Values []float64
}

// ChartSeries names a row whose period values become a chart dataset.
type ChartSeries struct {
	Name string
	Row  Row
}

// ChartData assembles the chart from the period columns and the given
// series. Series with no values at all are dropped, like empty sections in
// the table.
func ChartData(columns []Column, currency string, accumulated bool, series ...ChartSeries) *Chart {
	chart := &Chart{
		Type:      "bar",
		Fieldtype: FieldtypeCurrency,
		Options:   "currency",
		Currency:  currency,
	}
	if accumulated {
		chart.Type = "line"
	}

	var periodColumns []Column
	for _, col := range columns {
		if col.IsPeriod() {
			periodColumns = append(periodColumns, col)
			chart.Labels = append(chart.Labels, col.Label)
		}
	}

	for _, s := range series {
		values := make([]float64, 0, len(periodColumns))
		empty := true
		for _, col := range periodColumns {
			v := s.Row.Values[col.Fieldname].AsFloat()
			if v != 0 {
				empty = false
			}
			values = append(values, v)
		}
		if empty {
			continue
		}
		chart.Datasets = append(chart.Datasets, ChartDataset{Name: s.Name, Values: values})
	}
	return chart
}
