package statements

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// FiscalYear is a named accounting year. The label is free form ("2025" or
// "2025-2026") and the boundaries are inclusive.
type FiscalYear struct {
	Label string `yaml:"name"`
	Start Date   `yaml:"start"`
	End   Date   `yaml:"end"`
}

// Contains reports whether the date falls inside the fiscal year.
func (fy FiscalYear) Contains(d Date) bool {
	return !d.Before(fy.Start) && !d.After(fy.End)
}

// Company holds the reporting settings for a single company. It is kept in
// a small YAML file next to the ledger.
type Company struct {
	Name        string       `yaml:"company"`
	Abbr        string       `yaml:"abbr,omitempty"`
	Currency    string       `yaml:"currency"`
	FiscalYears []FiscalYear `yaml:"fiscal_years"`
}

// DecodeCompany reads the company settings from r.
func DecodeCompany(r io.Reader) (*Company, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading company settings: %w", err)
	}
	var c Company
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing company settings: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// EncodeCompany writes the company settings to w in YAML.
func EncodeCompany(w io.Writer, c *Company) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding company settings: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Validate checks the settings for consistency: a currency must be set and
// fiscal years must have coherent boundaries.
func (c *Company) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("company settings: missing company name")
	}
	if c.Currency == "" {
		return fmt.Errorf("company settings: missing currency")
	}
	for _, fy := range c.FiscalYears {
		if fy.Label == "" {
			return fmt.Errorf("company settings: fiscal year without a name")
		}
		if fy.End.Before(fy.Start) {
			return fmt.Errorf("company settings: fiscal year %q ends before it starts", fy.Label)
		}
	}
	return nil
}

// FiscalYear returns the fiscal year with the given label.
func (c *Company) FiscalYear(label string) (FiscalYear, error) {
	for _, fy := range c.FiscalYears {
		if fy.Label == label {
			return fy, nil
		}
	}
	return FiscalYear{}, fmt.Errorf("unknown fiscal year %q for company %q", label, c.Name)
}

// FiscalYearOf returns the fiscal year containing the given date.
func (c *Company) FiscalYearOf(d Date) (FiscalYear, error) {
	for _, fy := range c.FiscalYears {
		if fy.Contains(d) {
			return fy, nil
		}
	}
	return FiscalYear{}, fmt.Errorf("no fiscal year of company %q contains %s", c.Name, d)
}

// SortedFiscalYears returns the fiscal years in chronological order.
func (c *Company) SortedFiscalYears() []FiscalYear {
	years := make([]FiscalYear, len(c.FiscalYears))
	copy(years, c.FiscalYears)
	sort.Slice(years, func(i, j int) bool { return years[i].Start.Before(years[j].Start) })
	return years
}
