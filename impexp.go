package statements

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// this file contains functions to import ledger entries from foreign ERP
// JSON exports. Every ERP shapes its export differently, so the field
// locations are given as jsonpath expressions in a small mapping file.

// ImportMapping describes where to find the ledger fields in a foreign
// export. Entries points at the list of posting objects; the other paths
// are evaluated relative to each posting object.
type ImportMapping struct {
	Entries   string `yaml:"entries"`
	Account   string `yaml:"account"`
	Posting   string `yaml:"posting"`
	Debit     string `yaml:"debit"`
	Credit    string `yaml:"credit"`
	Voucher   string `yaml:"voucher,omitempty"`
	VoucherNo string `yaml:"voucher_no,omitempty"`
	Remarks   string `yaml:"remarks,omitempty"`
}

// DecodeImportMapping reads a mapping file in YAML.
func DecodeImportMapping(r io.Reader) (*ImportMapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import mapping: %w", err)
	}
	var m ImportMapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing import mapping: %w", err)
	}
	if m.Entries == "" || m.Account == "" || m.Posting == "" {
		return nil, fmt.Errorf("import mapping must set entries, account and posting paths")
	}
	return &m, nil
}

// ImportGLEntries extracts ledger entries from a foreign JSON export using
// the mapping. Amounts are denominated in the given currency. The entries
// are not appended anywhere; callers validate them against their ledger.
func ImportGLEntries(r io.Reader, m ImportMapping, currency string) ([]GLEntry, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse export file: %w", err)
	}

	jval, err := jsonpath.Get(m.Entries, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating entries path %q: %w", m.Entries, err)
	}
	items, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("entries path %q did not yield a list, got %T", m.Entries, jval)
	}

	entries := make([]GLEntry, 0, len(items))
	for i, item := range items {
		account, err := jstring(item, m.Account)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		postingStr, err := jstring(item, m.Posting)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		posting, err := ParseDate(postingStr)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		debit, err := jnumber(item, m.Debit)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		credit, err := jnumber(item, m.Credit)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		e := GLEntry{
			Posting: posting,
			Account: account,
			Debit:   M(debit, currency),
			Credit:  M(credit, currency),
		}
		// optional fields
		if m.Voucher != "" {
			e.Voucher, _ = jstring(item, m.Voucher)
		}
		if m.VoucherNo != "" {
			e.VoucherNo, _ = jstring(item, m.VoucherNo)
		}
		if m.Remarks != "" {
			e.Remarks, _ = jstring(item, m.Remarks)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// jstring evaluates a jsonpath expected to yield a string.
func jstring(doc any, path string) (string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jval = unwrap(jval)
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: expected a string, got %T", path, jval)
	}
	return s, nil
}

// jnumber evaluates a jsonpath expected to yield a number. An empty path
// or a missing value counts as zero, since exports often omit the unused
// side of a posting.
func jnumber(doc any, path string) (float64, error) {
	if path == "" {
		return 0, nil
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, nil // missing side of the posting
	}
	jval = unwrap(jval)
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("path %q: %q is not a number: %w", path, v, err)
		}
		return f, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("path %q: expected a number, got %T", path, jval)
	}
}

// because jsonpath is never clear about whether it returns a list of one
// answer, or a single answer: keep the first one if any.
func unwrap(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}
