package statements

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one JSON object per line, identified by its
// "kind" property. Two kinds exist: "account" lines declare the chart of
// accounts, "gl" lines are general ledger postings.

type lineKind string

const (
	kindAccount lineKind = "account"
	kindGL      lineKind = "gl"
)

// accountLine is a specialized struct for decoding account declarations.
type accountLine struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	RootType string `json:"root_type"`
	Parent   string `json:"parent"`
	IsGroup  bool   `json:"is_group"`
}

// glLine is a specialized struct for decoding postings. Amounts are plain
// decimals; the currency is the company currency and lives in the company
// settings, not on every line.
type glLine struct {
	Posting   Date            `json:"posting"`
	Account   string          `json:"account"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Voucher   string          `json:"voucher"`
	VoucherNo string          `json:"voucher_no"`
	IsOpening bool            `json:"is_opening"`
	Remarks   string          `json:"remarks"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data. Amounts are
// denominated in the given currency.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []GLEntry
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind lineKind `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Kind {
		case kindAccount:
			var line accountLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid account line %q: %w", string(lineBytes), err)
			}
			root, err := ParseRootType(line.RootType)
			if err != nil {
				return nil, fmt.Errorf("account %q: %w", line.Name, err)
			}
			account := Account{
				Name:     line.Name,
				Number:   line.Number,
				RootType: root,
				Parent:   line.Parent,
				IsGroup:  line.IsGroup,
			}
			if err := ledger.DeclareAccount(account); err != nil {
				return nil, err
			}
		case kindGL:
			var line glLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid gl line %q: %w", string(lineBytes), err)
			}
			entries = append(entries, GLEntry{
				Posting:   line.Posting,
				Account:   line.Account,
				Debit:     M(line.Debit, currency),
				Credit:    M(line.Credit, currency),
				Voucher:   line.Voucher,
				VoucherNo: line.VoucherNo,
				IsOpening: line.IsOpening,
				Remarks:   line.Remarks,
			})
		default:
			return nil, fmt.Errorf("unknown line kind %q in %q", identifier.Kind, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	// Append after the whole chart of accounts is known, so that forward
	// references in the file do not matter.
	if err := ledger.Append(entries...); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeLedger writes the ledger in canonical JSONL form: the chart of
// accounts first (sorted), then the entries in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for a := range l.Accounts() {
		if err := EncodeAccount(w, a); err != nil {
			return err
		}
	}
	for _, e := range l.Entries() {
		if err := EncodeGLEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAccount writes a single account declaration line.
func EncodeAccount(w io.Writer, a Account) error {
	var obj jsonObjectWriter
	obj.Append("kind", kindAccount)
	obj.Append("name", a.Name)
	obj.Optional("number", a.Number)
	obj.Append("root_type", string(a.RootType))
	obj.Optional("parent", a.Parent)
	obj.Optional("is_group", a.IsGroup)
	return writeLine(w, &obj)
}

// EncodeGLEntry writes a single posting line.
func EncodeGLEntry(w io.Writer, e GLEntry) error {
	var obj jsonObjectWriter
	obj.Append("kind", kindGL)
	obj.Append("posting", e.Posting)
	obj.Append("account", e.Account)
	if !e.Debit.IsZero() {
		obj.Append("debit", e.Debit.Decimal())
	}
	if !e.Credit.IsZero() {
		obj.Append("credit", e.Credit.Decimal())
	}
	obj.Optional("voucher", e.Voucher)
	obj.Optional("voucher_no", e.VoucherNo)
	obj.Optional("is_opening", e.IsOpening)
	obj.Optional("remarks", e.Remarks)
	return writeLine(w, &obj)
}

func writeLine(w io.Writer, obj *jsonObjectWriter) error {
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
