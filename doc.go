// Package statements computes customizable financial statements (Profit and
// Loss, Balance Sheet) from a general ledger. It is designed to be
// local-first and auditable: the ledger is a flat, human-readable JSONL
// file, and every report is a deterministic computation over it.
//
// The core functionalities include:
//   - Ledger Management: a chart of accounts and chronological general
//     ledger entries, with validation on append.
//   - Fiscal Periods: generation of monthly, quarterly, half-yearly or
//     yearly reporting periods over a fiscal year range.
//   - Statement Builders: per-period balance sections for the five root
//     types (Asset, Liability, Equity, Income, Expense), derived rows such
//     as net profit, provisional profit and the unclosed fiscal year
//     carry-over, chart datasets and summary cards.
//   - Difference Columns: period-over-period (or prior-year) difference
//     and percentage columns injected next to each period column.
//   - Data Ingestion: import of ledger entries from foreign ERP JSON
//     exports, or straight from an ERP database.
//
// This package serves as the foundational logic for the `fsr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package statements
