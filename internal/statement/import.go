// Package statement imports bank statement CSV files as transactions and
// exports the ledger as a JSON backup.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/money"
)

// ImportResult reports what a CSV import produced.
type ImportResult struct {
	Rows      []ledger.TxInput
	Skipped   int // rows that failed to parse
	LineError string
}

// dateFormats tried in order when parsing the date column.
var dateFormats = []string{"2006-01-02", "01/02/2006", "02.01.2006"}

// ImportCSV reads a statement file. The first row must be a header naming at
// least date, type, and amount; category and description are optional. Rows
// that fail to parse are counted and skipped, not fatal.
func ImportCSV(path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, err
	}
	defer func() { _ = f.Close() }()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int)
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"date", "type", "amount"} {
		if _, ok := idx[required]; !ok {
			return ImportResult{}, fmt.Errorf("header is missing the %q column", required)
		}
	}

	var result ImportResult
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			if result.LineError == "" {
				result.LineError = err.Error()
			}
			continue
		}

		in, err := parseRow(record, idx)
		if err != nil {
			result.Skipped++
			if result.LineError == "" {
				result.LineError = err.Error()
			}
			continue
		}
		result.Rows = append(result.Rows, in)
	}
	return result, nil
}

func parseRow(record []string, idx map[string]int) (ledger.TxInput, error) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var typ model.TransactionType
	switch strings.ToLower(field("type")) {
	case "income", "credit":
		typ = model.Income
	case "expense", "debit":
		typ = model.Expense
	default:
		return ledger.TxInput{}, fmt.Errorf("unknown type %q", field("type"))
	}

	amount, err := money.ParseAmount(field("amount"))
	if err != nil {
		return ledger.TxInput{}, err
	}

	var date time.Time
	raw := field("date")
	for _, layout := range dateFormats {
		if date, err = time.Parse(layout, raw); err == nil {
			break
		}
	}
	if err != nil {
		return ledger.TxInput{}, fmt.Errorf("unparseable date %q", raw)
	}

	category := field("category")
	if category == "" {
		category = "Imported"
	}

	return ledger.TxInput{
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: field("description"),
	}, nil
}
