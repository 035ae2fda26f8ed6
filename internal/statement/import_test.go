package statement

import (
	"strings"
	"testing"

	"github.com/theirongolddev/finmate/internal/model"
)

func TestParseCSVBasic(t *testing.T) {
	in := strings.NewReader(
		"date,type,amount,category,description\n" +
			"2025-01-05,income,3000.00,Salary,January paycheck\n" +
			"2025-01-08,expense,89.99,Groceries,\n")

	res, err := parseCSV(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Skipped != 0 {
		t.Fatalf("skipped = %d, want 0", res.Skipped)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(res.Rows))
	}

	first := res.Rows[0]
	if first.Type != model.Income {
		t.Errorf("type = %s", first.Type)
	}
	if first.Amount.StringFixed(2) != "3000.00" {
		t.Errorf("amount = %s", first.Amount)
	}
	if first.Category != "Salary" {
		t.Errorf("category = %q", first.Category)
	}
	if first.Date.Year() != 2025 || first.Date.Month() != 1 || first.Date.Day() != 5 {
		t.Errorf("date = %v", first.Date)
	}
	if first.Description != "January paycheck" {
		t.Errorf("description = %q", first.Description)
	}
}

func TestParseCSVColumnOrderAndCase(t *testing.T) {
	in := strings.NewReader(
		"Amount,Date,Type\n" +
			"42.50,01/15/2025,debit\n")

	res, err := parseCSV(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(res.Rows))
	}
	row := res.Rows[0]
	if row.Type != model.Expense {
		t.Errorf("debit should map to expense, got %s", row.Type)
	}
	if row.Date.Month() != 1 || row.Date.Day() != 15 {
		t.Errorf("date = %v", row.Date)
	}
	if row.Category != "Imported" {
		t.Errorf("missing category should default to Imported, got %q", row.Category)
	}
}

func TestParseCSVSkipsBadRows(t *testing.T) {
	in := strings.NewReader(
		"date,type,amount\n" +
			"2025-02-01,expense,100\n" +
			"not-a-date,expense,50\n" +
			"2025-02-03,transfer,25\n" +
			"2025-02-04,income,abc\n" +
			"2025-02-05,income,200\n")

	res, err := parseCSV(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(res.Rows))
	}
	if res.Skipped != 3 {
		t.Errorf("skipped = %d, want 3", res.Skipped)
	}
	if res.LineError == "" {
		t.Error("expected first line error to be recorded")
	}
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	in := strings.NewReader("date,amount\n2025-01-01,10\n")

	if _, err := parseCSV(in); err == nil {
		t.Fatal("expected error for missing type column")
	}
}

func TestParseCSVDateFormats(t *testing.T) {
	cases := []struct {
		raw  string
		day  int
		mon  int
		year int
	}{
		{"2025-03-09", 9, 3, 2025},
		{"03/09/2025", 9, 3, 2025},
		{"09.03.2025", 9, 3, 2025},
	}
	for _, tc := range cases {
		in := strings.NewReader("date,type,amount\n" + tc.raw + ",income,1\n")
		res, err := parseCSV(in)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Rows) != 1 {
			t.Fatalf("%s: rows = %d", tc.raw, len(res.Rows))
		}
		d := res.Rows[0].Date
		if d.Day() != tc.day || int(d.Month()) != tc.mon || d.Year() != tc.year {
			t.Errorf("%s parsed as %v", tc.raw, d)
		}
	}
}
