package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/id"
	"github.com/cleared-dev/budget/internal/model"
)

// ErrNothingToExport is returned by WriteFile for an empty transaction list.
var ErrNothingToExport = errors.New("no transactions to export")

// Header is the CSV header row.
var Header = []string{"ID", "Type", "Amount", "Category", "Description", "Date"}

const (
	numFields = 6
	colID     = 0
	colType   = 1
	colAmount = 2
	colCat    = 3
	colDesc   = 4
	colDate   = 5
)

// WriteFile writes txs to path, replacing any existing file. Nothing is
// written, and ErrNothingToExport returned, when txs is empty.
func WriteFile(path string, txs []model.Transaction) error {
	if len(txs) == 0 {
		return ErrNothingToExport
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := WriteTransactions(f, txs); err != nil {
		f.Close()
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// WriteTransactions writes the header and one row per transaction.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txs {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFile reads transactions from a CSV file in export format.
func ReadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txs, nil
}

// ReadTransactions reads rows written by WriteTransactions.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if !slices.Equal(records[0], Header) {
		return nil, fmt.Errorf("unexpected header %q, want %q", strings.Join(records[0], ","), strings.Join(Header, ","))
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = id.Format(t.ID)
	row[colType] = string(t.Type)
	row[colAmount] = t.Amount.String()
	row[colCat] = t.Category
	row[colDesc] = t.Description
	row[colDate] = t.Date.String()
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. Only the syntax
// of each field is checked.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	txID, err := id.Parse(record[colID])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if !model.AmountInRange(amount) {
		return model.Transaction{}, fmt.Errorf("amount %q out of range", record[colAmount])
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	return model.Transaction{
		ID:          txID,
		Type:        model.TransactionType(record[colType]),
		Amount:      amount,
		Category:    record[colCat],
		Description: record[colDesc],
		Date:        date,
	}, nil
}
