package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"payment-ledger/internal/domain"
)

// CSVTransactionRepository implements the TransactionRepository interface for CSV files.
type CSVTransactionRepository struct{}

// NewCSVTransactionRepository creates a new repository instance.
func NewCSVTransactionRepository() *CSVTransactionRepository {
	return &CSVTransactionRepository{}
}

// GetTransactions reads and parses a transaction log CSV file. Rows carry
// `type, client, tx, amount`; dispute, resolve and chargeback rows may leave
// the amount column blank or omit it entirely.
func (r *CSVTransactionRepository) GetTransactions(ctx context.Context, path string) ([]domain.TransactionRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []domain.TransactionRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		record, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("malformed record in %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRecord(row []string) (domain.TransactionRecord, error) {
	if len(row) < 3 {
		return domain.TransactionRecord{}, fmt.Errorf("row has %d fields, want at least 3", len(row))
	}

	kind, err := domain.ParseTransactionKind(row[0])
	if err != nil {
		return domain.TransactionRecord{}, err
	}

	client, err := strconv.ParseUint(row[1], 10, 16)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("could not parse client '%s': %w", row[1], err)
	}

	tx, err := strconv.ParseUint(row[2], 10, 32)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("could not parse tx '%s': %w", row[2], err)
	}

	record := domain.TransactionRecord{
		Client: uint16(client),
		Tx:     uint32(tx),
		Kind:   kind,
	}

	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return domain.TransactionRecord{}, fmt.Errorf("could not parse amount '%s': %w", row[3], err)
		}
		record.Amount = &amount
	}
	return record, nil
}
