package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionKind defines the nature of an incoming transaction record.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// ParseTransactionKind validates a raw kind value from the transaction log.
func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch kind := TransactionKind(raw); kind {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", raw)
	}
}

// TransactionRecord represents a single parsed row of the transaction log.
// Amount is nil for dispute, resolve and chargeback rows as presented: those
// reference a prior transaction by tx id and only receive an amount when the
// replay engine backfills it from the referenced entry.
type TransactionRecord struct {
	Client uint16
	Tx     uint32
	Amount *decimal.Decimal
	Kind   TransactionKind
}

// AmountValue returns the record amount, or zero when none is present.
func (r TransactionRecord) AmountValue() decimal.Decimal {
	if r.Amount == nil {
		return decimal.Zero
	}
	return *r.Amount
}
