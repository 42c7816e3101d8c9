package domain

import "github.com/shopspring/decimal"

// Account holds the mutable ledger state for a single client. Total is
// maintained as a running value alongside Available and Held, never
// recomputed from them.
type Account struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount opens the account for a first-seen client. Only a deposit funds
// the new account; any other record kind opens it with zero funds.
func NewAccount(record TransactionRecord) *Account {
	account := &Account{
		Client:    record.Client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
	if record.Kind == KindDeposit {
		account.Available = record.AmountValue()
		account.Total = record.AmountValue()
	}
	return account
}

// Deposit credits the record amount to the account. Locked accounts and
// records addressed to another client are ignored.
func (a *Account) Deposit(record TransactionRecord) bool {
	if a.Locked || a.Client != record.Client {
		return false
	}
	a.Available = a.Available.Add(record.AmountValue())
	a.Total = a.Total.Add(record.AmountValue())
	return true
}

// Withdraw debits the record amount from the account. Insufficient available
// funds make the withdrawal a silent no-op, as do a locked account and a
// client mismatch.
func (a *Account) Withdraw(record TransactionRecord) bool {
	if a.Locked || a.Client != record.Client || a.Available.LessThan(record.AmountValue()) {
		return false
	}
	a.Available = a.Available.Sub(record.AmountValue())
	a.Total = a.Total.Sub(record.AmountValue())
	return true
}

// Dispute moves the referenced transaction amount from available to held.
// The record here is the referenced original, not the dispute row itself.
// A withdrawal may be disputed even on a locked account; a deposit may not.
func (a *Account) Dispute(record TransactionRecord) bool {
	if a.Client != record.Client {
		return false
	}
	if record.Kind != KindWithdrawal && (record.Kind != KindDeposit || a.Locked) {
		return false
	}
	a.Held = a.Held.Add(record.AmountValue())
	a.Available = a.Available.Sub(record.AmountValue())
	return true
}

// Resolve releases the hold of an open dispute back to available funds. The
// record must be the dispute entry currently stored under the disputed tx id.
func (a *Account) Resolve(record TransactionRecord) bool {
	if a.Locked || a.Client != record.Client || record.Kind != KindDispute {
		return false
	}
	a.Held = a.Held.Sub(record.AmountValue())
	a.Available = a.Available.Add(record.AmountValue())
	return true
}

// Chargeback withdraws the held amount of an open dispute and locks the
// account. Lock state is not a precondition: a chargeback can still land on
// an already locked account when a later dispute opens a new hold.
func (a *Account) Chargeback(record TransactionRecord) bool {
	if a.Client != record.Client || record.Kind != KindDispute {
		return false
	}
	a.Locked = true
	a.Total = a.Total.Sub(record.AmountValue())
	a.Held = a.Held.Sub(record.AmountValue())
	return true
}
