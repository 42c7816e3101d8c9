package usecase

import "payment-ledger/internal/domain"

// Ledger owns the per-client accounts and the history of applied
// transactions for a single processing run. Both maps start empty and are
// discarded with the Ledger once the final snapshot has been read out.
type Ledger struct {
	accounts map[uint16]*domain.Account
	history  map[uint32]domain.TransactionRecord
}

// NewLedger creates an empty ledger ready for a replay run.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[uint16]*domain.Account),
		history:  make(map[uint32]domain.TransactionRecord),
	}
}

// Apply replays a single record against the addressed account and reports
// whether it took effect. A record for a first-seen client opens the account,
// which counts as success. Dispute, resolve and chargeback records act
// through the history entry they reference; when that entry is absent the
// record is rejected. Applied records are stored into history under their tx
// id with the amount backfilled from the acting record, overwriting any prior
// entry — a successful dispute therefore replaces the deposit or withdrawal
// entry it targeted, which is exactly what resolve and chargeback test for.
func (l *Ledger) Apply(record domain.TransactionRecord) bool {
	account, ok := l.accounts[record.Client]
	if !ok {
		l.accounts[record.Client] = domain.NewAccount(record)
		l.history[record.Tx] = record
		return true
	}

	acting, ok := l.actingRecord(record)
	if !ok {
		return false
	}

	var applied bool
	switch record.Kind {
	case domain.KindDeposit:
		applied = account.Deposit(acting)
	case domain.KindWithdrawal:
		applied = account.Withdraw(acting)
	case domain.KindDispute:
		applied = account.Dispute(acting)
	case domain.KindResolve:
		applied = account.Resolve(acting)
	case domain.KindChargeback:
		applied = account.Chargeback(acting)
	}
	if !applied {
		return false
	}

	// Store an amount-complete copy, never an alias of the acting record.
	if acting.Amount != nil {
		amount := *acting.Amount
		record.Amount = &amount
	}
	l.history[record.Tx] = record
	return true
}

// actingRecord resolves the record an account operation should run with: the
// incoming record itself for deposits and withdrawals, the referenced history
// entry for the dispute family.
func (l *Ledger) actingRecord(record domain.TransactionRecord) (domain.TransactionRecord, bool) {
	switch record.Kind {
	case domain.KindDispute, domain.KindResolve, domain.KindChargeback:
		acting, ok := l.history[record.Tx]
		return acting, ok
	default:
		return record, true
	}
}

// Accounts returns the final state of every account touched during the run,
// keyed by client id.
func (l *Ledger) Accounts() map[uint16]domain.Account {
	accounts := make(map[uint16]domain.Account, len(l.accounts))
	for client, account := range l.accounts {
		accounts[client] = *account
	}
	return accounts
}
