package usecase

import (
	"context"
	"fmt"

	"payment-ledger/internal/domain"
)

// ReplayUseCase orchestrates a full processing run: it pulls the transaction
// log from the repository and replays it, in arrival order, into a fresh
// ledger.
type ReplayUseCase struct {
	repo TransactionRepository
}

// NewReplayUseCase creates a new instance of the usecase.
func NewReplayUseCase(repo TransactionRepository) *ReplayUseCase {
	return &ReplayUseCase{repo: repo}
}

// Replay processes the transaction log at path and returns the final account
// snapshot. Rejected records (failed preconditions, dangling references) are
// skipped silently; only open and parse failures abort the run.
func (uc *ReplayUseCase) Replay(ctx context.Context, path string) (map[uint16]domain.Account, error) {
	records, err := uc.repo.GetTransactions(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	ledger := NewLedger()
	for _, record := range records {
		ledger.Apply(record)
	}
	return ledger.Accounts(), nil
}
