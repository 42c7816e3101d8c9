package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"payment-ledger/internal/gateway"
	"payment-ledger/internal/usecase"
)

func main() {
	// The process contract is a single positional argument naming the
	// transaction log; there are no flags or environment variables.
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <transactions.csv>", filepath.Base(os.Args[0]))
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	csvRepo := gateway.NewCSVTransactionRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	replayUseCase := usecase.NewReplayUseCase(csvRepo)

	// --- Execute the Usecase ---
	accounts, err := replayUseCase.Replay(context.Background(), os.Args[1])
	if err != nil {
		log.Fatalf("error processing records: %v", err)
	}

	// --- Present the Output ---
	if err := gateway.WriteAccounts(os.Stdout, accounts); err != nil {
		log.Fatalf("failed to render accounts: %v", err)
	}
}
