package gateway

import (
	"fmt"
	"io"
	"sort"

	"payment-ledger/internal/domain"
)

// WriteAccounts renders the final account snapshot as a delimited table with
// monetary fields fixed to 4 decimal digits. The output contract leaves row
// order unspecified; rows are sorted by client id for deterministic output.
func WriteAccounts(w io.Writer, accounts map[uint16]domain.Account) error {
	if _, err := fmt.Fprintln(w, "client, available, held, total, locked"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	clients := make([]uint16, 0, len(accounts))
	for client := range accounts {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })

	for _, client := range clients {
		account := accounts[client]
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s,%t\n",
			account.Client,
			account.Available.StringFixed(4),
			account.Held.StringFixed(4),
			account.Total.StringFixed(4),
			account.Locked,
		)
		if err != nil {
			return fmt.Errorf("failed to write account %d: %w", client, err)
		}
	}
	return nil
}
