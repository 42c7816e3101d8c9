package gateway

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"payment-ledger/internal/domain"
)

func TestWriteAccounts(t *testing.T) {
	tests := []struct {
		name     string
		accounts map[uint16]domain.Account
		expected string
	}{
		{
			name:     "empty snapshot renders the header only",
			accounts: map[uint16]domain.Account{},
			expected: "client, available, held, total, locked\n",
		},
		{
			name: "monetary fields carry four decimal digits",
			accounts: map[uint16]domain.Account{
				1: snapshotAccount(1, "1.5", "0", "1.5", false),
			},
			expected: "client, available, held, total, locked\n" +
				"1,1.5000,0.0000,1.5000,false\n",
		},
		{
			name: "rows sorted by client id with negative and locked accounts",
			accounts: map[uint16]domain.Account{
				5: snapshotAccount(5, "10", "0", "10", false),
				2: snapshotAccount(2, "-3", "0", "-3", true),
				1: snapshotAccount(1, "-1", "11.5", "10.5", false),
			},
			expected: "client, available, held, total, locked\n" +
				"1,-1.0000,11.5000,10.5000,false\n" +
				"2,-3.0000,0.0000,-3.0000,true\n" +
				"5,10.0000,0.0000,10.0000,false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder

			err := WriteAccounts(&buf, tt.accounts)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func snapshotAccount(client uint16, available, held, total string, locked bool) domain.Account {
	return domain.Account{
		Client:    client,
		Available: decimal.RequireFromString(available),
		Held:      decimal.RequireFromString(held),
		Total:     decimal.RequireFromString(total),
		Locked:    locked,
	}
}
