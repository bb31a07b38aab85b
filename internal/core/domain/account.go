package domain

import "time"

// Account holds a native currency balance for an address. Balances are
// integer smallest units and never negative. Investor accounts are debited
// by invest; owner and treasury accounts are credited by withdraw.
type Account struct {
	Address   string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
