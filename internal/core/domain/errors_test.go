package domain

import (
	"errors"
	"testing"
)

// TestTransferErrorClassification keeps the two credit-failure conditions
// distinguishable while both classify as transfer failures.
func TestTransferErrorClassification(t *testing.T) {
	if !errors.Is(ErrOwnerTransfer, ErrTransferFailure) {
		t.Fatalf("ErrOwnerTransfer must wrap ErrTransferFailure")
	}
	if !errors.Is(ErrTreasuryTransfer, ErrTransferFailure) {
		t.Fatalf("ErrTreasuryTransfer must wrap ErrTransferFailure")
	}
	if errors.Is(ErrOwnerTransfer, ErrTreasuryTransfer) || errors.Is(ErrTreasuryTransfer, ErrOwnerTransfer) {
		t.Fatalf("owner and treasury credit failures must stay distinct")
	}
}

// TestBalanceErrorClassification pins the debit failure modes to the
// insufficient-balance category so the HTTP layer reports them as 422.
func TestBalanceErrorClassification(t *testing.T) {
	if !errors.Is(ErrInsufficientFunds, ErrInsufficientBalance) {
		t.Fatalf("ErrInsufficientFunds must wrap ErrInsufficientBalance")
	}
	if !errors.Is(ErrPoolExhausted, ErrInsufficientBalance) {
		t.Fatalf("ErrPoolExhausted must wrap ErrInsufficientBalance")
	}
	if errors.Is(ErrInsufficientFunds, ErrPoolExhausted) {
		t.Fatalf("account and pool shortfalls must stay distinct")
	}
}
