package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every operational error wraps exactly one of these so
// the HTTP layer can map conditions to status codes with errors.Is. All
// failures abort the whole operation; nothing is retried internally.
var (
	ErrValidation          = errors.New("validation error")
	ErrState               = errors.New("state error")
	ErrAuthorization       = errors.New("authorization error")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransferFailure     = errors.New("transfer failure")
	ErrNotFound            = errors.New("not found")
)

// Validation conditions.
var (
	ErrEmptyOwner            = fmt.Errorf("%w: owner must not be empty", ErrValidation)
	ErrEmptyAddress          = fmt.Errorf("%w: address must not be empty", ErrValidation)
	ErrEmptyName             = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrEmptySymbol           = fmt.Errorf("%w: symbol must not be empty", ErrValidation)
	ErrNonPositiveTarget     = fmt.Errorf("%w: target must be positive", ErrValidation)
	ErrNonPositiveTokenPrice = fmt.Errorf("%w: token price must be positive", ErrValidation)
	ErrNonPositiveEquity     = fmt.Errorf("%w: equity must be positive", ErrValidation)
	ErrNonPositiveSupply     = fmt.Errorf("%w: total supply must be positive", ErrValidation)
	ErrNonPositiveAmount     = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrDeadlineNotFuture     = fmt.Errorf("%w: deadline must be in the future", ErrValidation)
	ErrBelowMinimum          = fmt.Errorf("%w: contribution below minimum", ErrValidation)
	ErrAmountTooLarge        = fmt.Errorf("%w: amount exceeds ledger capacity", ErrValidation)
	ErrSupplyExceeded        = fmt.Errorf("%w: contribution exceeds remaining token pool", ErrValidation)
)

// State conditions.
var (
	ErrCampaignClosed   = fmt.Errorf("%w: campaign is closed", ErrState)
	ErrDeadlinePassed   = fmt.Errorf("%w: campaign deadline has passed", ErrState)
	ErrAlreadyWithdrawn = fmt.Errorf("%w: campaign already withdrawn", ErrState)
	ErrTargetNotReached = fmt.Errorf("%w: funding target not reached", ErrState)
)

// Authorization conditions.
var (
	ErrNotAdmin = fmt.Errorf("%w: caller lacks administrative privilege", ErrAuthorization)
	ErrNotOwner = fmt.Errorf("%w: caller is not the campaign owner", ErrAuthorization)
)

// Balance and transfer conditions.
var (
	ErrInsufficientFunds = fmt.Errorf("%w: account funds", ErrInsufficientBalance)
	ErrPoolExhausted     = fmt.Errorf("%w: claim token pool", ErrInsufficientBalance)
	ErrOwnerTransfer     = fmt.Errorf("%w: owner credit rejected", ErrTransferFailure)
	ErrTreasuryTransfer  = fmt.Errorf("%w: treasury credit rejected", ErrTransferFailure)
)
