package port

import (
	"context"

	"crowdmint/internal/core/domain"
)

// CampaignRepository defines the persistence layer for the funding engine.
// It is an outbound port in hexagonal architecture. Every mutating method
// must execute as one atomic transaction with single-writer semantics:
// implementations serialize mutations with transactions and row locks, and
// roll back entirely on any failure.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign, spawns its claim token with
	// the given total supply minted to the owner, registers the owner
	// index entry and appends the creation event. It returns the assigned
	// id, which equals the campaign's creation-order index starting at 0.
	CreateCampaign(ctx context.Context, c *domain.Campaign, totalSupply int64) (int64, error)

	// Invest applies a contribution under a campaign row lock: it debits
	// the investor's account by contrib.Amount, transfers claim tokens out
	// of the owner's pre-minted pool, updates the raised total and closes
	// the campaign when the target is reached. contrib.Tokens and
	// contrib.CreatedAt are filled in. The updated campaign is returned.
	Invest(ctx context.Context, contrib *domain.Contribution) (*domain.Campaign, error)

	// Withdraw pays out a funded campaign's escrow with the platform fee
	// split. The caller must equal the campaign owner. The escrow is
	// zeroed and the campaign marked withdrawn before the credits are
	// issued; a failed credit rolls the whole operation back.
	Withdraw(ctx context.Context, campaignID int64, caller, treasury string) (*WithdrawReceipt, error)

	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CampaignIDsByOwner returns the ids of campaigns created by owner in
	// creation order, read from the owner index.
	CampaignIDsByOwner(ctx context.Context, owner string) ([]int64, error)

	// TokenBalance returns the claim token balance of address for the
	// given campaign. Addresses with no balance row hold zero.
	TokenBalance(ctx context.Context, campaignID int64, address string) (int64, error)

	// Deposit credits a native currency account, creating it if needed,
	// and returns the new balance.
	Deposit(ctx context.Context, address string, amount int64) (int64, error)

	// GetAccount returns a native currency account by address, or nil
	// when it does not exist.
	GetAccount(ctx context.Context, address string) (*domain.Account, error)
}

// WithdrawReceipt reports the amounts moved by a successful withdrawal.
// Amount is the full escrow released; OwnerAmount and TreasuryAmount always
// sum to it exactly.
type WithdrawReceipt struct {
	CampaignID     int64
	Amount         int64
	OwnerAmount    int64
	TreasuryAmount int64
}
