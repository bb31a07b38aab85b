package port

import (
	"context"

	"crowdmint/internal/core/domain"
)

// FundingUseCase defines the business operations exposed by the
// crowdfunding engine. This interface is the primary port into the
// application domain. Mock implementations can be generated from it for
// testing.
type FundingUseCase interface {
	// CreateCampaign validates the parameters, spawns the campaign and its
	// claim token ledger and returns the new campaign id. Ids are issued
	// in creation order starting at 0. Creation is all-or-nothing.
	CreateCampaign(ctx context.Context, p domain.NewCampaignParams) (int64, error)

	// Invest records a contribution of amount against a campaign. The
	// investor's account is debited by exactly amount (attached payment
	// required) and amount/tokenPrice claim tokens are transferred from
	// the campaign's pre-minted pool. Reaching the target closes the
	// campaign; no funds are forwarded on closure.
	Invest(ctx context.Context, campaignID int64, investor string, amount int64) (*InvestResult, error)

	// Withdraw releases a funded campaign's escrow to the owner minus the
	// platform fee, which goes to the treasury address. It is double
	// gated: adminKey must match the configured administrative key and
	// caller must equal the campaign owner. Succeeds at most once per
	// campaign.
	Withdraw(ctx context.Context, campaignID int64, caller, adminKey, treasury string) (*WithdrawReceipt, error)

	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CampaignsByOwner returns the ids of campaigns created by owner in
	// creation order.
	CampaignsByOwner(ctx context.Context, owner string) ([]int64, error)

	// TokenBalance returns the claim token balance of address for a
	// campaign.
	TokenBalance(ctx context.Context, campaignID int64, address string) (int64, error)

	// Deposit credits a native currency account and returns the new
	// balance.
	Deposit(ctx context.Context, address string, amount int64) (int64, error)

	// GetAccount returns a native currency account by address.
	GetAccount(ctx context.Context, address string) (*domain.Account, error)
}

// InvestResult is a DTO describing the outcome of a contribution. Closed
// reports whether this contribution crossed the funding target.
type InvestResult struct {
	CampaignID   int64
	Investor     string
	Amount       int64
	Tokens       int64
	RaisedAmount int64
	Closed       bool
}
