package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crowdmint/internal/core/domain"
	"crowdmint/internal/core/port"
)

// FundingService provides the business logic of the crowdfunding engine.
// It validates inputs and authorization, delegates the state machine to the
// domain and the transactional plumbing to the repository, and implements
// the port.FundingUseCase interface.
type FundingService struct {
	repo port.CampaignRepository

	// adminKey gates the administrative entry point of Withdraw. An empty
	// key denies all withdrawals.
	adminKey string
}

// NewFundingService creates a new service with the provided repository and
// administrative key.
func NewFundingService(repo port.CampaignRepository, adminKey string) *FundingService {
	return &FundingService{repo: repo, adminKey: adminKey}
}

// CreateCampaign validates the parameters and persists a new campaign with
// its claim token ledger. Creation is atomic: a precondition failure leaves
// no state behind.
func (s *FundingService) CreateCampaign(ctx context.Context, p domain.NewCampaignParams) (int64, error) {
	c, err := domain.NewCampaign(p, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return s.repo.CreateCampaign(ctx, c, p.TotalSupply)
}

// Invest records a contribution. The minimum-amount rule is checked here so
// a sub-minimum contribution fails regardless of campaign state; all
// state-dependent rules run under the repository's row lock.
func (s *FundingService) Invest(ctx context.Context, campaignID int64, investor string, amount int64) (*port.InvestResult, error) {
	if investor == "" {
		return nil, domain.ErrEmptyAddress
	}
	if amount <= domain.MinContribution {
		return nil, domain.ErrBelowMinimum
	}
	contrib := &domain.Contribution{
		Token:      uuid.NewString(),
		CampaignID: campaignID,
		Investor:   investor,
		Amount:     amount,
	}
	c, err := s.repo.Invest(ctx, contrib)
	if err != nil {
		return nil, err
	}
	return &port.InvestResult{
		CampaignID:   c.ID,
		Investor:     investor,
		Amount:       amount,
		Tokens:       contrib.Tokens,
		RaisedAmount: c.RaisedAmount,
		Closed:       c.IsClosed,
	}, nil
}

// Withdraw releases a funded campaign's escrow with the platform fee split.
// Two independent capability checks gate it: the administrative key, and
// the owner equality verified by the repository under the row lock.
func (s *FundingService) Withdraw(ctx context.Context, campaignID int64, caller, adminKey, treasury string) (*port.WithdrawReceipt, error) {
	if s.adminKey == "" || adminKey != s.adminKey {
		return nil, domain.ErrNotAdmin
	}
	if caller == "" || treasury == "" {
		return nil, domain.ErrEmptyAddress
	}
	return s.repo.Withdraw(ctx, campaignID, caller, treasury)
}

// GetCampaign returns a campaign by id.
func (s *FundingService) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// CampaignsByOwner returns campaign ids created by owner in creation order.
func (s *FundingService) CampaignsByOwner(ctx context.Context, owner string) ([]int64, error) {
	if owner == "" {
		return nil, domain.ErrEmptyAddress
	}
	return s.repo.CampaignIDsByOwner(ctx, owner)
}

// TokenBalance returns the claim token balance of address for a campaign.
func (s *FundingService) TokenBalance(ctx context.Context, campaignID int64, address string) (int64, error) {
	if address == "" {
		return 0, domain.ErrEmptyAddress
	}
	return s.repo.TokenBalance(ctx, campaignID, address)
}

// Deposit credits a native currency account.
func (s *FundingService) Deposit(ctx context.Context, address string, amount int64) (int64, error) {
	if address == "" {
		return 0, domain.ErrEmptyAddress
	}
	if amount <= 0 {
		return 0, domain.ErrNonPositiveAmount
	}
	return s.repo.Deposit(ctx, address, amount)
}

// GetAccount returns a native currency account by address.
func (s *FundingService) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	if address == "" {
		return nil, domain.ErrEmptyAddress
	}
	a, err := s.repo.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
