package domain

import "time"

// Campaign represents a fundraising campaign and its escrow accounting.
// Monetary fields are stored in integer smallest currency units; token
// fields count whole claim tokens. Campaigns are append-only: once created
// they are never deleted, and their id equals their creation-order index.
type Campaign struct {
	ID                int64
	Owner             string
	Name              string
	Symbol            string
	Description       string
	Team              string
	Image             string
	Target            int64
	RaisedAmount      int64
	Equity            int64
	CirculationSupply int64
	TokensSold        int64
	TokenPrice        int64
	Deadline          time.Time
	IsFunded          bool
	IsClosed          bool
	Withdrawn         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCampaignParams carries the caller-supplied fields for campaign
// creation. TotalSupply is the full claim-token supply minted to the owner
// at construction; only TotalSupply/Equity of it is offered for sale.
type NewCampaignParams struct {
	Owner       string
	Name        string
	Symbol      string
	Description string
	Team        string
	Image       string
	Target      int64
	TotalSupply int64
	Equity      int64
	TokenPrice  int64
	Deadline    time.Time
}

// NewCampaign validates creation parameters and builds an unsaved Campaign.
// Equity is rejected before it is ever used as a divisor. The returned
// campaign has no ID yet; the repository assigns the creation-order index
// when it persists the record.
func NewCampaign(p NewCampaignParams, now time.Time) (*Campaign, error) {
	if p.Owner == "" {
		return nil, ErrEmptyOwner
	}
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	if p.Symbol == "" {
		return nil, ErrEmptySymbol
	}
	if p.Target <= 0 {
		return nil, ErrNonPositiveTarget
	}
	if p.TokenPrice <= 0 {
		return nil, ErrNonPositiveTokenPrice
	}
	if p.Equity <= 0 {
		return nil, ErrNonPositiveEquity
	}
	if p.TotalSupply <= 0 {
		return nil, ErrNonPositiveSupply
	}
	if !p.Deadline.After(now) {
		return nil, ErrDeadlineNotFuture
	}
	return &Campaign{
		Owner:             p.Owner,
		Name:              p.Name,
		Symbol:            p.Symbol,
		Description:       p.Description,
		Team:              p.Team,
		Image:             p.Image,
		Target:            p.Target,
		Equity:            p.Equity,
		CirculationSupply: p.TotalSupply / p.Equity,
		TokenPrice:        p.TokenPrice,
		Deadline:          p.Deadline,
	}, nil
}

// RemainingPool returns the number of claim tokens still available for sale.
func (c *Campaign) RemainingPool() int64 {
	return c.CirculationSupply - c.TokensSold
}

// ApplyInvestment runs the funding state transition for a single
// contribution and returns the number of claim tokens owed to the investor.
// Token count is amount/TokenPrice with integer truncation; a contribution
// below the token price buys zero tokens but is still recorded as raised.
// Crossing the target closes the campaign permanently. No value moves here:
// closure only marks the escrow claimable, and withdrawal is the sole
// payout path.
func (c *Campaign) ApplyInvestment(amount int64, now time.Time) (int64, error) {
	if c.IsClosed {
		return 0, ErrCampaignClosed
	}
	if !now.Before(c.Deadline) {
		return 0, ErrDeadlinePassed
	}
	if amount <= MinContribution {
		return 0, ErrBelowMinimum
	}
	if amount > MaxRaisedAmount-c.RaisedAmount {
		return 0, ErrAmountTooLarge
	}
	tokens := amount / c.TokenPrice
	if tokens > c.RemainingPool() {
		return 0, ErrSupplyExceeded
	}
	c.RaisedAmount += amount
	c.TokensSold += tokens
	if c.RaisedAmount >= c.Target {
		c.IsClosed = true
		c.IsFunded = true
	}
	return tokens, nil
}

// BeginWithdrawal runs the withdrawal state transition: it checks the
// single-withdrawal and target preconditions, computes the fee split and
// zeroes the escrow. The caller must persist the mutated campaign before
// issuing the outbound credits so a concurrent call cannot observe the
// unspent balance.
func (c *Campaign) BeginWithdrawal() (ownerAmount, treasuryAmount int64, err error) {
	if c.Withdrawn {
		return 0, 0, ErrAlreadyWithdrawn
	}
	if c.RaisedAmount < c.Target {
		return 0, 0, ErrTargetNotReached
	}
	ownerAmount, treasuryAmount = SplitFee(c.RaisedAmount)
	c.RaisedAmount = 0
	c.Withdrawn = true
	return ownerAmount, treasuryAmount, nil
}
