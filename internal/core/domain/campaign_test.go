package domain

import (
	"errors"
	"testing"
	"time"
)

func validParams(now time.Time) NewCampaignParams {
	return NewCampaignParams{
		Owner:       "founder",
		Name:        "Solar Microgrid",
		Symbol:      "SOLAR",
		Target:      1000,
		TotalSupply: 1000,
		Equity:      10,
		TokenPrice:  10,
		Deadline:    now.Add(24 * time.Hour),
	}
}

func TestNewCampaignValidation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		mutate func(*NewCampaignParams)
		want   error
	}{
		{"empty owner", func(p *NewCampaignParams) { p.Owner = "" }, ErrEmptyOwner},
		{"empty name", func(p *NewCampaignParams) { p.Name = "" }, ErrEmptyName},
		{"empty symbol", func(p *NewCampaignParams) { p.Symbol = "" }, ErrEmptySymbol},
		{"zero target", func(p *NewCampaignParams) { p.Target = 0 }, ErrNonPositiveTarget},
		{"zero token price", func(p *NewCampaignParams) { p.TokenPrice = 0 }, ErrNonPositiveTokenPrice},
		{"zero equity", func(p *NewCampaignParams) { p.Equity = 0 }, ErrNonPositiveEquity},
		{"zero supply", func(p *NewCampaignParams) { p.TotalSupply = 0 }, ErrNonPositiveSupply},
		{"past deadline", func(p *NewCampaignParams) { p.Deadline = now.Add(-time.Hour) }, ErrDeadlineNotFuture},
		{"deadline equals now", func(p *NewCampaignParams) { p.Deadline = now }, ErrDeadlineNotFuture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams(now)
			tc.mutate(&p)
			_, err := NewCampaign(p, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("%v should be a validation error", err)
			}
		})
	}
}

func TestNewCampaignCirculationSupply(t *testing.T) {
	now := time.Now()
	cases := []struct {
		totalSupply int64
		equity      int64
		want        int64
	}{
		{1000, 10, 100},
		{1000, 3, 333},
		{5, 10, 0}, // equity larger than supply truncates to zero
		{1, 1, 1},
	}
	for _, tc := range cases {
		p := validParams(now)
		p.TotalSupply = tc.totalSupply
		p.Equity = tc.equity
		c, err := NewCampaign(p, now)
		if err != nil {
			t.Fatalf("NewCampaign(%d/%d): %v", tc.totalSupply, tc.equity, err)
		}
		if c.CirculationSupply != tc.want {
			t.Fatalf("circulation supply %d/%d: got %d, want %d",
				tc.totalSupply, tc.equity, c.CirculationSupply, tc.want)
		}
		if c.RaisedAmount != 0 || c.IsClosed || c.Withdrawn || c.IsFunded {
			t.Fatalf("new campaign must start open with zero raised")
		}
	}
}

func TestApplyInvestmentMinimum(t *testing.T) {
	now := time.Now()
	c, _ := NewCampaign(validParams(now), now)
	for _, amount := range []int64{0, 1, 3, 5} {
		if _, err := c.ApplyInvestment(amount, now); !errors.Is(err, ErrBelowMinimum) {
			t.Fatalf("amount %d: got %v, want ErrBelowMinimum", amount, err)
		}
	}
	if c.RaisedAmount != 0 {
		t.Fatalf("rejected contributions must not change raised amount")
	}
}

func TestApplyInvestmentDeadline(t *testing.T) {
	now := time.Now()
	c, _ := NewCampaign(validParams(now), now)
	late := c.Deadline.Add(time.Second)
	if _, err := c.ApplyInvestment(500, late); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("got %v, want ErrDeadlinePassed", err)
	}
	if _, err := c.ApplyInvestment(500, c.Deadline); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("deadline instant must already be expired, got %v", err)
	}
	if !errors.Is(ErrDeadlinePassed, ErrState) {
		t.Fatalf("expired campaign must surface a state error")
	}
}

func TestApplyInvestmentSupplyCap(t *testing.T) {
	now := time.Now()
	p := validParams(now)
	p.Target = 1_000_000
	p.TotalSupply = 100 // pool of 10 tokens at equity 10
	c, _ := NewCampaign(p, now)

	// 200/10 = 20 tokens > pool of 10
	if _, err := c.ApplyInvestment(200, now); !errors.Is(err, ErrSupplyExceeded) {
		t.Fatalf("got %v, want ErrSupplyExceeded", err)
	}
	// exactly the pool is fine
	tokens, err := c.ApplyInvestment(100, now)
	if err != nil {
		t.Fatalf("ApplyInvestment: %v", err)
	}
	if tokens != 10 || c.RemainingPool() != 0 {
		t.Fatalf("got %d tokens, pool %d; want 10 and 0", tokens, c.RemainingPool())
	}
	// pool exhausted: any token-buying amount must now fail
	if _, err = c.ApplyInvestment(10, now); !errors.Is(err, ErrSupplyExceeded) {
		t.Fatalf("got %v, want ErrSupplyExceeded on empty pool", err)
	}
}

func TestApplyInvestmentZeroTokenContribution(t *testing.T) {
	now := time.Now()
	p := validParams(now)
	p.TokenPrice = 100
	c, _ := NewCampaign(p, now)

	// 7 < tokenPrice buys zero tokens but still counts toward raised
	tokens, err := c.ApplyInvestment(7, now)
	if err != nil {
		t.Fatalf("ApplyInvestment: %v", err)
	}
	if tokens != 0 {
		t.Fatalf("got %d tokens, want 0", tokens)
	}
	if c.RaisedAmount != 7 {
		t.Fatalf("raised %d, want 7", c.RaisedAmount)
	}
}

func TestApplyInvestmentEscrowCeiling(t *testing.T) {
	now := time.Now()
	c := &Campaign{
		Owner:             "founder",
		Target:            MaxRaisedAmount,
		Equity:            1,
		CirculationSupply: MaxRaisedAmount,
		TokenPrice:        1,
		Deadline:          now.Add(time.Hour),
	}

	// a single contribution past the ceiling is rejected outright
	if _, err := c.ApplyInvestment(MaxRaisedAmount+1, now); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("got %v, want ErrAmountTooLarge", err)
	}
	if !errors.Is(ErrAmountTooLarge, ErrValidation) {
		t.Fatalf("ceiling breach must surface a validation error")
	}

	// the ceiling binds the running total, not just one amount
	c.RaisedAmount = MaxRaisedAmount - 100
	if _, err := c.ApplyInvestment(101, now); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("got %v, want ErrAmountTooLarge near the ceiling", err)
	}
	if c.RaisedAmount != MaxRaisedAmount-100 {
		t.Fatalf("rejected contribution must not change raised amount")
	}
	tokens, err := c.ApplyInvestment(100, now)
	if err != nil {
		t.Fatalf("ApplyInvestment at the ceiling: %v", err)
	}
	if tokens != 100 || c.RaisedAmount != MaxRaisedAmount {
		t.Fatalf("got %d tokens, raised %d; want 100 and the ceiling", tokens, c.RaisedAmount)
	}
}

func TestClosureTrigger(t *testing.T) {
	now := time.Now()
	c, _ := NewCampaign(validParams(now), now)

	tokens, err := c.ApplyInvestment(500, now)
	if err != nil {
		t.Fatalf("first investment: %v", err)
	}
	if tokens != 50 {
		t.Fatalf("got %d tokens, want 50", tokens)
	}
	if c.RaisedAmount != 500 || c.IsClosed {
		t.Fatalf("campaign must stay open at raised=%d", c.RaisedAmount)
	}

	if _, err = c.ApplyInvestment(500, now); err != nil {
		t.Fatalf("second investment: %v", err)
	}
	if c.RaisedAmount != 1000 || !c.IsClosed || !c.IsFunded {
		t.Fatalf("campaign must close exactly when raised reaches target")
	}

	// closed is permanent
	if _, err = c.ApplyInvestment(500, now); !errors.Is(err, ErrCampaignClosed) {
		t.Fatalf("got %v, want ErrCampaignClosed", err)
	}
	if !c.IsClosed {
		t.Fatalf("closure must never revert")
	}
}

func TestSplitFeeExactness(t *testing.T) {
	for amount := int64(0); amount < 1000; amount++ {
		owner, treasury := SplitFee(amount)
		if treasury != amount*3/100 {
			t.Fatalf("amount %d: treasury %d, want %d", amount, treasury, amount*3/100)
		}
		if owner+treasury != amount {
			t.Fatalf("amount %d: owner %d + treasury %d != amount", amount, owner, treasury)
		}
		if owner < 0 || treasury < 0 {
			t.Fatalf("amount %d: negative share", amount)
		}
	}

	// the escrow ceiling keeps the percentage product inside int64
	owner, treasury := SplitFee(MaxRaisedAmount)
	if owner < 0 || treasury < 0 || owner+treasury != MaxRaisedAmount {
		t.Fatalf("split at ceiling: got %d/%d", owner, treasury)
	}
}

func TestBeginWithdrawal(t *testing.T) {
	now := time.Now()
	c, _ := NewCampaign(validParams(now), now)

	if _, _, err := c.BeginWithdrawal(); !errors.Is(err, ErrTargetNotReached) {
		t.Fatalf("got %v, want ErrTargetNotReached", err)
	}

	if _, err := c.ApplyInvestment(1000, now); err != nil {
		t.Fatalf("investment: %v", err)
	}

	owner, treasury, err := c.BeginWithdrawal()
	if err != nil {
		t.Fatalf("BeginWithdrawal: %v", err)
	}
	if treasury != 30 || owner != 970 {
		t.Fatalf("split got %d/%d, want 970/30", owner, treasury)
	}
	if c.RaisedAmount != 0 || !c.Withdrawn {
		t.Fatalf("withdrawal must zero the escrow and mark withdrawn")
	}

	// single withdrawal: the second attempt always fails
	if _, _, err = c.BeginWithdrawal(); !errors.Is(err, ErrAlreadyWithdrawn) {
		t.Fatalf("got %v, want ErrAlreadyWithdrawn", err)
	}
	if !errors.Is(ErrAlreadyWithdrawn, ErrState) {
		t.Fatalf("double withdrawal must surface a state error")
	}
}

// TestFundingScenario walks the reference flow: target 1000, supply 1000,
// equity 10, price 10, two contributions of 500 and a single withdrawal.
func TestFundingScenario(t *testing.T) {
	now := time.Now()
	c, err := NewCampaign(validParams(now), now)
	if err != nil {
		t.Fatalf("NewCampaign: %v", err)
	}
	if c.CirculationSupply != 100 {
		t.Fatalf("circulation supply %d, want 100", c.CirculationSupply)
	}

	tokens, err := c.ApplyInvestment(500, now)
	if err != nil || tokens != 50 {
		t.Fatalf("first invest: tokens=%d err=%v, want 50/nil", tokens, err)
	}
	if c.IsClosed {
		t.Fatalf("campaign closed early at raised=%d", c.RaisedAmount)
	}

	tokens, err = c.ApplyInvestment(500, now)
	if err != nil || tokens != 50 {
		t.Fatalf("second invest: tokens=%d err=%v, want 50/nil", tokens, err)
	}
	if !c.IsClosed || c.RaisedAmount != 1000 {
		t.Fatalf("campaign must close at raised=1000, got closed=%v raised=%d", c.IsClosed, c.RaisedAmount)
	}

	// closure transferred nothing: the escrow is released once, by withdraw
	owner, treasury, err := c.BeginWithdrawal()
	if err != nil {
		t.Fatalf("withdrawal: %v", err)
	}
	if owner != 970 || treasury != 30 {
		t.Fatalf("payout got %d/%d, want 970/30", owner, treasury)
	}
	if _, _, err = c.BeginWithdrawal(); !errors.Is(err, ErrAlreadyWithdrawn) {
		t.Fatalf("second withdrawal: got %v, want ErrAlreadyWithdrawn", err)
	}
}
