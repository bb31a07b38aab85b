package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdmint/internal/core/domain"
	"crowdmint/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Mutating methods run as serializable transactions with the
// campaign row locked FOR UPDATE, so mutations behave as a single writer:
// no two interleave and each commits fully or not at all.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, owner_address, name, symbol, description, team, image,
    target, raised_amount, equity, circulation_supply, tokens_sold, token_price,
    deadline, is_funded, is_closed, withdrawn, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Owner,
		&c.Name,
		&c.Symbol,
		&c.Description,
		&c.Team,
		&c.Image,
		&c.Target,
		&c.RaisedAmount,
		&c.Equity,
		&c.CirculationSupply,
		&c.TokensSold,
		&c.TokenPrice,
		&c.Deadline,
		&c.IsFunded,
		&c.IsClosed,
		&c.Withdrawn,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts the campaign, spawns its claim token with the full
// supply minted to the owner, registers the owner index entry and appends
// the creation event, all in one transaction. The id comes from an identity
// column starting at 0, so it equals the creation-order index and is issued
// under the same transaction as the insert.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign, totalSupply int64) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `INSERT INTO campaigns
    (owner_address, name, symbol, description, team, image, target, equity,
     circulation_supply, token_price, deadline)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING id, created_at, updated_at`,
		c.Owner, c.Name, c.Symbol, c.Description, c.Team, c.Image,
		c.Target, c.Equity, c.CirculationSupply, c.TokenPrice, c.Deadline).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return 0, err
	}

	// spawn the claim token and mint the full supply to the owner
	token := domain.ClaimToken{
		CampaignID:  c.ID,
		Name:        c.Name,
		Symbol:      c.Symbol,
		TotalSupply: totalSupply,
	}
	_, err = tx.Exec(ctx, `INSERT INTO tokens (campaign_id, name, symbol, total_supply)
VALUES ($1,$2,$3,$4)`, token.CampaignID, token.Name, token.Symbol, token.TotalSupply)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `INSERT INTO token_balances (campaign_id, address, balance)
VALUES ($1,$2,$3)`, token.CampaignID, c.Owner, token.TotalSupply)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO owner_campaigns (owner_address, campaign_id)
VALUES ($1,$2)`, c.Owner, c.ID)
	if err != nil {
		return 0, err
	}

	if err = appendEvent(ctx, tx, domain.Event{
		CampaignID: c.ID,
		Kind:       domain.EventCampaignCreated,
		Actor:      c.Owner,
		Amount:     c.Target,
	}); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// Invest applies a contribution under a row lock. The funding transition
// itself lives on domain.Campaign; this method persists its outcome, debits
// the investor's account by exactly the contributed amount and moves claim
// tokens out of the owner's pre-minted pool. Any failure rolls back the
// whole contribution.
func (r *CampaignRepository) Invest(ctx context.Context, contrib *domain.Contribution) (*domain.Campaign, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock campaign
	c, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, contrib.CampaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	tokens, err := c.ApplyInvestment(contrib.Amount, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	// attached payment: debit the investor's native account
	tag, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance - $1, updated_at = now()
WHERE address = $2 AND balance >= $1`, contrib.Amount, contrib.Investor)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrInsufficientFunds
		return nil, err
	}

	if tokens > 0 {
		tag, err = tx.Exec(ctx, `UPDATE token_balances SET balance = balance - $1
WHERE campaign_id = $2 AND address = $3 AND balance >= $1`, tokens, c.ID, c.Owner)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			err = domain.ErrPoolExhausted
			return nil, err
		}
		_, err = tx.Exec(ctx, `INSERT INTO token_balances (campaign_id, address, balance)
VALUES ($1,$2,$3)
ON CONFLICT (campaign_id, address) DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance`,
			c.ID, contrib.Investor, tokens)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns
SET raised_amount = $1, tokens_sold = $2, is_closed = $3, is_funded = $4, updated_at = now()
WHERE id = $5`, c.RaisedAmount, c.TokensSold, c.IsClosed, c.IsFunded, c.ID)
	if err != nil {
		return nil, err
	}

	contrib.Tokens = tokens
	contrib.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO contributions (token, campaign_id, investor, amount, tokens, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		contrib.Token, contrib.CampaignID, contrib.Investor, contrib.Amount, contrib.Tokens, contrib.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = appendEvent(ctx, tx, domain.Event{
		CampaignID: c.ID,
		Kind:       domain.EventCampaignFunded,
		Actor:      contrib.Investor,
		Amount:     contrib.Amount,
	}); err != nil {
		return nil, err
	}
	if c.IsClosed {
		if err = appendEvent(ctx, tx, domain.Event{
			CampaignID: c.ID,
			Kind:       domain.EventCampaignClosed,
			Actor:      c.Owner,
			Amount:     c.RaisedAmount,
		}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Withdraw releases a funded campaign's escrow. The escrow is zeroed and
// the campaign marked withdrawn before the outbound credits are issued, so
// a concurrent call can never read an unspent balance; a failed credit
// rolls back the mark together with everything else.
func (r *CampaignRepository) Withdraw(ctx context.Context, campaignID int64, caller, treasury string) (*port.WithdrawReceipt, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock campaign
	c, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if c.Owner != caller {
		err = domain.ErrNotOwner
		return nil, err
	}

	amount := c.RaisedAmount
	ownerAmount, treasuryAmount, err := c.BeginWithdrawal()
	if err != nil {
		return nil, err
	}

	// mark as spent before issuing the credits
	_, err = tx.Exec(ctx, `UPDATE campaigns SET raised_amount = 0, withdrawn = TRUE, updated_at = now()
WHERE id = $1`, c.ID)
	if err != nil {
		return nil, err
	}

	if err = creditAccount(ctx, tx, c.Owner, ownerAmount); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrOwnerTransfer, err)
		return nil, err
	}
	if err = creditAccount(ctx, tx, treasury, treasuryAmount); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrTreasuryTransfer, err)
		return nil, err
	}

	if err = appendEvent(ctx, tx, domain.Event{
		CampaignID: c.ID,
		Kind:       domain.EventCampaignWithdrawn,
		Actor:      caller,
		Amount:     amount,
	}); err != nil {
		return nil, err
	}
	return &port.WithdrawReceipt{
		CampaignID:     c.ID,
		Amount:         amount,
		OwnerAmount:    ownerAmount,
		TreasuryAmount: treasuryAmount,
	}, nil
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CampaignIDsByOwner reads ids from the owner index in creation order.
func (r *CampaignRepository) CampaignIDsByOwner(ctx context.Context, owner string) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id FROM owner_campaigns WHERE owner_address = $1 ORDER BY campaign_id`, owner)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// TokenBalance returns the claim balance of address for a campaign. An
// address with no balance row holds zero; an unknown campaign is an error.
func (r *CampaignRepository) TokenBalance(ctx context.Context, campaignID int64, address string) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(b.balance, 0)
FROM tokens t
LEFT JOIN token_balances b ON b.campaign_id = t.campaign_id AND b.address = $2
WHERE t.campaign_id = $1`, campaignID, address).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// GetAccount returns a native account by address, or nil when it does not
// exist.
func (r *CampaignRepository) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx,
		`SELECT address, balance, created_at, updated_at FROM accounts WHERE address = $1`, address).
		Scan(&a.Address, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Deposit credits a native account, creating it on first use.
func (r *CampaignRepository) Deposit(ctx context.Context, address string, amount int64) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `INSERT INTO accounts (address, balance)
VALUES ($1,$2)
ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()
RETURNING balance`, address, amount).Scan(&balance)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func creditAccount(ctx context.Context, tx pgx.Tx, address string, amount int64) error {
	_, err := tx.Exec(ctx, `INSERT INTO accounts (address, balance)
VALUES ($1,$2)
ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()`,
		address, amount)
	return err
}

func appendEvent(ctx context.Context, tx pgx.Tx, e domain.Event) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	_, err := tx.Exec(ctx, `INSERT INTO events (id, campaign_id, kind, actor, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.CampaignID, e.Kind, e.Actor, e.Amount, e.CreatedAt)
	return err
}
