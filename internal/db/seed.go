package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a handful of funded investor accounts and two
// open campaigns with their claim tokens minted to the owners. It is a
// no-op when campaigns already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// investor accounts
	for i := 1; i <= 5; i++ {
		address := fmt.Sprintf("investor-%d", i)
		_, err := pool.Exec(ctx, `INSERT INTO accounts (address, balance)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, address, int64(100_000))
		if err != nil {
			return err
		}
	}

	type demoCampaign struct {
		owner       string
		name        string
		symbol      string
		description string
		target      int64
		totalSupply int64
		equity      int64
		tokenPrice  int64
	}
	demos := []demoCampaign{
		{
			owner:       "founder-1",
			name:        "Solar Microgrid",
			symbol:      "SOLAR",
			description: "Community-owned solar microgrid",
			target:      50_000,
			totalSupply: 1_000_000,
			equity:      10,
			tokenPrice:  25,
		},
		{
			owner:       "founder-2",
			name:        "Open Brewery",
			symbol:      "BREW",
			description: "Cooperative neighbourhood brewery",
			target:      20_000,
			totalSupply: 400_000,
			equity:      20,
			tokenPrice:  10,
		},
	}

	deadline := time.Now().UTC().AddDate(0, 1, 0)
	for _, d := range demos {
		var id int64
		err := pool.QueryRow(ctx, `INSERT INTO campaigns
    (owner_address, name, symbol, description, target, equity,
     circulation_supply, token_price, deadline)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id`,
			d.owner, d.name, d.symbol, d.description, d.target, d.equity,
			d.totalSupply/d.equity, d.tokenPrice, deadline).Scan(&id)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO tokens (campaign_id, name, symbol, total_supply)
VALUES ($1,$2,$3,$4)`, id, d.name, d.symbol, d.totalSupply)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO token_balances (campaign_id, address, balance)
VALUES ($1,$2,$3)`, id, d.owner, d.totalSupply)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO owner_campaigns (owner_address, campaign_id)
VALUES ($1,$2)`, d.owner, id)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO events (id, campaign_id, kind, actor, amount, created_at)
VALUES ($1,$2,'campaign_created',$3,$4,now())`, uuid.NewString(), id, d.owner, d.target)
		if err != nil {
			return err
		}
	}
	return nil
}
