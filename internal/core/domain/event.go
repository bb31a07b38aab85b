package domain

import (
	"time"
)

// Event kinds appended to the campaign event log.
const (
	EventCampaignCreated   = "campaign_created"
	EventCampaignFunded    = "campaign_funded"
	EventCampaignClosed    = "campaign_closed"
	EventCampaignWithdrawn = "campaign_withdrawn"
)

// Event is an append-only notification record. One is written inside the
// same transaction as the state change it describes.
type Event struct {
	ID         string
	CampaignID int64
	Kind       string
	Actor      string
	Amount     int64
	CreatedAt  time.Time
}

// Contribution is a record of a single investment into a campaign. Token
// is a caller-generated unique identifier; Tokens is the number of claim
// tokens transferred to the investor.
type Contribution struct {
	Token      string
	CampaignID int64
	Investor   string
	Amount     int64
	Tokens     int64
	CreatedAt  time.Time
}
