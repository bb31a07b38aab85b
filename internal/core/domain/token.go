package domain

// ClaimToken describes the fungible claim asset issued by a campaign. One
// instance exists per campaign, created with the campaign itself; the full
// TotalSupply is minted to the campaign owner at construction and investors
// receive transfers out of that pre-minted pool. Balance accounting lives
// in the repository; insufficient source balance fails the transfer.
type ClaimToken struct {
	CampaignID  int64
	Name        string
	Symbol      string
	TotalSupply int64
}
