package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// adminKeyHeader carries the administrative key gating withdrawals.
const adminKeyHeader = "X-Admin-Key"

type investRequest struct {
	Amount int64 `json:"amount"`
}

type investResponse struct {
	CampaignID   int64  `json:"campaign_id"`
	Investor     string `json:"investor"`
	Amount       int64  `json:"amount"`
	Tokens       int64  `json:"tokens"`
	RaisedAmount int64  `json:"raised_amount"`
	Closed       bool   `json:"closed"`
}

// handleInvest records a contribution against the campaign in {id}. The
// investor is taken from the X-Account header and the attached payment is
// debited from their account by exactly the requested amount.
func (h *Handler) handleInvest(w http.ResponseWriter, r *http.Request) {
	investor := r.Header.Get(accountHeader)
	if investor == "" {
		http.Error(w, "missing "+accountHeader+" header", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req investRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Invest(r.Context(), id, investor, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("campaign funded",
		slog.Int64("campaign_id", res.CampaignID),
		slog.String("investor", res.Investor),
		slog.Int64("amount", res.Amount),
		slog.Bool("closed", res.Closed),
	)
	h.writeJSON(w, http.StatusOK, investResponse{
		CampaignID:   res.CampaignID,
		Investor:     res.Investor,
		Amount:       res.Amount,
		Tokens:       res.Tokens,
		RaisedAmount: res.RaisedAmount,
		Closed:       res.Closed,
	})
}

type withdrawRequest struct {
	Treasury string `json:"treasury"`
}

type withdrawResponse struct {
	CampaignID     int64 `json:"campaign_id"`
	Amount         int64 `json:"amount"`
	OwnerAmount    int64 `json:"owner_amount"`
	TreasuryAmount int64 `json:"treasury_amount"`
}

// handleWithdraw releases the escrow of the funded campaign in {id} with
// the fee split. The caller address comes from X-Account and the
// administrative key from X-Admin-Key; both gates must pass.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get(accountHeader)
	if caller == "" {
		http.Error(w, "missing "+accountHeader+" header", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req withdrawRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	receipt, err := h.svc.Withdraw(r.Context(), id, caller, r.Header.Get(adminKeyHeader), req.Treasury)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("campaign withdrawn",
		slog.Int64("campaign_id", receipt.CampaignID),
		slog.Int64("amount", receipt.Amount),
		slog.Int64("owner_amount", receipt.OwnerAmount),
		slog.Int64("treasury_amount", receipt.TreasuryAmount),
	)
	h.writeJSON(w, http.StatusOK, withdrawResponse{
		CampaignID:     receipt.CampaignID,
		Amount:         receipt.Amount,
		OwnerAmount:    receipt.OwnerAmount,
		TreasuryAmount: receipt.TreasuryAmount,
	})
}
