package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type depositRequest struct {
	Amount int64 `json:"amount"`
}

// handleDeposit credits the native account in {address}. It stands in for
// the out-of-scope payment on-ramp so investor accounts can be funded.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	balance, err := h.svc.Deposit(r.Context(), address, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"address": address,
		"balance": balance,
	})
}

// handleGetAccount returns the native account in {address}.
func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	account, err := h.svc.GetAccount(r.Context(), address)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"address": account.Address,
		"balance": account.Balance,
	})
}

// handleTokenBalance returns the claim token balance held by {address} for
// the campaign in {id}.
func (h *Handler) handleTokenBalance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	address := chi.URLParam(r, "address")
	balance, err := h.svc.TokenBalance(r.Context(), id, address)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id": id,
		"address":     address,
		"balance":     balance,
	})
}
