package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"crowdmint/internal/core/domain"
)

// accountHeader identifies the calling account.
const accountHeader = "X-Account"

type createCampaignRequest struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Team        string `json:"team"`
	Image       string `json:"image"`
	Target      int64  `json:"target"`
	TotalSupply int64  `json:"total_supply"`
	Equity      int64  `json:"equity"`
	TokenPrice  int64  `json:"token_price"`
	Deadline    int64  `json:"deadline"` // unix seconds
}

type campaignResponse struct {
	ID                int64  `json:"id"`
	Owner             string `json:"owner"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Description       string `json:"description"`
	Team              string `json:"team"`
	Image             string `json:"image"`
	Target            int64  `json:"target"`
	RaisedAmount      int64  `json:"raised_amount"`
	Equity            int64  `json:"equity"`
	CirculationSupply int64  `json:"circulation_supply"`
	TokensSold        int64  `json:"tokens_sold"`
	TokenPrice        int64  `json:"token_price"`
	Deadline          int64  `json:"deadline"`
	IsFunded          bool   `json:"is_funded"`
	IsClosed          bool   `json:"is_closed"`
	Withdrawn         bool   `json:"withdrawn"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:                c.ID,
		Owner:             c.Owner,
		Name:              c.Name,
		Symbol:            c.Symbol,
		Description:       c.Description,
		Team:              c.Team,
		Image:             c.Image,
		Target:            c.Target,
		RaisedAmount:      c.RaisedAmount,
		Equity:            c.Equity,
		CirculationSupply: c.CirculationSupply,
		TokensSold:        c.TokensSold,
		TokenPrice:        c.TokenPrice,
		Deadline:          c.Deadline.Unix(),
		IsFunded:          c.IsFunded,
		IsClosed:          c.IsClosed,
		Withdrawn:         c.Withdrawn,
	}
}

// handleCreateCampaign registers a new campaign. The owner is taken from
// the X-Account header. On success it returns HTTP 201 with the assigned
// campaign id. Validation failures produce HTTP 400 with the reason.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	owner := r.Header.Get(accountHeader)
	if owner == "" {
		http.Error(w, "missing "+accountHeader+" header", http.StatusBadRequest)
		return
	}
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), domain.NewCampaignParams{
		Owner:       owner,
		Name:        req.Name,
		Symbol:      req.Symbol,
		Description: req.Description,
		Team:        req.Team,
		Image:       req.Image,
		Target:      req.Target,
		TotalSupply: req.TotalSupply,
		Equity:      req.Equity,
		TokenPrice:  req.TokenPrice,
		Deadline:    time.Unix(req.Deadline, 0),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("campaign created",
		slog.Int64("id", id),
		slog.String("owner", owner),
		slog.String("name", req.Name),
		slog.String("symbol", req.Symbol),
		slog.Int64("target", req.Target),
		slog.Int64("deadline", req.Deadline),
	)
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// handleGetCampaign returns a single campaign by its {id} path parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleCampaignsByOwner returns the ids of campaigns created by the owner
// given in the `owner` query parameter, in creation order.
func (h *Handler) handleCampaignsByOwner(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		http.Error(w, "missing owner parameter", http.StatusBadRequest)
		return
	}
	ids, err := h.svc.CampaignsByOwner(r.Context(), owner)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]int64{"campaign_ids": ids})
}
