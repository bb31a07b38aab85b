package httpadapter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"log/slog"

	"crowdmint/internal/adapter/usecase"
	"crowdmint/internal/core/domain"
	"crowdmint/internal/core/port/mocks"
)

const adminKey = "test-admin-key"

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignRepository) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := usecase.NewFundingService(repo, adminKey)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), repo
}

// TestInvestErrorStatus maps the failure modes of an investment onto their
// HTTP status codes, debit shortfalls included.
func TestInvestErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"pool exhausted", domain.ErrPoolExhausted, http.StatusUnprocessableEntity},
		{"campaign closed", domain.ErrCampaignClosed, http.StatusConflict},
		{"deadline passed", domain.ErrDeadlinePassed, http.StatusConflict},
		{"unknown campaign", domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, repo := newTestHandler(t)
			repo.EXPECT().
				Invest(mock.Anything, mock.AnythingOfType("*domain.Contribution")).
				Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/1/investments", strings.NewReader(`{"amount":100}`))
			req.Header.Set(accountHeader, "investor-1")
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf("status %d, want %d", rec.Code, tc.code)
			}
		})
	}
}

// TestWithdrawTransferFailureStatus reports a failed outbound credit as a
// bad gateway, for either leg of the fee split.
func TestWithdrawTransferFailureStatus(t *testing.T) {
	for _, failure := range []error{domain.ErrOwnerTransfer, domain.ErrTreasuryTransfer} {
		h, repo := newTestHandler(t)
		repo.EXPECT().
			Withdraw(mock.Anything, int64(4), "founder", "treasury").
			Return(nil, failure)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/4/withdrawal", strings.NewReader(`{"treasury":"treasury"}`))
		req.Header.Set(accountHeader, "founder")
		req.Header.Set(adminKeyHeader, adminKey)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("%v: status %d, want 502", failure, rec.Code)
		}
	}
}
