package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundscope/internal/core/port"
)

const maxBodyBytes = 1 << 16

func (h *Handler) handleTransactions(w http.ResponseWriter, r *http.Request) {
	campaign, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	records, err := h.svc.Transactions(r.Context(), campaign)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]transactionResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toTransactionResponse(rec))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleFund relays a contribution of the selected tier's amount.
func (h *Handler) handleFund(w http.ResponseWriter, r *http.Request) {
	campaign, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body fundRequest
	if err = decodeBody(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if body.TierIndex == nil {
		h.writeError(w, r, fmt.Errorf("%w: tier_index required", errBadRequest))
		return
	}
	account, err := parseAddress(body.Account, false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Fund(r.Context(), port.FundRequest{Campaign: campaign, Account: account, TierIndex: *body.TierIndex})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, toTxResultResponse(res))
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	campaign, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body withdrawRequest
	if err = decodeBody(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := parseAddress(body.Account, false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Withdraw(r.Context(), port.WithdrawRequest{Campaign: campaign, Account: account})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, toTxResultResponse(res))
}

func (h *Handler) handleAddTier(w http.ResponseWriter, r *http.Request) {
	campaign, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body addTierRequest
	if err = decodeBody(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := parseAddress(body.Account, false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := parseAmount(body.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.AddTier(r.Context(), port.AddTierRequest{
		Campaign: campaign,
		Account:  account,
		Name:     body.Name,
		Amount:   amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, toTxResultResponse(res))
}

func (h *Handler) handleRemoveTier(w http.ResponseWriter, r *http.Request) {
	campaign, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: invalid tier index", errBadRequest))
		return
	}
	account, err := parseAddress(r.URL.Query().Get("account"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.RemoveTier(r.Context(), port.RemoveTierRequest{Campaign: campaign, Account: account, Index: index})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, toTxResultResponse(res))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", errBadRequest, err)
	}
	return nil
}
