package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundscope/internal/core/domain"
)

// handleListCampaigns returns every registered campaign with its derived
// metrics. The optional status query parameter filters by ONGOING,
// SUCCESSFUL or FAILED; it defaults to ALL.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	selector, err := domain.ParseSelector(r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	views, err := h.svc.ListCampaigns(r.Context(), selector)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignListResponse(views))
}

// handleGetCampaign returns one campaign with tiers and the capabilities of
// the account query parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := parseAddress(r.URL.Query().Get("account"), true)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), campaign, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignDetailResponse(view))
}

// handleUserCampaigns returns the campaigns created by the account in the
// path.
func (h *Handler) handleUserCampaigns(w http.ResponseWriter, r *http.Request) {
	user, err := parseAddress(chi.URLParam(r, "address"), false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	views, err := h.svc.ListUserCampaigns(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignListResponse(views))
}
