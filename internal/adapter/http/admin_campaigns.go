package httpadapter

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

type campaignForm struct {
	Values domain.CampaignRequest
	Errors domain.FieldErrors
}

type campaignsData struct {
	Rows      []domain.Campaign
	Filter    domain.Platform
	Platforms []domain.Platform
	Statuses  []domain.CampaignStatus
	Total     int64
	Loaded    bool
	Pager     pager
	Form      campaignForm
}

func platformFilter(q url.Values) (domain.Platform, bool) {
	if !q.Has("platform") {
		return "", false
	}
	v := strings.ToUpper(strings.TrimSpace(q.Get("platform")))
	if v == "" || v == "ALL" {
		return "", true
	}
	p := domain.Platform(v)
	return p, p.Valid()
}

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	view := h.campaignsView(mustSession(r))
	platform, ok := platformFilter(r.URL.Query())
	err := syncView(r, view, platform, ok)
	if h.expired(w, r, err) {
		return
	}
	h.renderCampaigns(w, r, view, campaignForm{}, h.listFailure(r, err))
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	view := h.campaignsView(mustSession(r))
	errs := domain.FieldErrors{}
	req := domain.CampaignRequest{
		ClientName:        formValue(r, "clientName"),
		ClientEmail:       formValue(r, "clientEmail"),
		BusinessName:      formValue(r, "businessName"),
		Platform:          domain.Platform(formValue(r, "platform")),
		CampaignType:      formValue(r, "campaignType"),
		TargetLocation:    formValue(r, "targetLocation"),
		BudgetMonthly:     formFloat(r, "budgetMonthly", errs, "Enter a number"),
		CampaignObjective: formValue(r, "campaignObjective"),
	}
	if err := req.Validate(); err != nil {
		for k, v := range fieldErrors(err) {
			errs[k] = v
		}
	}
	if len(errs) > 0 {
		h.renderCampaigns(w, r, view, campaignForm{Values: req, Errors: errs},
			&session.Flash{Kind: session.FlashError, Message: "Please fix the highlighted fields"})
		return
	}

	api := h.backendFor(r)
	created := false
	err := view.Apply(r.Context(), func(ctx context.Context) error {
		_, err := api.CreateCampaign(ctx, req)
		created = err == nil
		return err
	})
	if h.expired(w, r, err) {
		return
	}
	// Keep what was typed when the backend refused the campaign.
	form := campaignForm{}
	if !created {
		form.Values = req
	}
	h.renderCampaigns(w, r, view, form, h.mutationFlash(r, err, "Campaign created", "Could not create the campaign."))
}

func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	view := h.campaignsView(mustSession(r))
	id, ok := idParam(r)
	status := domain.CampaignStatus(formValue(r, "status"))
	if !ok || !status.Valid() {
		h.renderCampaigns(w, r, view, campaignForm{}, &session.Flash{Kind: session.FlashError, Message: "Unknown campaign or status"})
		return
	}
	api := h.backendFor(r)
	err := view.Apply(r.Context(), func(ctx context.Context) error {
		_, err := api.UpdateCampaignStatus(ctx, id, status)
		return err
	})
	if h.expired(w, r, err) {
		return
	}
	h.renderCampaigns(w, r, view, campaignForm{}, h.mutationFlash(r, err, "Campaign "+strings.ToLower(domain.Label(string(status))), "Could not update the campaign status."))
}

// handleCampaignMetrics overwrites the counters entered in the row form.
// Blank fields are left unchanged.
func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	view := h.campaignsView(mustSession(r))
	id, ok := idParam(r)
	if !ok {
		h.renderCampaigns(w, r, view, campaignForm{}, &session.Flash{Kind: session.FlashError, Message: "Unknown campaign"})
		return
	}
	errs := domain.FieldErrors{}
	m := domain.MetricsUpdate{
		Impressions: formOptInt64(r, "impressions", errs),
		Clicks:      formOptInt64(r, "clicks", errs),
		Conversions: formOptInt64(r, "conversions", errs),
		Spend:       formOptFloat(r, "spend", errs),
	}
	if len(errs) == 0 {
		if err := m.Validate(); err != nil {
			errs = fieldErrors(err)
		}
	}
	if len(errs) > 0 {
		h.renderCampaigns(w, r, view, campaignForm{}, &session.Flash{Kind: session.FlashError, Message: "Metrics not saved: " + errs.Error()})
		return
	}

	api := h.backendFor(r)
	err := view.Apply(r.Context(), func(ctx context.Context) error {
		_, err := api.UpdateCampaignMetrics(ctx, id, m)
		return err
	})
	if h.expired(w, r, err) {
		return
	}
	h.renderCampaigns(w, r, view, campaignForm{}, h.mutationFlash(r, err, "Metrics updated", "Could not update the campaign metrics."))
}

func (h *Handler) renderCampaigns(w http.ResponseWriter, r *http.Request, view *campaignsView, form campaignForm, flash *session.Flash) {
	snap := view.Snapshot()
	q := url.Values{}
	if snap.Filter != "" {
		q.Set("platform", string(snap.Filter))
	} else {
		q.Set("platform", "ALL")
	}
	h.render(w, r, http.StatusOK, "admin_campaigns.html", pageData{
		Title: "Campaigns",
		Nav:   "campaigns",
		Flash: flash,
		Data: campaignsData{
			Rows:      snap.Rows,
			Filter:    snap.Filter,
			Platforms: domain.Platforms,
			Statuses:  domain.CampaignStatuses,
			Total:     snap.TotalElements,
			Loaded:    snap.Loaded,
			Pager:     newPager("/admin/campaigns", q, snap),
			Form:      form,
		},
	})
}
