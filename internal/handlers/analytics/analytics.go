package analytics

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context) (*domain.AnalyticsDashboard, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard godoc
//
//	@Summary	Program KPIs, trends and payment totals
//	@Tags		Analytics
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.AnalyticsDashboard
//	@Failure	403	{object}	utils.Response	"Insufficient permissions"
//	@Router		/api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, d)
}
