package handler

import (
	"withdrawal-service/internal/adapter/http/dto"
	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"
	"withdrawal-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// OverviewHandler exposes the state facade for a dashboard session.
type OverviewHandler struct {
	facade ports.StateFacade
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(facade ports.StateFacade) *OverviewHandler {
	return &OverviewHandler{facade: facade}
}

// Get handles GET /api/v1/overview. Query params update the facade's
// filter state before the refresh; on a failed refresh the last good
// cached data is returned together with the error message.
func (h *OverviewHandler) Get(c *gin.Context) {
	if status, ok := c.GetQuery("status"); ok {
		if status != ports.StatusFilterAll && !domain.IsValidStatus(domain.WithdrawalStatus(status)) {
			response.Error(c, apperror.Validation("unknown status filter"))
			return
		}
		h.facade.SetStatusFilter(status)
	}
	if query, ok := c.GetQuery("q"); ok {
		h.facade.SetSearchQuery(query)
	}

	// Stale-but-available: a refresh failure still answers with the
	// previous snapshot plus its error message.
	_ = h.facade.Refresh(c.Request.Context())

	snap := h.facade.Snapshot()

	items := make([]dto.WithdrawalResponse, 0, len(snap.Withdrawals))
	for i := range snap.Withdrawals {
		items = append(items, toWithdrawalResponse(&snap.Withdrawals[i]))
	}

	resp := dto.OverviewResponse{
		Items:  items,
		Status: snap.Status,
		Query:  snap.Query,
		Error:  snap.Err,
	}
	if snap.Stats != nil {
		stats := toStatsResponse(snap.Stats)
		resp.Stats = &stats
	}

	response.OK(c, resp)
}
