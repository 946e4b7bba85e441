package handler

import (
	"math"
	"strconv"
	"time"

	"withdrawal-service/internal/adapter/http/dto"
	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"
	"withdrawal-service/pkg/metrics"
	"withdrawal-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles withdrawal listing, lookup and creation.
type WithdrawalHandler struct {
	querySvc   ports.QueryService
	commandSvc ports.CommandService
	collector  *metrics.Collector // nil = metrics disabled
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(querySvc ports.QueryService, commandSvc ports.CommandService, collector *metrics.Collector) *WithdrawalHandler {
	return &WithdrawalHandler{querySvc: querySvc, commandSvc: commandSvc, collector: collector}
}

// List handles GET /api/v1/withdrawals.
// Query params: status (all or a specific status), q (text search),
// page, page_size. The full filtered set is paginated server-side.
func (h *WithdrawalHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", ports.StatusFilterAll)
	if status != ports.StatusFilterAll && !domain.IsValidStatus(domain.WithdrawalStatus(status)) {
		response.Error(c, apperror.Validation("unknown status filter"))
		return
	}

	withdrawals, err := h.querySvc.Search(c.Request.Context(), ports.SearchParams{
		Status: status,
		Query:  c.Query("q"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total := len(withdrawals)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]dto.WithdrawalResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, toWithdrawalResponse(&withdrawals[i]))
	}

	response.OK(c, dto.WithdrawalListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// Get handles GET /api/v1/withdrawals/:id.
func (h *WithdrawalHandler) Get(c *gin.Context) {
	w, err := h.querySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if w == nil {
		response.Error(c, apperror.ErrNotFound("withdrawal"))
		return
	}

	response.OK(c, toWithdrawalResponse(w))
}

// Create handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	created, err := h.commandSvc.Create(c.Request.Context(), ports.CreateWithdrawalRequest{
		UserName:      req.UserName,
		AccountNumber: req.AccountNumber,
		Bank:          req.Bank,
		Amount:        req.Amount,
		Note:          req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.collector != nil {
		h.collector.RecordWithdrawalCreated()
	}

	response.Created(c, toWithdrawalResponse(created))
}

// Stats handles GET /api/v1/withdrawals/stats.
func (h *WithdrawalHandler) Stats(c *gin.Context) {
	stats, err := h.querySvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toStatsResponse(stats))
}

// toWithdrawalResponse converts domain.Withdrawal to DTO.
func toWithdrawalResponse(w *domain.Withdrawal) dto.WithdrawalResponse {
	history := make([]dto.StatusHistoryResponse, 0, len(w.History))
	for _, e := range w.History {
		history = append(history, dto.StatusHistoryResponse{
			Status: string(e.Status),
			At:     e.At.Format(time.RFC3339),
		})
	}

	attachments := make([]dto.AttachmentResponse, 0, len(w.Attachments))
	for _, a := range w.Attachments {
		attachments = append(attachments, dto.AttachmentResponse{
			ID:   a.ID,
			Type: string(a.Type),
			Name: a.Name,
			URL:  a.URL,
		})
	}

	return dto.WithdrawalResponse{
		ID:            w.ID,
		UserName:      w.UserName,
		AccountNumber: w.AccountNumber,
		Bank:          string(w.Bank),
		Amount:        w.Amount,
		Currency:      w.Currency,
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
		History:       history,
		Attachments:   attachments,
		Note:          w.Note,
	}
}

func toStatsResponse(stats *ports.WithdrawalStats) dto.StatsResponse {
	return dto.StatsResponse{
		Total:       stats.Total,
		Pending:     stats.Pending,
		Processing:  stats.Processing,
		Completed:   stats.Completed,
		Failed:      stats.Failed,
		Canceled:    stats.Canceled,
		TotalAmount: stats.TotalAmount,
	}
}
