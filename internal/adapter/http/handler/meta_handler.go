package handler

import (
	"withdrawal-service/internal/adapter/http/dto"
	"withdrawal-service/internal/core/domain"
	"withdrawal-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// Meta handles GET /api/v1/meta. It serves the fixed lookup tables
// form and list widgets render from: the bank table and the per-status
// display config.
func Meta(c *gin.Context) {
	banks := make([]dto.BankOptionResponse, 0, len(domain.BankOptions))
	for _, opt := range domain.BankOptions {
		banks = append(banks, dto.BankOptionResponse{
			Value: string(opt.Value),
			Label: opt.Label,
		})
	}

	statuses := make(map[string]dto.StatusDisplayResponse, len(domain.StatusConfig))
	for status, display := range domain.StatusConfig {
		statuses[string(status)] = dto.StatusDisplayResponse{
			Label:   display.Label,
			Color:   display.Color,
			BgColor: display.BgColor,
		}
	}

	response.OK(c, dto.MetaResponse{
		Banks:    banks,
		Statuses: statuses,
	})
}
