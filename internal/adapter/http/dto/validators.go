package dto

import (
	"withdrawal-service/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bank_code", validateBankCode)
		_ = v.RegisterValidation("withdrawal_status", validateWithdrawalStatus)
	}
}

// validateBankCode accepts only codes from the fixed bank table.
func validateBankCode(fl validator.FieldLevel) bool {
	return domain.IsValidBank(domain.BankCode(fl.Field().String()))
}

// validateWithdrawalStatus accepts "all" or one of the five statuses.
func validateWithdrawalStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "all" {
		return true
	}
	return domain.IsValidStatus(domain.WithdrawalStatus(s))
}
