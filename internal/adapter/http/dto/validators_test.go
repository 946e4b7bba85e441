package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, v.RegisterValidation("bank_code", validateBankCode))
	require.NoError(t, v.RegisterValidation("withdrawal_status", validateWithdrawalStatus))
	return v
}

func TestBankCode_Valid(t *testing.T) {
	v := newValidator(t)
	cases := []string{"BBL", "KBANK", "SCB", "KTB", "TMB", "BAY", "GSB"}
	for _, tc := range cases {
		assert.NoError(t, v.Var(tc, "bank_code"), "expected valid: %s", tc)
	}
}

func TestBankCode_Invalid(t *testing.T) {
	v := newValidator(t)
	cases := []string{
		"UOB",    // not in the bank table
		"bbl",    // lowercase
		"KBANK ", // trailing space
		"",
	}
	for _, tc := range cases {
		assert.Error(t, v.Var(tc, "bank_code"), "expected invalid: %q", tc)
	}
}

func TestWithdrawalStatus_Valid(t *testing.T) {
	v := newValidator(t)
	cases := []string{"all", "pending", "processing", "completed", "failed", "canceled"}
	for _, tc := range cases {
		assert.NoError(t, v.Var(tc, "withdrawal_status"), "expected valid: %s", tc)
	}
}

func TestWithdrawalStatus_Invalid(t *testing.T) {
	v := newValidator(t)
	cases := []string{"Pending", "done", "CANCELED", "shipped", ""}
	for _, tc := range cases {
		assert.Error(t, v.Var(tc, "withdrawal_status"), "expected invalid: %q", tc)
	}
}

func TestCreateWithdrawalRequest_BankBinding(t *testing.T) {
	v := newValidator(t)

	req := CreateWithdrawalRequest{
		UserName:      "Test User",
		AccountNumber: "999-888-7777",
		Bank:          "KBANK",
		Amount:        1000,
	}
	assert.NoError(t, v.Struct(req))

	req.Bank = "UOB"
	assert.Error(t, v.Struct(req))

	// Empty bank passes binding; the command service rejects it with
	// its canonical message.
	req.Bank = ""
	assert.NoError(t, v.Struct(req))
}
