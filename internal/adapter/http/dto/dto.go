package dto

// CreateWithdrawalRequest is the request body for withdrawal creation.
// Field-level rules here are a transport-level convenience; the command
// service re-validates with the canonical messages.
type CreateWithdrawalRequest struct {
	UserName      string  `json:"user_name"`
	AccountNumber string  `json:"account_number"`
	Bank          string  `json:"bank" binding:"omitempty,bank_code"`
	Amount        float64 `json:"amount"`
	Note          string  `json:"note"`
}

// StatusHistoryResponse is one history entry in responses.
type StatusHistoryResponse struct {
	Status string `json:"status"`
	At     string `json:"at"`
}

// AttachmentResponse is one attachment in responses.
type AttachmentResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// WithdrawalResponse is the response body for a single withdrawal.
type WithdrawalResponse struct {
	ID            string                  `json:"id"`
	UserName      string                  `json:"user_name"`
	AccountNumber string                  `json:"account_number"`
	Bank          string                  `json:"bank"`
	Amount        float64                 `json:"amount"`
	Currency      string                  `json:"currency"`
	Status        string                  `json:"status"`
	CreatedAt     string                  `json:"created_at"`
	History       []StatusHistoryResponse `json:"history"`
	Attachments   []AttachmentResponse    `json:"attachments"`
	Note          string                  `json:"note"`
}

// WithdrawalListResponse wraps a paginated withdrawal list.
type WithdrawalListResponse struct {
	Items      []WithdrawalResponse `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// StatsResponse is the response for withdrawal statistics.
type StatsResponse struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Processing  int     `json:"processing"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	Canceled    int     `json:"canceled"`
	TotalAmount float64 `json:"total_amount"`
}

// BankOptionResponse is one entry of the fixed bank table.
type BankOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatusDisplayResponse is the display metadata for one status.
type StatusDisplayResponse struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// MetaResponse carries the lookup tables rendered by form widgets.
type MetaResponse struct {
	Banks    []BankOptionResponse             `json:"banks"`
	Statuses map[string]StatusDisplayResponse `json:"statuses"`
}

// OverviewResponse is the facade snapshot for a dashboard session.
type OverviewResponse struct {
	Items  []WithdrawalResponse `json:"items"`
	Stats  *StatsResponse       `json:"stats,omitempty"`
	Status string               `json:"status"`
	Query  string               `json:"query"`
	Error  string               `json:"error,omitempty"`
}
