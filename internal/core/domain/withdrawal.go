package domain

import "time"

// WithdrawalStatus represents the lifecycle state of a withdrawal request.
type WithdrawalStatus string

const (
	StatusPending    WithdrawalStatus = "pending"
	StatusProcessing WithdrawalStatus = "processing"
	StatusCompleted  WithdrawalStatus = "completed"
	StatusFailed     WithdrawalStatus = "failed"
	StatusCanceled   WithdrawalStatus = "canceled"
)

// AllStatuses lists every withdrawal status in display order.
var AllStatuses = []WithdrawalStatus{
	StatusPending,
	StatusProcessing,
	StatusCompleted,
	StatusFailed,
	StatusCanceled,
}

// IsValidStatus reports whether s is one of the five known statuses.
func IsValidStatus(s WithdrawalStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// AttachmentType represents the kind of supporting file.
type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentVideo    AttachmentType = "video"
	AttachmentDocument AttachmentType = "document"
)

// Attachment is a supporting file reference linked to a withdrawal.
// Attachments are immutable once linked; there is no mutation endpoint.
type Attachment struct {
	ID   string         `json:"id"`
	Type AttachmentType `json:"type"`
	Name string         `json:"name"`
	URL  string         `json:"url"`
}

// StatusHistoryEntry is one transition event in a withdrawal's audit trail.
type StatusHistoryEntry struct {
	Status WithdrawalStatus `json:"status"`
	At     time.Time        `json:"at"`
}

// Withdrawal is a request to move funds out, tracked through a small
// status lifecycle. History is append-only and never empty; the first
// entry is always pending and Status mirrors the last entry's status.
type Withdrawal struct {
	ID            string               `json:"id"`
	UserName      string               `json:"user_name"`
	AccountNumber string               `json:"account_number"`
	Bank          BankCode             `json:"bank"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Status        WithdrawalStatus     `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	History       []StatusHistoryEntry `json:"history"`
	Attachments   []Attachment         `json:"attachments"`
	Note          string               `json:"note"`
}

// DefaultCurrency is the single currency code carried by every record.
const DefaultCurrency = "THB"

// CurrentStatus returns the status of the most recent history entry,
// or empty when the history is empty (an invariant violation).
func (w *Withdrawal) CurrentStatus() WithdrawalStatus {
	if len(w.History) == 0 {
		return ""
	}
	return w.History[len(w.History)-1].Status
}

// Clone returns a deep copy so callers can never mutate stored state
// through a returned record.
func (w *Withdrawal) Clone() *Withdrawal {
	cp := *w
	cp.History = make([]StatusHistoryEntry, len(w.History))
	copy(cp.History, w.History)
	cp.Attachments = make([]Attachment, len(w.Attachments))
	copy(cp.Attachments, w.Attachments)
	return &cp
}
