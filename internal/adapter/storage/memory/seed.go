package memory

import (
	"time"

	"withdrawal-service/internal/core/domain"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedWithdrawals returns the demo dataset loaded at boot when
// store.seed_demo_data is enabled. Ordered oldest id first.
func SeedWithdrawals() []domain.Withdrawal {
	return []domain.Withdrawal{
		{
			ID:            "WD_001",
			UserName:      "Somchai",
			AccountNumber: "123-456-7890",
			Bank:          domain.BankBBL,
			Amount:        2500,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusPending,
			CreatedAt:     ts("2025-11-26T09:10:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-26T09:10:00Z")},
			},
			Attachments: []domain.Attachment{},
			Note:        "เบิกค่าเครื่องใช้สำนักงาน",
		},
		{
			ID:            "WD_002",
			UserName:      "Wirat",
			AccountNumber: "987-654-3210",
			Bank:          domain.BankKBANK,
			Amount:        1200,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusProcessing,
			CreatedAt:     ts("2025-11-25T13:30:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-25T13:36:00Z")},
				{Status: domain.StatusProcessing, At: ts("2025-11-25T14:00:00Z")},
			},
			Attachments: []domain.Attachment{
				{ID: "att_01", Type: domain.AttachmentImage, Name: "slip.jpg", URL: "/images/slip-placeholder.jpg"},
			},
			Note: "",
		},
		{
			ID:            "WD_003",
			UserName:      "Naphat",
			AccountNumber: "555-333-1111",
			Bank:          domain.BankSCB,
			Amount:        5000,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusCompleted,
			CreatedAt:     ts("2025-11-20T08:00:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-20T08:00:00Z")},
				{Status: domain.StatusProcessing, At: ts("2025-11-20T09:00:00Z")},
				{Status: domain.StatusCompleted, At: ts("2025-11-20T11:00:00Z")},
			},
			Attachments: []domain.Attachment{},
			Note:        "คืนเงินลูกค้า",
		},
		{
			ID:            "WD_004",
			UserName:      "Sarayut",
			AccountNumber: "222-888-4444",
			Bank:          domain.BankKTB,
			Amount:        15000,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusFailed,
			CreatedAt:     ts("2025-11-18T15:45:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-18T15:45:00Z")},
				{Status: domain.StatusProcessing, At: ts("2025-11-18T16:00:00Z")},
				{Status: domain.StatusFailed, At: ts("2025-11-18T16:30:00Z")},
			},
			Attachments: []domain.Attachment{
				{ID: "att_02", Type: domain.AttachmentDocument, Name: "invoice.pdf", URL: "/docs/invoice.pdf"},
			},
			Note: "บัญชีปลายทางไม่ถูกต้อง",
		},
		{
			ID:            "WD_005",
			UserName:      "Kittipong",
			AccountNumber: "111-222-3333",
			Bank:          domain.BankTMB,
			Amount:        8500,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusCanceled,
			CreatedAt:     ts("2025-11-15T10:20:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-15T10:20:00Z")},
				{Status: domain.StatusCanceled, At: ts("2025-11-15T11:00:00Z")},
			},
			Attachments: []domain.Attachment{},
			Note:        "ผู้ใช้ยกเลิกคำขอ",
		},
		{
			ID:            "WD_006",
			UserName:      "Pranee",
			AccountNumber: "444-555-6666",
			Bank:          domain.BankBAY,
			Amount:        3200,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusPending,
			CreatedAt:     ts("2025-11-27T08:30:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-27T08:30:00Z")},
			},
			Attachments: []domain.Attachment{
				{ID: "att_03", Type: domain.AttachmentImage, Name: "receipt.png", URL: "/images/receipt-placeholder.png"},
			},
			Note: "คืนเงินค่าสินค้า",
		},
		{
			ID:            "WD_007",
			UserName:      "Thanapon",
			AccountNumber: "777-888-9999",
			Bank:          domain.BankGSB,
			Amount:        45000,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusProcessing,
			CreatedAt:     ts("2025-11-26T14:00:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-26T14:00:00Z")},
				{Status: domain.StatusProcessing, At: ts("2025-11-26T15:30:00Z")},
			},
			Attachments: []domain.Attachment{
				{ID: "att_04", Type: domain.AttachmentVideo, Name: "proof.mp4", URL: "/videos/proof.mp4"},
				{ID: "att_05", Type: domain.AttachmentImage, Name: "id-card.jpg", URL: "/images/id-placeholder.jpg"},
			},
			Note: "โอนเงินเดือนพนักงาน",
		},
		{
			ID:            "WD_008",
			UserName:      "Siriporn",
			AccountNumber: "333-444-5555",
			Bank:          domain.BankKBANK,
			Amount:        7800,
			Currency:      domain.DefaultCurrency,
			Status:        domain.StatusCompleted,
			CreatedAt:     ts("2025-11-22T09:15:00Z"),
			History: []domain.StatusHistoryEntry{
				{Status: domain.StatusPending, At: ts("2025-11-22T09:15:00Z")},
				{Status: domain.StatusProcessing, At: ts("2025-11-22T10:00:00Z")},
				{Status: domain.StatusCompleted, At: ts("2025-11-22T14:00:00Z")},
			},
			Attachments: []domain.Attachment{},
			Note:        "เบิกค่าใช้จ่ายเดินทาง",
		},
	}
}
