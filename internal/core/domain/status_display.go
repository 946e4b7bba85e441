package domain

// StatusDisplay holds presentation metadata for one withdrawal status.
type StatusDisplay struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// StatusConfig maps every withdrawal status to its display metadata.
// The key set must stay in exact bijection with the status enumeration.
var StatusConfig = map[WithdrawalStatus]StatusDisplay{
	StatusPending:    {Label: "รอดำเนินการ", Color: "#F59E0B", BgColor: "rgba(245, 158, 11, 0.15)"},
	StatusProcessing: {Label: "กำลังดำเนินการ", Color: "#3B82F6", BgColor: "rgba(59, 130, 246, 0.15)"},
	StatusCompleted:  {Label: "สำเร็จ", Color: "#10B981", BgColor: "rgba(16, 185, 129, 0.15)"},
	StatusFailed:     {Label: "ล้มเหลว", Color: "#EF4444", BgColor: "rgba(239, 68, 68, 0.15)"},
	StatusCanceled:   {Label: "ยกเลิก", Color: "#6B7280", BgColor: "rgba(107, 114, 128, 0.15)"},
}
