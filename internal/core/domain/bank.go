package domain

// BankCode identifies the destination bank. The set is fixed.
type BankCode string

const (
	BankBBL   BankCode = "BBL"
	BankKBANK BankCode = "KBANK"
	BankSCB   BankCode = "SCB"
	BankKTB   BankCode = "KTB"
	BankTMB   BankCode = "TMB"
	BankBAY   BankCode = "BAY"
	BankGSB   BankCode = "GSB"
)

// BankOption pairs a bank code with its display label.
type BankOption struct {
	Value BankCode `json:"value"`
	Label string   `json:"label"`
}

// BankOptions is the fixed bank table presented by selection widgets.
var BankOptions = []BankOption{
	{Value: BankBBL, Label: "ธนาคารกรุงเทพ (BBL)"},
	{Value: BankKBANK, Label: "ธนาคารกสิกรไทย (KBANK)"},
	{Value: BankSCB, Label: "ธนาคารไทยพาณิชย์ (SCB)"},
	{Value: BankKTB, Label: "ธนาคารกรุงไทย (KTB)"},
	{Value: BankTMB, Label: "ธนาคารทหารไทยธนชาต (TTB)"},
	{Value: BankBAY, Label: "ธนาคารกรุงศรีอยุธยา (BAY)"},
	{Value: BankGSB, Label: "ธนาคารออมสิน (GSB)"},
}

// IsValidBank reports whether code is in the fixed bank table.
func IsValidBank(code BankCode) bool {
	for _, opt := range BankOptions {
		if opt.Value == code {
			return true
		}
	}
	return false
}
