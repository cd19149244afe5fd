package models

// ImportRow is the flat, name-keyed representation of one spreadsheet line.
// Every reference dimension is a human-readable name and every amount is the
// raw cell text; the row only lives until resolution turns it into a
// StockUnit candidate.
type ImportRow struct {
	OrganizationName string `json:"organizationName"`
	BranchName       string `json:"branchName"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	CategoryName     string `json:"categoryName"`
	ModelName        string `json:"modelName"`
	DeviceName       string `json:"deviceName"`
	CapacityName     string `json:"capacityName"`
	ColorName        string `json:"colorName"`
	IMEINo           string `json:"imeiNo"`
	SrNo             string `json:"srNo"`
	TotalAmount      string `json:"totalAmount"`
	PaidToCustomer   string `json:"paidToCustomer"`
	RemainingAmount  string `json:"remainingAmount"`
	AccountName      string `json:"accountName"`
	PaymentAmount    string `json:"paymentAmount"`
}
