package model

// Profile carries the organization identity block that heads the report.
// It is fetched once per export and treated as read-only.
type Profile struct {
	OrganizationID     string
	FinancialYear      int
	Name               string
	NameKana           string
	Address            string
	RepresentativeName string
	TreasurerName      string
	ContactName        string
	ContactPhone       string
}
