package model

// SummaryData is the totals-and-carryover sheet derived from an assembled
// report plus the prior-year carryover balance. Pointer fields are donor
// categories this system does not handle: they stay nil ("not applicable")
// rather than zero, and the XML layer renders them as empty elements.
type SummaryData struct {
	PersonalDonations     int64
	SpecificDonations     *int64
	CorporateDonations    *int64
	PoliticalOrgDonations *int64
	DonationSubtotal      int64
	BrokeredDonations     *int64
	AnonymousParty        *int64
	DonationTotal         int64

	BusinessIncome    int64
	LoanIncome        int64
	BranchGrantIncome int64
	OtherIncome       int64

	PriorYearCarryover int64
	CurrentYearIncome  int64
	TotalIncome        int64

	Personnel           int64
	Utility             int64
	Supplies            int64
	Office              int64
	RegularExpenseTotal int64 // utility + supplies + office; personnel tracked apart

	// Political-activity family totals, each already reduced across the
	// family's cost-item elements, in legally numbered order.
	Organization  int64
	Election      int64
	Publication   int64
	Advertising   int64
	Party         int64
	OtherBusiness int64
	Research      int64
	DonationGrant int64
	OtherPolitic  int64

	PoliticalActivityTotal int64
	BranchGrantExpense     int64

	TotalExpense      int64
	NextYearCarryover int64
}
