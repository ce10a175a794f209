package xmlgen

import (
	"strconv"

	"github.com/ysakura/shuushi/internal/model"
)

// Form codes of the two sheets every submission carries.
const (
	FormProfile FormCode = "SYUUSHI07_01"
	FormSummary FormCode = "SYUUSHI07_02"
)

// ProfileElement serializes the organization identity sheet.
func ProfileElement(p *model.Profile) Element {
	return Nested(string(FormProfile), Nested("SHEET",
		Text("DANTAI_NAME", p.Name),
		Text("DANTAI_KANA", p.NameKana),
		Text("JUUSHO", p.Address),
		Text("DAIHYOU_NAME", p.RepresentativeName),
		Text("KAIKEI_NAME", p.TreasurerName),
		Text("TANTOU_NAME", p.ContactName),
		Text("TEL", p.ContactPhone),
		Text("NEN", strconv.Itoa(p.FinancialYear)),
	))
}

// SummaryElement serializes the totals-and-carryover sheet. Donor categories
// this system does not handle are nil in SummaryData and render as empty
// elements: "not applicable" on the wire, distinct from a literal zero.
func SummaryElement(s *model.SummaryData) Element {
	return Nested(string(FormSummary), Nested("SHEET",
		Text("KOJIN_KIFU", formatAmount(s.PersonalDonations)),
		Text("TOKUTEI_KIFU", nullableAmount(s.SpecificDonations)),
		Text("HOUJIN_KIFU", nullableAmount(s.CorporateDonations)),
		Text("SEIJI_DANTAI_KIFU", nullableAmount(s.PoliticalOrgDonations)),
		Text("KIFU_SHOUKEI", formatAmount(s.DonationSubtotal)),
		Text("ASSEN_KIFU", nullableAmount(s.BrokeredDonations)),
		Text("PARTY_TOKUMEI", nullableAmount(s.AnonymousParty)),
		Text("KIFU_GOUKEI", formatAmount(s.DonationTotal)),

		Text("JIGYOU_SHUUNYUU", formatAmount(s.BusinessIncome)),
		Text("KARIIRE", formatAmount(s.LoanIncome)),
		Text("HONBU_SHIBU_KOUFU", formatAmount(s.BranchGrantIncome)),
		Text("SONOTA_SHUUNYUU", formatAmount(s.OtherIncome)),

		Text("ZENNEN_KURIKOSHI", formatAmount(s.PriorYearCarryover)),
		Text("HONNEN_SHUUNYUU", formatAmount(s.CurrentYearIncome)),
		Text("SHUUNYUU_GOUKEI", formatAmount(s.TotalIncome)),

		Text("JINKENHI", formatAmount(s.Personnel)),
		Text("KOUNETSUHI", formatAmount(s.Utility)),
		Text("BIHIN_SHOUMOUHI", formatAmount(s.Supplies)),
		Text("JIMUSHOHI", formatAmount(s.Office)),
		Text("KEIJOUHI_GOUKEI", formatAmount(s.RegularExpenseTotal)),

		Text("SOSHIKI_KATSUDOUHI", formatAmount(s.Organization)),
		Text("SENKYO_KANKEIHI", formatAmount(s.Election)),
		Text("KIKANSHI_HAKKOUHI", formatAmount(s.Publication)),
		Text("SENDEN_JIGYOUHI", formatAmount(s.Advertising)),
		Text("PARTY_KAISAIHI", formatAmount(s.Party)),
		Text("SONOTA_JIGYOUHI", formatAmount(s.OtherBusiness)),
		Text("CHOUSA_KENKYUUHI", formatAmount(s.Research)),
		Text("KIFU_KOUFUKIN", formatAmount(s.DonationGrant)),
		Text("SONOTA_KEIHI", formatAmount(s.OtherPolitic)),
		Text("SEIJI_KATSUDOUHI_GOUKEI", formatAmount(s.PoliticalActivityTotal)),

		Text("SHIBU_KOUFUKIN", formatAmount(s.BranchGrantExpense)),
		Text("SHISHUTSU_GOUKEI", formatAmount(s.TotalExpense)),
		Text("YOKUNEN_KURIKOSHI", formatAmount(s.NextYearCarryover)),
	))
}

func nullableAmount(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
