package model

import "time"

// Row is one itemized line of a report section: the projection of a single
// transaction into the section's legally defined column set. Which columns a
// family actually serializes is decided by the XML layer; the aggregator
// fills the superset.
type Row struct {
	No           int    // 1-based, contiguous within its section
	Amount       int64  // rounded yen
	Date         time.Time
	PartyName    string // donor or payee, family-dependent
	PartyAddress string
	Occupation   string // personal donations only
	Purpose      string // expense families only
	Remarks      string
}

// Section is the aggregated result for one legal form (or one cost-item
// element of an array-valued family). UnderThreshold is nil when the
// threshold folded nothing; the XML layer renders nil as an empty element
// and a value as its decimal string, so nil and zero are not interchangeable.
type Section struct {
	ItemName       string // cost item (費目) label, array-valued families only
	TotalAmount    int64
	UnderThreshold *int64
	Rows           []Row
}

// ShouldOutput reports whether the legal sheet for this section must be
// emitted and flagged as present.
func (s *Section) ShouldOutput() bool {
	return s.TotalAmount > 0
}

// HasContent reports whether the section carries anything at all. Donation
// sheets key off this rather than the total, so a zero-amount donation row
// still forces the sheet out.
func (s *Section) HasContent() bool {
	return len(s.Rows) > 0 || s.TotalAmount > 0
}

// SectionList is one array-valued political-activity family: one element per
// cost item within the same legal form.
type SectionList []Section

// Total sums the family across all of its cost-item elements.
func (l SectionList) Total() int64 {
	var total int64
	for i := range l {
		total += l[i].TotalAmount
	}
	return total
}

// ShouldOutput reports whether any element of the family has content; one
// logical form can have N sheets, and the form is present if any sheet is.
func (l SectionList) ShouldOutput() bool {
	for i := range l {
		if l[i].ShouldOutput() {
			return true
		}
	}
	return false
}
