package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/summary"
	"github.com/ysakura/shuushi/internal/xmlgen"
)

func sampleReport() *model.ReportData {
	under := int64(45000)
	return &model.ReportData{
		Profile: model.Profile{
			OrganizationID:     "ORG001",
			FinancialYear:      2025,
			Name:               "未来政策研究会",
			RepresentativeName: "田中一郎",
			TreasurerName:      "鈴木次郎",
		},
		OtherIncome: model.Section{
			TotalAmount: 150000,
			Rows: []model.Row{
				{No: 1, Amount: 150000, PartyName: "株式会社テスト", Remarks: "元帳行番号:1"},
			},
		},
		Expenses: model.ExpenseBundle{
			Office: model.Section{TotalAmount: 45000, UnderThreshold: &under},
			Organization: model.SectionList{
				{ItemName: "大会費", TotalAmount: 100000},
				{ItemName: "交通費", TotalAmount: 50000},
			},
		},
	}
}

func TestReportExport(t *testing.T) {
	result, err := Report(sampleReport(), 123456)
	require.NoError(t, err)

	assert.Equal(t, "SYUUSHI07_ORG001_2025.xml", result.Filename)
	assert.NotEmpty(t, result.Bytes)

	// Profile and summary sheets always lead.
	profileIdx := strings.Index(result.Text, "<SYUUSHI07_01>")
	summaryIdx := strings.Index(result.Text, "<SYUUSHI07_02>")
	incomeIdx := strings.Index(result.Text, "<SYUUSHI07_09>")
	require.Positive(t, profileIdx)
	assert.Less(t, profileIdx, summaryIdx)
	assert.Less(t, summaryIdx, incomeIdx)

	// Sheets without content stay out of the document.
	assert.NotContains(t, result.Text, "<SYUUSHI07_06>")
	assert.NotContains(t, result.Text, "<SYUUSHI07_03>")

	// Both cost-item sheets of the organization family are present.
	assert.Equal(t, 2, strings.Count(result.Text, "<SYUUSHI07_15_01>"))

	// Flag positions: 1, 2, other income (6), breakdown (21), office (24),
	// organization expenses (25).
	flagStart := strings.Index(result.Text, "<SYUUSHI_FLG>") + len("<SYUUSHI_FLG>")
	flag := result.Text[flagStart : flagStart+51]
	assert.Equal(t, "110001000000000000001001100000000000000000000000000", flag)
}

func TestReportExportSummaryContent(t *testing.T) {
	result, err := Report(sampleReport(), 123456)
	require.NoError(t, err)

	assert.Contains(t, result.Text, "<ZENNEN_KURIKOSHI>123456</ZENNEN_KURIKOSHI>")
	assert.Contains(t, result.Text, "<HONNEN_SHUUNYUU>150000</HONNEN_SHUUNYUU>")
	assert.Contains(t, result.Text, "<SHUUNYUU_GOUKEI>273456</SHUUNYUU_GOUKEI>")
	// office 45000 + organization 150000
	assert.Contains(t, result.Text, "<SHISHUTSU_GOUKEI>195000</SHISHUTSU_GOUKEI>")
	assert.Contains(t, result.Text, "<YOKUNEN_KURIKOSHI>78456</YOKUNEN_KURIKOSHI>")
	// Out-of-scope donor categories render empty, not zero.
	assert.Contains(t, result.Text, "<TOKUTEI_KIFU></TOKUTEI_KIFU>")
	assert.Contains(t, result.Text, "<ASSEN_KIFU></ASSEN_KIFU>")
}

func TestReportExportEmptyYear(t *testing.T) {
	r := &model.ReportData{
		Profile: model.Profile{OrganizationID: "ORG002", FinancialYear: 2025, Name: "x",
			RepresentativeName: "y", TreasurerName: "z"},
	}

	result, err := Report(r, 500000)
	require.NoError(t, err)

	flagStart := strings.Index(result.Text, "<SYUUSHI_FLG>") + len("<SYUUSHI_FLG>")
	assert.Equal(t, "11"+strings.Repeat("0", 49), result.Text[flagStart:flagStart+51])
	assert.Contains(t, result.Text, "<SHUUNYUU_GOUKEI>500000</SHUUNYUU_GOUKEI>")
	assert.Contains(t, result.Text, "<SHISHUTSU_GOUKEI>0</SHISHUTSU_GOUKEI>")
}

func TestReportExportRejectsUnencodableText(t *testing.T) {
	r := sampleReport()
	r.OtherIncome.Rows[0].PartyName = "Café 😀"

	_, err := Report(r, 0)
	require.Error(t, err)
}

func TestSectionExport(t *testing.T) {
	section := model.Section{
		TotalAmount: 150000,
		Rows:        []model.Row{{No: 1, Amount: 150000, PartyName: "株式会社テスト"}},
	}

	result, err := Section(&section, xmlgen.FormOtherIncome, xmlgen.LayoutIncome, "ORG001", 2025)
	require.NoError(t, err)

	assert.Equal(t, "SYUUSHI07_09_ORG001_2025.xml", result.Filename)
	assert.Contains(t, result.Text, "<SYUUSHI07_09>")

	flagStart := strings.Index(result.Text, "<SYUUSHI_FLG>") + len("<SYUUSHI_FLG>")
	flag := result.Text[flagStart : flagStart+51]
	assert.Equal(t, byte('1'), flag[0])
	assert.Equal(t, byte('1'), flag[1])
	assert.Equal(t, byte('1'), flag[5], "other income position")
	assert.Equal(t, 3, strings.Count(flag, "1"))
}

func TestBreakdownExportCarriesItemLabel(t *testing.T) {
	section := model.Section{
		TotalAmount: 150000,
		Rows:        []model.Row{{No: 1, Amount: 150000, PartyName: "東京電力"}},
	}

	result, err := Breakdown(&section, SheetUtility, "ORG001", 2025)
	require.NoError(t, err)

	assert.Equal(t, "SYUUSHI07_14_ORG001_2025.xml", result.Filename)
	assert.Contains(t, result.Text, "<KOUMOKU>光熱水費</KOUMOKU>")
	// The caller's section stays unlabeled.
	assert.Empty(t, section.ItemName)

	// Positions 1, 2, breakdown (21) and the utility sheet's own (22).
	flagStart := strings.Index(result.Text, "<SYUUSHI_FLG>") + len("<SYUUSHI_FLG>")
	flag := result.Text[flagStart : flagStart+51]
	assert.Equal(t, byte('1'), flag[20], "breakdown position")
	assert.Equal(t, byte('1'), flag[21], "utility position")
	assert.Equal(t, 4, strings.Count(flag, "1"))
}

func TestBreakdownExportLabelsPerSheet(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		sheet    BreakdownSheet
		position int // 0: the sheet has no flag position of its own
	}{
		{name: "personnel", sheet: SheetPersonnel, label: "人件費", position: 0},
		{name: "utility", sheet: SheetUtility, label: "光熱水費", position: 22},
		{name: "supplies", sheet: SheetSupplies, label: "備品・消耗品費", position: 23},
		{name: "office", sheet: SheetOffice, label: "事務所費", position: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := model.Section{TotalAmount: 200000,
				Rows: []model.Row{{No: 1, Amount: 200000, PartyName: "取引先"}}}

			result, err := Breakdown(&section, tt.sheet, "ORG001", 2025)
			require.NoError(t, err)

			assert.Contains(t, result.Text, "<KOUMOKU>"+tt.label+"</KOUMOKU>")

			flagStart := strings.Index(result.Text, "<SYUUSHI_FLG>") + len("<SYUUSHI_FLG>")
			flag := result.Text[flagStart : flagStart+51]
			assert.Equal(t, byte('1'), flag[20], "breakdown position")
			if tt.position > 0 {
				assert.Equal(t, byte('1'), flag[tt.position-1])
				assert.Equal(t, 4, strings.Count(flag, "1"))
			} else {
				assert.Equal(t, 3, strings.Count(flag, "1"))
			}
		})
	}
}

func TestFlagWidthSharedAcrossLayers(t *testing.T) {
	assert.Equal(t, xmlgen.FlagLength, summary.FlagLength)
	assert.Len(t, singleSheetFlag(), xmlgen.FlagLength)
}

func TestFilenamePattern(t *testing.T) {
	assert.Equal(t, "SYUUSHI07_15_03_ORG009_2024.xml",
		Filename(xmlgen.PoliticalActivityForm(3), "ORG009", 2024))
}
