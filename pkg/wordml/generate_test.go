package wordml

import (
	"strings"
	"testing"
)

func TestAlignmentRoundTrip(t *testing.T) {
	para := &Paragraph{
		Text:      "justified",
		Runs:      []Run{{Text: "justified"}},
		Alignment: "justify",
	}
	doc := &Document{Blocks: []Block{para}}

	pkg, err := WritePackage(doc)
	if err != nil {
		t.Fatalf("WritePackage: %v", err)
	}
	reparsed, err := Parse(pkg)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := firstParagraph(t, reparsed)
	if got.Alignment != "justify" {
		t.Errorf("alignment after round trip = %q, want justify", got.Alignment)
	}
	if got.Text != "justified" {
		t.Errorf("text after round trip = %q", got.Text)
	}
}

func TestGenerateParagraphFormatting(t *testing.T) {
	bold := true
	para := &Paragraph{
		Text: "hello\tworld",
		Runs: []Run{{
			Text:  "hello\tworld",
			Style: RunStyle{Bold: &bold, Size: 14, Color: "FF0000", Font: "Arial"},
		}},
		StyleID: "Body",
	}
	xml := GenerateParagraph(para).XML()
	for _, want := range []string{
		`<w:pStyle w:val="Body"/>`,
		`<w:b/>`,
		`<w:sz w:val="28"/>`,
		`<w:color w:val="FF0000"/>`,
		`<w:rFonts w:ascii="Arial" w:hAnsi="Arial"/>`,
		`<w:tab/>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("generated paragraph missing %s:\n%s", want, xml)
		}
	}
}

func TestGenerateTextPreservesSpace(t *testing.T) {
	para := &Paragraph{Text: " padded ", Runs: []Run{{Text: " padded "}}}
	xml := GenerateParagraph(para).XML()
	if !strings.Contains(xml, `xml:space="preserve"`) {
		t.Errorf("leading/trailing space needs xml:space=preserve:\n%s", xml)
	}
}

func TestTableRoundTripWithMerges(t *testing.T) {
	bold := true
	table := &Table{
		IsTable: true,
		Data: [][]string{
			{"head", "", ""},
			{"a", "b", "c"},
			{"", "e", "f"},
		},
		Cells: [][]CellStyle{
			{
				{ColIndex: 0, GridSpan: 3, Fill: "808080", Bold: &bold},
				{ColIndex: 1, Skip: true},
				{ColIndex: 2, Skip: true},
			},
			{
				{ColIndex: 0, RowSpan: 2},
				{ColIndex: 1},
				{ColIndex: 2},
			},
			{
				{ColIndex: 0, Skip: true},
				{ColIndex: 1},
				{ColIndex: 2},
			},
		},
		ColumnWidths: []int{2000, 2000, 2000},
	}
	doc := &Document{Blocks: []Block{table}}

	pkg, err := WritePackage(doc)
	if err != nil {
		t.Fatalf("WritePackage: %v", err)
	}
	reparsed, err := Parse(pkg)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := firstTable(t, reparsed)

	if len(got.Data) != 3 || len(got.Data[0]) != 3 {
		t.Fatalf("grid = %dx%d, want 3x3", len(got.Data), len(got.Data[0]))
	}
	if got.Cells[0][0].GridSpan != 3 || got.Cells[0][0].Fill != "808080" {
		t.Errorf("header cell = %+v", got.Cells[0][0])
	}
	if !got.Cells[0][1].Skip || !got.Cells[0][2].Skip {
		t.Error("spanned header positions should be skip")
	}
	if got.Cells[1][0].RowSpan != 2 {
		t.Errorf("merge owner rowSpan = %d, want 2", got.Cells[1][0].RowSpan)
	}
	if !got.Cells[2][0].Skip {
		t.Error("merge continuation should be skip")
	}
	if got.Data[1][1] != "b" || got.Data[2][2] != "f" {
		t.Errorf("grid text = %v", got.Data)
	}
}

func TestGenerateSectionDefaults(t *testing.T) {
	xml := GenerateSection(nil).XML()
	if !strings.Contains(xml, `w:w="12240"`) || !strings.Contains(xml, `w:top="1440"`) {
		t.Errorf("default section = %s", xml)
	}
}

func TestGenerateSectionRoundTrip(t *testing.T) {
	sp := &SectionProperties{
		PageWidth: 16838, PageHeight: 11906, Orientation: "landscape",
		MarginTop: 1000, MarginRight: 1100, MarginBottom: 1200, MarginLeft: 1300,
		MarginHeader: 500, MarginFooter: 600,
		Columns: 2, ColumnSpacing: 425,
	}
	node, err := ParseXML([]byte(GenerateSection(sp).XML()))
	if err != nil {
		t.Fatal(err)
	}
	got := parseSection(node)
	if got == nil {
		t.Fatal("generated section not recognized")
	}
	if *got != *sp {
		t.Errorf("round trip = %+v, want %+v", got, sp)
	}
}

func TestWritePackageIsOpenable(t *testing.T) {
	doc := &Document{Blocks: []Block{
		&Paragraph{Text: "hello", Runs: []Run{{Text: "hello"}}},
	}}
	pkg, err := WritePackage(doc)
	if err != nil {
		t.Fatal(err)
	}
	names, err := ListEntries(pkg)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{
		EntryContentTypes:  false,
		EntryPackageRels:   false,
		EntryRelationships: false,
		EntryDocument:      false,
	}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("package missing entry %s", n)
		}
	}
}
