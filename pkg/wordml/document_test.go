package wordml

import (
	"strings"
	"testing"
)

func TestParseEmptyInputs(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if len(doc.Blocks) != 0 {
		t.Errorf("empty buffer should parse to an empty document")
	}

	// A package without a document part is an empty parse, not an error.
	pkg, err := WriteArchive([]ArchiveEntry{{EntryContentTypes, []byte(contentTypesXML)}})
	if err != nil {
		t.Fatal(err)
	}
	doc, err = Parse(pkg)
	if err != nil {
		t.Fatalf("Parse without body entry: %v", err)
	}
	if len(doc.Blocks) != 0 {
		t.Errorf("missing body entry should parse to an empty document")
	}

	// A buffer that is not a zip archive breaks the collaborator contract.
	if _, err := Parse([]byte("not a zip")); err == nil {
		t.Error("garbage buffer should error")
	}
}

func TestSectionPropertiesApplyBackward(t *testing.T) {
	// Two sections: the first ends at the paragraph carrying an embedded
	// sectPr with a left margin of 900, the second is the trailing body
	// sectPr with 1440.
	body := `
		<w:p><w:r><w:t>first</w:t></w:r></w:p>
		<w:p>
			<w:pPr><w:sectPr><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="900" w:header="708" w:footer="708"/></w:sectPr></w:pPr>
			<w:r><w:t>last of section one</w:t></w:r>
		</w:p>
		<w:p><w:r><w:t>second section</w:t></w:r></w:p>
		<w:sectPr><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708"/></w:sectPr>`
	doc := parseBody(t, body)
	if len(doc.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3 (sectPr emits nothing)", len(doc.Blocks))
	}
	for i, wantLeft := range []int{900, 900, 1440} {
		sp := doc.Blocks[i].SectionProps()
		if sp == nil {
			t.Fatalf("block %d has no section", i)
		}
		if sp.MarginLeft != wantLeft {
			t.Errorf("block %d left margin = %d, want %d", i, sp.MarginLeft, wantLeft)
		}
	}
}

func TestUnrecognizedElementPlaceholder(t *testing.T) {
	body := `<w:p><w:r><w:t>a</w:t></w:r></w:p><w:sdt><w:sdtContent/></w:sdt><w:p><w:r><w:t>b</w:t></w:r></w:p>`
	doc := parseBody(t, body)
	if len(doc.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3 (placeholder keeps the count)", len(doc.Blocks))
	}
	ph, ok := doc.Blocks[1].(*Paragraph)
	if !ok || !ph.Placeholder {
		t.Fatalf("middle block = %+v, want a placeholder paragraph", doc.Blocks[1])
	}
	if !strings.Contains(ph.Text, "sdt") {
		t.Errorf("placeholder text %q should name the tag", ph.Text)
	}
	if ph.Runs[0].Style.Italic == nil || !*ph.Runs[0].Style.Italic {
		t.Error("placeholder should be italic")
	}
	if ph.Runs[0].Style.Color == "" {
		t.Error("placeholder should carry a distinct color")
	}
}

func TestBodyLevelBookmarksIgnored(t *testing.T) {
	body := `<w:bookmarkStart w:id="0" w:name="top"/><w:p><w:r><w:t>x</w:t></w:r></w:p><w:bookmarkEnd w:id="0"/>`
	doc := parseBody(t, body)
	if len(doc.Blocks) != 1 {
		t.Errorf("blocks = %d, want 1 (bookmark stragglers ignored)", len(doc.Blocks))
	}
}

func TestDocumentOrderRestored(t *testing.T) {
	body := `<w:p><w:r><w:t>one</w:t></w:r></w:p><w:p><w:r><w:t>two</w:t></w:r></w:p><w:p><w:r><w:t>three</w:t></w:r></w:p>`
	doc := parseBody(t, body)
	var got []string
	for _, b := range doc.Blocks {
		got = append(got, b.(*Paragraph).Text)
	}
	want := []string{"one", "two", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestParseFullPackage(t *testing.T) {
	styles := `<w:styles ` + wNamespaces + `>
		<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
	</w:styles>`
	body := `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>
		<w:p><w:r><w:t>Body text.</w:t></w:r></w:p>`
	pkg := buildDocx(t, body, ArchiveEntry{EntryStyles, []byte(styles)})

	doc, err := Parse(pkg)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(doc.Blocks))
	}
	title := doc.Blocks[0].(*Paragraph)
	if title.HeadingLevel != 1 {
		t.Errorf("heading level = %d, want 1", title.HeadingLevel)
	}
	if title.Uniform.Bold == nil || !*title.Uniform.Bold || title.Uniform.Size != 16 {
		t.Errorf("title formatting = %+v", title.Uniform)
	}
}

func TestMarshalJSONShape(t *testing.T) {
	doc := parseBody(t, `<w:p><w:r><w:t>x</w:t></w:r></w:p><w:tbl><w:tblGrid><w:gridCol/></w:tblGrid><w:tr><w:tc><w:p><w:r><w:t>c</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`)
	data, err := MarshalJSON(doc)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"isTable":false`) || !strings.Contains(s, `"isTable":true`) {
		t.Errorf("JSON %s should discriminate blocks by isTable", s)
	}
}
