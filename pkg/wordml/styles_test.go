package wordml

import "testing"

func styleTableFrom(t *testing.T, stylesXML string) *StyleTable {
	t.Helper()
	root, err := ParseXML([]byte(stylesXML))
	if err != nil {
		t.Fatalf("parsing styles: %v", err)
	}
	return newStyleTable(root)
}

func TestResolveRunThroughChain(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:style w:type="paragraph" w:styleId="Base">
			<w:rPr><w:b/><w:sz w:val="20"/><w:color w:val="FF0000"/></w:rPr>
		</w:style>
		<w:style w:type="paragraph" w:styleId="Child">
			<w:basedOn w:val="Base"/>
			<w:rPr><w:sz w:val="28"/></w:rPr>
		</w:style>
	</w:styles>`)

	rs := table.ResolveRun("Child")
	if rs.Bold == nil || !*rs.Bold {
		t.Error("bold should inherit from Base")
	}
	if rs.Size != 14 {
		t.Errorf("size = %v, want 14 (child value wins)", rs.Size)
	}
	if rs.Color != "FF0000" {
		t.Errorf("color = %q, want FF0000", rs.Color)
	}
}

func TestResolveRunUnknownStyle(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`></w:styles>`)
	if rs := table.ResolveRun("Nope"); rs != (RunStyle{}) {
		t.Errorf("unknown style resolved to %+v, want zero", rs)
	}
	if rs := table.ResolveRun(""); rs != (RunStyle{}) {
		t.Errorf("empty id resolved to %+v, want zero", rs)
	}
}

func TestResolveRunSelfCycle(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:style w:type="paragraph" w:styleId="Loop">
			<w:basedOn w:val="Loop"/>
			<w:rPr><w:i/></w:rPr>
		</w:style>
	</w:styles>`)

	rs := table.ResolveRun("Loop")
	if rs.Italic == nil || !*rs.Italic {
		t.Error("own properties should survive a self-referential basedOn")
	}
	if rs.Bold != nil {
		t.Error("a cycle must not invent inherited properties")
	}
}

func TestResolveRunLongerCycle(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:style w:type="paragraph" w:styleId="A">
			<w:basedOn w:val="B"/>
			<w:rPr><w:b/></w:rPr>
		</w:style>
		<w:style w:type="paragraph" w:styleId="B">
			<w:basedOn w:val="A"/>
			<w:rPr><w:i/></w:rPr>
		</w:style>
	</w:styles>`)

	rs := table.ResolveRun("A")
	if rs.Bold == nil || !*rs.Bold {
		t.Error("A's own bold lost")
	}
	if rs.Italic == nil || !*rs.Italic {
		t.Error("A should inherit italic from B before the cycle truncates")
	}
}

func TestResolveRunDanglingBasedOn(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:style w:type="paragraph" w:styleId="Orphan">
			<w:basedOn w:val="Gone"/>
			<w:rPr><w:b/></w:rPr>
		</w:style>
	</w:styles>`)

	rs := table.ResolveRun("Orphan")
	if rs.Bold == nil || !*rs.Bold {
		t.Error("dangling basedOn should still keep own properties")
	}
}

func TestResolveParaChain(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:style w:type="paragraph" w:styleId="Base">
			<w:pPr><w:jc w:val="center"/><w:spacing w:before="120"/></w:pPr>
		</w:style>
		<w:style w:type="paragraph" w:styleId="Child">
			<w:basedOn w:val="Base"/>
			<w:pPr><w:spacing w:before="240"/></w:pPr>
		</w:style>
	</w:styles>`)

	pp := table.ResolvePara("Child")
	if pp.align != "center" {
		t.Errorf("align = %q, want center (inherited)", pp.align)
	}
	if pp.spacingBefore == nil || *pp.spacingBefore != 240 {
		t.Error("spacingBefore should be the child's 240")
	}
}

func TestDocDefaults(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:docDefaults>
			<w:rPrDefault><w:rPr><w:sz w:val="22"/><w:rFonts w:ascii="Calibri"/></w:rPr></w:rPrDefault>
		</w:docDefaults>
	</w:styles>`)

	rs := table.DefaultRun()
	if rs.Size != 11 {
		t.Errorf("default size = %v, want 11", rs.Size)
	}
	if rs.Font != "Calibri" {
		t.Errorf("default font = %q, want Calibri", rs.Font)
	}
}

func TestStyleHeadingLevel(t *testing.T) {
	table := styleTableFrom(t, `<w:styles `+wNamespaces+`>
		<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
		<w:style w:type="paragraph" w:styleId="Berschrift3"><w:name w:val="heading 3"/></w:style>
		<w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
	</w:styles>`)

	if got := table.HeadingLevel("Heading2"); got != 2 {
		t.Errorf("Heading2 level = %d, want 2", got)
	}
	if got := table.HeadingLevel("Berschrift3"); got != 3 {
		t.Errorf("localized heading level = %d, want 3 (via display name)", got)
	}
	if got := table.HeadingLevel("Normal"); got != 0 {
		t.Errorf("Normal level = %d, want 0", got)
	}
	if got := table.HeadingLevel("Unknown"); got != 0 {
		t.Errorf("unknown style level = %d, want 0", got)
	}
}

func TestParseRunPropsComplexScriptFallback(t *testing.T) {
	root, err := ParseXML([]byte(`<w:rPr ` + wNamespaces + `><w:szCs w:val="32"/></w:rPr>`))
	if err != nil {
		t.Fatal(err)
	}
	if rs := parseRunProps(root); rs.Size != 16 {
		t.Errorf("size = %v, want 16 from szCs fallback", rs.Size)
	}

	root, err = ParseXML([]byte(`<w:rPr ` + wNamespaces + `><w:sz w:val="20"/><w:szCs w:val="32"/></w:rPr>`))
	if err != nil {
		t.Fatal(err)
	}
	if rs := parseRunProps(root); rs.Size != 10 {
		t.Errorf("size = %v, want 10 (sz wins over szCs)", rs.Size)
	}
}
