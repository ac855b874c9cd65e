package wordml

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Namespace declarations carried on generated document roots.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsW14 = "http://schemas.microsoft.com/office/word/2010/wordml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// newParaID allocates a random 8-digit paragraph id in the w14 convention.
func newParaID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:4]))
}

// GenerateParagraph builds the w:p element for one paragraph.
func GenerateParagraph(p *Paragraph) *Node {
	para := Element("w:p").WithAttr("w14:paraId", newParaID())

	pPr := Element("w:pPr")
	if p.StyleID != "" {
		pPr.Children = append(pPr.Children, Element("w:pStyle").WithAttr("w:val", p.StyleID))
	}
	if p.Numbering != nil {
		numPr := Element("w:numPr",
			Element("w:ilvl").WithAttr("w:val", strconv.Itoa(p.Numbering.Level)),
			Element("w:numId").WithAttr("w:val", p.Numbering.NumID),
		)
		pPr.Children = append(pPr.Children, numPr)
	}
	if p.SpacingBefore != 0 || p.SpacingAfter != 0 {
		spacing := Element("w:spacing")
		if p.SpacingBefore != 0 {
			spacing.WithAttr("w:before", strconv.Itoa(p.SpacingBefore))
		}
		if p.SpacingAfter != 0 {
			spacing.WithAttr("w:after", strconv.Itoa(p.SpacingAfter))
		}
		pPr.Children = append(pPr.Children, spacing)
	}
	if p.IndentLeft != 0 || p.IndentRight != 0 || p.IndentFirst != 0 {
		ind := Element("w:ind")
		if p.IndentLeft != 0 {
			ind.WithAttr("w:left", strconv.Itoa(p.IndentLeft))
		}
		if p.IndentRight != 0 {
			ind.WithAttr("w:right", strconv.Itoa(p.IndentRight))
		}
		if p.IndentFirst != 0 {
			ind.WithAttr("w:firstLine", strconv.Itoa(p.IndentFirst))
		}
		pPr.Children = append(pPr.Children, ind)
	}
	if p.Alignment != "" {
		pPr.Children = append(pPr.Children, Element("w:jc").WithAttr("w:val", jcValue(p.Alignment)))
	}
	if len(pPr.Children) > 0 {
		para.Children = append(para.Children, pPr)
	}

	for i, b := range p.Bookmarks {
		id := b.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		para.Children = append(para.Children,
			Element("w:bookmarkStart").WithAttr("w:id", id).WithAttr("w:name", b.Name))
	}

	for _, r := range p.Runs {
		if r.Text == "" && len(p.Runs) > 1 {
			continue
		}
		para.Children = append(para.Children, generateRun(r))
	}

	for i, b := range p.Bookmarks {
		id := b.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		para.Children = append(para.Children, Element("w:bookmarkEnd").WithAttr("w:id", id))
	}
	return para
}

// jcValue maps the canonical alignment back to its native spelling.
func jcValue(alignment string) string {
	if alignment == "justify" {
		return "both"
	}
	return alignment
}

func generateRun(r Run) *Node {
	run := Element("w:r")
	if rPr := generateRunProps(r.Style); rPr != nil {
		run.Children = append(run.Children, rPr)
	}

	// Tabs and line breaks are elements of their own inside the run.
	rest := r.Text
	for rest != "" {
		idx := strings.IndexAny(rest, "\t\n")
		if idx < 0 {
			run.Children = append(run.Children, textElement(rest))
			break
		}
		if idx > 0 {
			run.Children = append(run.Children, textElement(rest[:idx]))
		}
		if rest[idx] == '\t' {
			run.Children = append(run.Children, Element("w:tab"))
		} else {
			run.Children = append(run.Children, Element("w:br"))
		}
		rest = rest[idx+1:]
	}
	return run
}

func textElement(text string) *Node {
	t := Element("w:t", TextNode(text))
	if strings.TrimSpace(text) != text {
		t.WithAttr("xml:space", "preserve")
	}
	return t
}

func generateRunProps(rs RunStyle) *Node {
	rPr := Element("w:rPr")
	if rs.Font != "" {
		rPr.Children = append(rPr.Children,
			Element("w:rFonts").WithAttr("w:ascii", rs.Font).WithAttr("w:hAnsi", rs.Font))
	}
	appendToggle(rPr, "w:b", rs.Bold)
	appendToggle(rPr, "w:i", rs.Italic)
	if rs.Underline != nil {
		val := "single"
		if !*rs.Underline {
			val = "none"
		}
		rPr.Children = append(rPr.Children, Element("w:u").WithAttr("w:val", val))
	}
	appendToggle(rPr, "w:strike", rs.Strike)
	if rs.Color != "" {
		rPr.Children = append(rPr.Children, Element("w:color").WithAttr("w:val", rs.Color))
	}
	if rs.Size != 0 {
		half := strconv.Itoa(int(rs.Size * 2))
		rPr.Children = append(rPr.Children, Element("w:sz").WithAttr("w:val", half))
		rPr.Children = append(rPr.Children, Element("w:szCs").WithAttr("w:val", half))
	}
	if rs.Highlight != "" {
		rPr.Children = append(rPr.Children, Element("w:highlight").WithAttr("w:val", rs.Highlight))
	}
	if rs.VertAlign != "" {
		rPr.Children = append(rPr.Children, Element("w:vertAlign").WithAttr("w:val", rs.VertAlign))
	}
	if len(rPr.Children) == 0 {
		return nil
	}
	return rPr
}

func appendToggle(rPr *Node, tag string, val *bool) {
	if val == nil {
		return
	}
	el := Element(tag)
	if !*val {
		el.WithAttr("w:val", "0")
	}
	rPr.Children = append(rPr.Children, el)
}

// GenerateTable builds the w:tbl element for one table, reconstructing
// horizontal spans and vertical merges from the cell-style grid.
func GenerateTable(t *Table) *Node {
	tbl := Element("w:tbl")

	tblPr := Element("w:tblPr")
	if t.StyleID != "" {
		tblPr.Children = append(tblPr.Children, Element("w:tblStyle").WithAttr("w:val", t.StyleID))
	}
	tblPr.Children = append(tblPr.Children,
		Element("w:tblW").WithAttr("w:w", "0").WithAttr("w:type", "auto"))
	if t.Layout != "" {
		tblPr.Children = append(tblPr.Children, Element("w:tblLayout").WithAttr("w:type", t.Layout))
	}
	if borders := generateBorders("w:tblBorders", t.Borders); borders != nil {
		tblPr.Children = append(tblPr.Children, borders)
	}
	tbl.Children = append(tbl.Children, tblPr)

	cols := columnCountOf(t)
	grid := Element("w:tblGrid")
	for i := 0; i < cols; i++ {
		col := Element("w:gridCol")
		if i < len(t.ColumnWidths) && t.ColumnWidths[i] != 0 {
			col.WithAttr("w:w", strconv.Itoa(t.ColumnWidths[i]))
		}
		grid.Children = append(grid.Children, col)
	}
	tbl.Children = append(tbl.Children, grid)

	for r := range t.Data {
		tbl.Children = append(tbl.Children, generateRow(t, r, cols))
	}
	return tbl
}

func columnCountOf(t *Table) int {
	if len(t.ColumnWidths) > 0 {
		return len(t.ColumnWidths)
	}
	max := 0
	for _, row := range t.Data {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

func generateRow(t *Table, r, cols int) *Node {
	tr := Element("w:tr")
	c := 0
	for c < cols {
		if r >= len(t.Cells) || c >= len(t.Cells[r]) {
			tr.Children = append(tr.Children, emptyCell())
			c++
			continue
		}
		cs := t.Cells[r][c]
		if !cs.Skip {
			tr.Children = append(tr.Children, generateCell(t, r, c, cs))
			c += spanOf(cs)
			continue
		}
		// A skipped position is either a vertical continuation under an
		// owner above, a horizontal-span member (no cell at all, handled
		// by the owner's span), or structural padding.
		if owner := verticalOwner(t, r, c); owner != nil {
			tr.Children = append(tr.Children, continuationCell(*owner))
			c += spanOf(*owner)
			continue
		}
		tr.Children = append(tr.Children, emptyCell())
		c++
	}
	return tr
}

func spanOf(cs CellStyle) int {
	if cs.GridSpan > 1 {
		return cs.GridSpan
	}
	return 1
}

// verticalOwner finds the owning top cell whose row span covers position
// (r, c), if any.
func verticalOwner(t *Table, r, c int) *CellStyle {
	for rr := r - 1; rr >= 0; rr-- {
		if c >= len(t.Cells[rr]) {
			return nil
		}
		cs := t.Cells[rr][c]
		if cs.Skip {
			continue
		}
		if cs.RowSpan > r-rr {
			return &t.Cells[rr][c]
		}
		return nil
	}
	return nil
}

func generateCell(t *Table, r, c int, cs CellStyle) *Node {
	tc := Element("w:tc")
	tcPr := Element("w:tcPr")
	if cs.GridSpan > 1 {
		tcPr.Children = append(tcPr.Children,
			Element("w:gridSpan").WithAttr("w:val", strconv.Itoa(cs.GridSpan)))
	}
	if cs.RowSpan > 1 {
		tcPr.Children = append(tcPr.Children, Element("w:vMerge").WithAttr("w:val", "restart"))
	}
	if cs.Fill != "" {
		tcPr.Children = append(tcPr.Children,
			Element("w:shd").WithAttr("w:val", "clear").WithAttr("w:color", "auto").WithAttr("w:fill", cs.Fill))
	}
	if borders := generateBorders("w:tcBorders", cs.Borders); borders != nil {
		tcPr.Children = append(tcPr.Children, borders)
	}
	if cs.VertAlign != "" {
		tcPr.Children = append(tcPr.Children, Element("w:vAlign").WithAttr("w:val", cs.VertAlign))
	}
	tc.Children = append(tc.Children, tcPr)

	text := ""
	if r < len(t.Data) && c < len(t.Data[r]) {
		text = t.Data[r][c]
	}
	para := &Paragraph{Text: text, Runs: []Run{{Text: text, Style: cellRunStyle(cs)}}}
	tc.Children = append(tc.Children, GenerateParagraph(para))
	return tc
}

func cellRunStyle(cs CellStyle) RunStyle {
	return RunStyle{
		Bold:   cs.Bold,
		Italic: cs.Italic,
		Font:   cs.Font,
		Size:   cs.Size,
		Color:  cs.Color,
	}
}

func continuationCell(owner CellStyle) *Node {
	tc := Element("w:tc")
	tcPr := Element("w:tcPr")
	if owner.GridSpan > 1 {
		tcPr.Children = append(tcPr.Children,
			Element("w:gridSpan").WithAttr("w:val", strconv.Itoa(owner.GridSpan)))
	}
	tcPr.Children = append(tcPr.Children, Element("w:vMerge"))
	if owner.Fill != "" {
		tcPr.Children = append(tcPr.Children,
			Element("w:shd").WithAttr("w:val", "clear").WithAttr("w:color", "auto").WithAttr("w:fill", owner.Fill))
	}
	tc.Children = append(tc.Children, tcPr)
	tc.Children = append(tc.Children, Element("w:p"))
	return tc
}

func emptyCell() *Node {
	return Element("w:tc", Element("w:tcPr"), Element("w:p"))
}

func generateBorders(tag string, b TableBorders) *Node {
	if b.Empty() {
		return nil
	}
	node := Element(tag)
	appendEdge(node, "w:top", b.Top)
	appendEdge(node, "w:left", b.Left)
	appendEdge(node, "w:bottom", b.Bottom)
	appendEdge(node, "w:right", b.Right)
	appendEdge(node, "w:insideH", b.InsideH)
	appendEdge(node, "w:insideV", b.InsideV)
	return node
}

func appendEdge(node *Node, tag string, e *BorderEdge) {
	if e == nil {
		return
	}
	edge := Element(tag).WithAttr("w:val", e.Style)
	if e.Size != 0 {
		edge.WithAttr("w:sz", strconv.Itoa(e.Size))
	}
	if e.Color != "" {
		edge.WithAttr("w:color", e.Color)
	} else {
		edge.WithAttr("w:color", "auto")
	}
	node.Children = append(node.Children, edge)
}

// GenerateSection builds a w:sectPr element. A nil input produces the
// conventional US Letter defaults so generated documents always carry page
// metadata.
func GenerateSection(sp *SectionProperties) *Node {
	sect := Element("w:sectPr")
	if sp == nil {
		sp = &SectionProperties{
			PageWidth: 12240, PageHeight: 15840,
			MarginTop: 1440, MarginRight: 1440, MarginBottom: 1440, MarginLeft: 1440,
			MarginHeader: 720, MarginFooter: 720,
		}
	}
	if sp.PageWidth != 0 || sp.PageHeight != 0 {
		pgSz := Element("w:pgSz").
			WithAttr("w:w", strconv.Itoa(sp.PageWidth)).
			WithAttr("w:h", strconv.Itoa(sp.PageHeight))
		if sp.Orientation == "landscape" {
			pgSz.WithAttr("w:orient", "landscape")
		}
		sect.Children = append(sect.Children, pgSz)
	}
	pgMar := Element("w:pgMar").
		WithAttr("w:top", strconv.Itoa(sp.MarginTop)).
		WithAttr("w:right", strconv.Itoa(sp.MarginRight)).
		WithAttr("w:bottom", strconv.Itoa(sp.MarginBottom)).
		WithAttr("w:left", strconv.Itoa(sp.MarginLeft)).
		WithAttr("w:header", strconv.Itoa(sp.MarginHeader)).
		WithAttr("w:footer", strconv.Itoa(sp.MarginFooter))
	sect.Children = append(sect.Children, pgMar)
	if sp.Columns > 1 {
		cols := Element("w:cols").WithAttr("w:num", strconv.Itoa(sp.Columns))
		if sp.ColumnSpacing != 0 {
			cols.WithAttr("w:space", strconv.Itoa(sp.ColumnSpacing))
		}
		sect.Children = append(sect.Children, cols)
	}
	return sect
}

// GenerateDocumentXML synthesizes a complete document part for the given
// blocks. The trailing section properties come from the last block that
// carries any, else the defaults.
func GenerateDocumentXML(doc *Document) []byte {
	root := Element("w:document").
		WithAttr("xmlns:w", nsW).
		WithAttr("xmlns:r", nsR).
		WithAttr("xmlns:w14", nsW14)
	body := Element("w:body")

	var lastSect *SectionProperties
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case *Paragraph:
			body.Children = append(body.Children, GenerateParagraph(b))
		case *Table:
			body.Children = append(body.Children, GenerateTable(b))
		}
		if sp := block.SectionProps(); sp != nil {
			lastSect = sp
		}
	}
	body.Children = append(body.Children, GenerateSection(lastSect))
	root.Children = append(root.Children, body)

	return []byte(xmlHeader + root.XML())
}

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`</Relationships>`

// WritePackage assembles a minimal, openable package around a generated
// document part.
func WritePackage(doc *Document) ([]byte, error) {
	return WriteArchive([]ArchiveEntry{
		{EntryContentTypes, []byte(contentTypesXML)},
		{EntryPackageRels, []byte(packageRelsXML)},
		{EntryRelationships, []byte(documentRelsXML)},
		{EntryDocument, GenerateDocumentXML(doc)},
	})
}
