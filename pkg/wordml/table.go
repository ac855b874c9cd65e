package wordml

import "strings"

// mergeKey identifies an open vertical merge by the column it starts in and
// the number of grid columns it spans.
type mergeKey struct {
	col  int
	span int
}

// openMerge tracks the owning top cell of a vertical merge so continuation
// rows can bump its row span and copy its style.
type openMerge struct {
	row int
	col int
}

// parseTable turns one w:tbl node into a rectangular grid. Every row of the
// result has exactly columnCount cells; merge-subsumed positions are present
// with Skip set.
func (p *parser) parseTable(node *Node) *Table {
	table := &Table{IsTable: true}

	tblPr := node.Child("tblPr")
	if tblPr != nil {
		if style := tblPr.Child("tblStyle"); style != nil {
			table.StyleID = style.Attr("val")
		}
		if layout := tblPr.Child("tblLayout"); layout != nil {
			table.Layout = layout.Attr("type")
		}
		table.Borders = parseBorders(tblPr.Child("tblBorders"))
	}

	if grid := node.Child("tblGrid"); grid != nil {
		for _, col := range grid.ChildrenByTag("gridCol") {
			table.ColumnWidths = append(table.ColumnWidths, parseTwips(col.Attr("w")))
		}
	}

	rows := node.ChildrenByTag("tr")
	colCount := len(table.ColumnWidths)
	if colCount == 0 {
		colCount = widestRow(rows)
	}
	if colCount == 0 || len(rows) == 0 {
		return table
	}

	open := make(map[mergeKey]openMerge)
	for rowIdx, tr := range rows {
		textRow := make([]string, colCount)
		styleRow := make([]CellStyle, colCount)
		for i := range styleRow {
			styleRow[i] = CellStyle{ColIndex: i, Skip: true}
		}

		cursor := 0
		for i := 0; i < rowGridBefore(tr) && cursor < colCount; i++ {
			cursor++ // leading empty columns stay occupied and skipped
		}

		for _, tc := range tr.ChildrenByTag("tc") {
			tcPr := tc.Child("tcPr")
			span := 1
			if tcPr != nil {
				if gs := tcPr.Child("gridSpan"); gs != nil {
					if v := parseIntAttr(gs.Attr("val")); v > 1 {
						span = v
					}
				}
			}
			vMerge := childOf(tcPr, "vMerge")
			if vMerge == nil {
				// A row may omit continuation cells under an open merge;
				// those columns stay occupied and skipped.
				for w := openSpanAt(open, cursor); w > 0; w = openSpanAt(open, cursor) {
					cursor += w
				}
			}
			if cursor+span > colCount {
				// Over-claimed row: remaining cells are dropped.
				break
			}

			key := mergeKey{col: cursor, span: span}
			switch {
			case vMerge != nil && vMerge.Attr("val") != "restart":
				// A vMerge without a val continues the merge above.
				if owner, ok := open[key]; ok {
					table.Cells[owner.row][owner.col].RowSpan++
					cont := table.Cells[owner.row][owner.col]
					cont.RowSpan = 0
					cont.ColIndex = cursor
					cont.Skip = true
					styleRow[cursor] = cont
				} else {
					// Orphan continue: no matching restart above.
					styleRow[cursor] = CellStyle{ColIndex: cursor, Skip: true}
				}
			case vMerge != nil:
				delete(open, key)
				open[key] = openMerge{row: rowIdx, col: cursor}
				cs := p.parseCell(tc, tcPr, cursor, span)
				cs.RowSpan = 1
				styleRow[cursor] = cs
				textRow[cursor] = p.cellText(tc)
			default:
				delete(open, key)
				cs := p.parseCell(tc, tcPr, cursor, span)
				styleRow[cursor] = cs
				textRow[cursor] = p.cellText(tc)
			}

			// Non-owning columns of a horizontal span are always skipped.
			for i := 1; i < span; i++ {
				styleRow[cursor+i] = CellStyle{ColIndex: cursor + i, Skip: true}
			}
			cursor += span
		}

		table.Data = append(table.Data, textRow)
		table.Cells = append(table.Cells, styleRow)
	}

	// A merge that was never continued reports no row span.
	for r := range table.Cells {
		for c := range table.Cells[r] {
			if table.Cells[r][c].RowSpan == 1 {
				table.Cells[r][c].RowSpan = 0
			}
		}
	}
	return table
}

// parseCell resolves one cell's own properties plus the run formatting of
// its first paragraph that carries text.
func (p *parser) parseCell(tc, tcPr *Node, col, span int) CellStyle {
	cs := CellStyle{ColIndex: col}
	if span > 1 {
		cs.GridSpan = span
	}
	if tcPr != nil {
		if shd := tcPr.Child("shd"); shd != nil {
			cs.Fill = normalizeColor(shd.Attr("fill"))
		}
		cs.Borders = parseBorders(tcPr.Child("tcBorders"))
		if vAlign := tcPr.Child("vAlign"); vAlign != nil {
			cs.VertAlign = vAlign.Attr("val")
		}
	}

	paras := tc.ChildrenByTag("p")
	var chosen *Paragraph
	for _, pn := range paras {
		parsed := p.parseParagraph(pn)
		if parsed.Text != "" {
			chosen = parsed
			break
		}
		if chosen == nil {
			chosen = parsed
		}
	}
	if chosen != nil && len(chosen.Runs) > 0 {
		rs := chosen.Runs[0].Style
		cs.Bold = rs.Bold
		cs.Italic = rs.Italic
		cs.Font = rs.Font
		cs.Size = rs.Size
		cs.Color = rs.Color
	}
	return cs
}

// cellText is the newline-joined text of the cell's paragraphs.
func (p *parser) cellText(tc *Node) string {
	var parts []string
	for _, pn := range tc.ChildrenByTag("p") {
		parts = append(parts, p.parseParagraph(pn).Text)
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// widestRow computes the fallback column count when the grid declaration is
// missing: the maximum over rows of leading empties plus claimed spans plus
// trailing empties.
func widestRow(rows []*Node) int {
	max := 0
	for _, tr := range rows {
		width := rowGridBefore(tr) + rowGridAfter(tr)
		for _, tc := range tr.ChildrenByTag("tc") {
			span := 1
			if tcPr := tc.Child("tcPr"); tcPr != nil {
				if gs := tcPr.Child("gridSpan"); gs != nil {
					if v := parseIntAttr(gs.Attr("val")); v > 1 {
						span = v
					}
				}
			}
			width += span
		}
		if width > max {
			max = width
		}
	}
	return max
}

func rowGridBefore(tr *Node) int {
	if trPr := tr.Child("trPr"); trPr != nil {
		if gb := trPr.Child("gridBefore"); gb != nil {
			return parseIntAttr(gb.Attr("val"))
		}
	}
	return 0
}

func rowGridAfter(tr *Node) int {
	if trPr := tr.Child("trPr"); trPr != nil {
		if ga := trPr.Child("gridAfter"); ga != nil {
			return parseIntAttr(ga.Attr("val"))
		}
	}
	return 0
}

// openSpanAt reports the width of an open merge starting at the given
// column, or 0 when none does. The widest wins if several share a start.
func openSpanAt(open map[mergeKey]openMerge, col int) int {
	widest := 0
	for key := range open {
		if key.col == col && key.span > widest {
			widest = key.span
		}
	}
	return widest
}

func childOf(n *Node, tag string) *Node {
	if n == nil {
		return nil
	}
	return n.Child(tag)
}

// parseBorders reads a tblBorders or tcBorders node. Start and end are
// accepted as aliases for left and right.
func parseBorders(node *Node) TableBorders {
	var b TableBorders
	if node == nil {
		return b
	}
	b.Top = parseBorderEdge(node.Child("top"))
	b.Bottom = parseBorderEdge(node.Child("bottom"))
	if b.Left = parseBorderEdge(node.Child("left")); b.Left == nil {
		b.Left = parseBorderEdge(node.Child("start"))
	}
	if b.Right = parseBorderEdge(node.Child("right")); b.Right == nil {
		b.Right = parseBorderEdge(node.Child("end"))
	}
	b.InsideH = parseBorderEdge(node.Child("insideH"))
	b.InsideV = parseBorderEdge(node.Child("insideV"))
	return b
}

func parseBorderEdge(node *Node) *BorderEdge {
	if node == nil {
		return nil
	}
	style := node.Attr("val")
	if style == "" || style == "nil" || style == "none" {
		return nil
	}
	return &BorderEdge{
		Style: style,
		Size:  parseIntAttr(node.Attr("sz")),
		Color: normalizeColor(node.Attr("color")),
	}
}
