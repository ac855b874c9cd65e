package wordml

// parseSection reads a w:sectPr node into page-layout metadata. All values
// stay in twentieths of a point. Returns nil when the node is nil or none of
// its sub-elements are recognized.
func parseSection(node *Node) *SectionProperties {
	if node == nil {
		return nil
	}
	sp := &SectionProperties{}
	found := false

	if pgSz := node.Child("pgSz"); pgSz != nil {
		sp.PageWidth = parseTwips(pgSz.Attr("w"))
		sp.PageHeight = parseTwips(pgSz.Attr("h"))
		sp.Orientation = "portrait"
		if pgSz.Attr("orient") == "landscape" {
			sp.Orientation = "landscape"
		}
		found = true
	}
	if pgMar := node.Child("pgMar"); pgMar != nil {
		sp.MarginTop = parseTwips(pgMar.Attr("top"))
		sp.MarginRight = parseTwips(pgMar.Attr("right"))
		sp.MarginBottom = parseTwips(pgMar.Attr("bottom"))
		sp.MarginLeft = parseTwips(pgMar.Attr("left"))
		sp.MarginHeader = parseTwips(pgMar.Attr("header"))
		sp.MarginFooter = parseTwips(pgMar.Attr("footer"))
		found = true
	}
	if cols := node.Child("cols"); cols != nil {
		sp.Columns = parseIntAttr(cols.Attr("num"))
		if sp.Columns == 0 {
			sp.Columns = 1
		}
		sp.ColumnSpacing = parseTwips(cols.Attr("space"))
		found = true
	}

	if !found {
		return nil
	}
	return sp
}
