package wordml

// NumberingTable maps a concrete numId to its per-level format and literal
// level text, resolved through the abstractNumId indirection of the
// numbering part. Dangling references simply resolve to nothing.
type NumberingTable struct {
	nums map[string]map[int]NumberingLevel
}

// newNumberingTable builds the lookup from the parsed numbering part root.
// A nil root yields an empty table.
func newNumberingTable(root *Node) *NumberingTable {
	t := &NumberingTable{nums: make(map[string]map[int]NumberingLevel)}
	if root == nil {
		return t
	}

	abstracts := make(map[string]map[int]NumberingLevel)
	for _, abs := range root.ChildrenByTag("abstractNum") {
		id := abs.Attr("abstractNumId")
		if id == "" {
			continue
		}
		levels := make(map[int]NumberingLevel)
		for _, lvl := range abs.ChildrenByTag("lvl") {
			ilvl := parseIntAttr(lvl.Attr("ilvl"))
			var nl NumberingLevel
			if fmtNode := lvl.Child("numFmt"); fmtNode != nil {
				nl.Format = fmtNode.Attr("val")
			}
			if textNode := lvl.Child("lvlText"); textNode != nil {
				nl.Text = textNode.Attr("val")
			}
			levels[ilvl] = nl
		}
		abstracts[id] = levels
	}

	for _, num := range root.ChildrenByTag("num") {
		numID := num.Attr("numId")
		if numID == "" {
			continue
		}
		absRef := num.Child("abstractNumId")
		if absRef == nil {
			continue
		}
		if levels, ok := abstracts[absRef.Attr("val")]; ok {
			t.nums[numID] = levels
		}
	}
	return t
}

// Level returns the numbering level definition for (numId, level), with
// ok=false when either reference dangles.
func (t *NumberingTable) Level(numID string, level int) (NumberingLevel, bool) {
	levels, ok := t.nums[numID]
	if !ok {
		return NumberingLevel{}, false
	}
	nl, ok := levels[level]
	return nl, ok
}
