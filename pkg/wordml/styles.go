package wordml

// StyleDefinition is one entry of the styles part. Property subsets are kept
// as raw nodes and resolved on demand through the basedOn chain.
type StyleDefinition struct {
	ID      string
	Type    string // paragraph, character, table, numbering
	Name    string
	BasedOn string

	rPr *Node
	pPr *Node
}

// paraProps is the paragraph-level property subset that participates in
// style-chain resolution. Pointer fields are tri-state so that "defined
// wins, skip undefined" merging works for zero values too.
type paraProps struct {
	align         string
	spacingBefore *int
	spacingAfter  *int
	indentLeft    *int
	indentRight   *int
	indentFirst   *int
}

// StyleTable holds every style of one package plus the document defaults.
// It is built once per parse call and read-only afterwards.
type StyleTable struct {
	styles      map[string]*StyleDefinition
	defaultRun  RunStyle
	defaultPara paraProps

	runCache  map[string]RunStyle
	paraCache map[string]paraProps
}

// newStyleTable builds a style table from the parsed styles part root.
// A nil root yields an empty table; every lookup then resolves to nothing.
func newStyleTable(root *Node) *StyleTable {
	t := &StyleTable{
		styles:    make(map[string]*StyleDefinition),
		runCache:  make(map[string]RunStyle),
		paraCache: make(map[string]paraProps),
	}
	if root == nil {
		return t
	}
	if defaults := root.Child("docDefaults"); defaults != nil {
		t.defaultRun = parseRunProps(defaults.ChildN("rPrDefault", "rPr"))
		t.defaultPara = parseParaProps(defaults.ChildN("pPrDefault", "pPr"))
	}
	for _, styleNode := range root.ChildrenByTag("style") {
		def := &StyleDefinition{
			ID:   styleNode.Attr("styleId"),
			Type: styleNode.Attr("type"),
			rPr:  styleNode.Child("rPr"),
			pPr:  styleNode.Child("pPr"),
		}
		if def.ID == "" {
			continue
		}
		if name := styleNode.Child("name"); name != nil {
			def.Name = name.Attr("val")
		}
		if basedOn := styleNode.Child("basedOn"); basedOn != nil {
			def.BasedOn = basedOn.Attr("val")
		}
		t.styles[def.ID] = def
	}
	return t
}

// Definition returns the style with the given id, or nil.
func (t *StyleTable) Definition(id string) *StyleDefinition {
	return t.styles[id]
}

// DefaultRun returns the document-default run formatting.
func (t *StyleTable) DefaultRun() RunStyle { return t.defaultRun }

// ResolveRun returns the effective run formatting of a style: the basedOn
// chain is walked parent-first and each style's own values win over
// inherited ones. An unknown id resolves to the zero RunStyle. Cycles in the
// chain truncate inheritance at the point of re-entry.
func (t *StyleTable) ResolveRun(id string) RunStyle {
	if id == "" {
		return RunStyle{}
	}
	if cached, ok := t.runCache[id]; ok {
		return cached
	}
	resolved := t.resolveRun(id, map[string]bool{})
	t.runCache[id] = resolved
	return resolved
}

func (t *StyleTable) resolveRun(id string, visited map[string]bool) RunStyle {
	def := t.styles[id]
	if def == nil || visited[id] {
		return RunStyle{}
	}
	visited[id] = true
	var base RunStyle
	if def.BasedOn != "" {
		base = t.resolveRun(def.BasedOn, visited)
	}
	return mergeRunStyle(base, parseRunProps(def.rPr))
}

// ResolvePara is ResolveRun's counterpart for the paragraph property subset.
func (t *StyleTable) ResolvePara(id string) paraProps {
	if id == "" {
		return paraProps{}
	}
	if cached, ok := t.paraCache[id]; ok {
		return cached
	}
	resolved := t.resolvePara(id, map[string]bool{})
	t.paraCache[id] = resolved
	return resolved
}

func (t *StyleTable) resolvePara(id string, visited map[string]bool) paraProps {
	def := t.styles[id]
	if def == nil || visited[id] {
		return paraProps{}
	}
	visited[id] = true
	var base paraProps
	if def.BasedOn != "" {
		base = t.resolvePara(def.BasedOn, visited)
	}
	return mergeParaProps(base, parseParaProps(def.pPr))
}

// HeadingLevel returns the heading level implied by a style's id or display
// name, or 0 when the style is unknown or not a heading.
func (t *StyleTable) HeadingLevel(id string) int {
	def := t.styles[id]
	if def == nil {
		return 0
	}
	return detectHeadingLevel(def.ID, def.Name)
}

// mergeRunStyle layers over on top of base: every defined field of over
// replaces the base value, undefined fields fall through.
func mergeRunStyle(base, over RunStyle) RunStyle {
	out := base
	if over.Bold != nil {
		out.Bold = over.Bold
	}
	if over.Italic != nil {
		out.Italic = over.Italic
	}
	if over.Underline != nil {
		out.Underline = over.Underline
	}
	if over.Strike != nil {
		out.Strike = over.Strike
	}
	if over.Font != "" {
		out.Font = over.Font
	}
	if over.Size != 0 {
		out.Size = over.Size
	}
	if over.Color != "" {
		out.Color = over.Color
	}
	if over.Highlight != "" {
		out.Highlight = over.Highlight
	}
	if over.VertAlign != "" {
		out.VertAlign = over.VertAlign
	}
	return out
}

func mergeParaProps(base, over paraProps) paraProps {
	out := base
	if over.align != "" {
		out.align = over.align
	}
	if over.spacingBefore != nil {
		out.spacingBefore = over.spacingBefore
	}
	if over.spacingAfter != nil {
		out.spacingAfter = over.spacingAfter
	}
	if over.indentLeft != nil {
		out.indentLeft = over.indentLeft
	}
	if over.indentRight != nil {
		out.indentRight = over.indentRight
	}
	if over.indentFirst != nil {
		out.indentFirst = over.indentFirst
	}
	return out
}

// parseRunProps reads one rPr node into a RunStyle. Only values present on
// the node are defined; everything else stays at its zero (undefined) value.
// The complex-script size is used only when the primary size is absent.
func parseRunProps(rPr *Node) RunStyle {
	var rs RunStyle
	if rPr == nil {
		return rs
	}
	if b := rPr.Child("b"); b != nil {
		rs.Bold = boolPtr(parseOnOff(b.Attr("val"), true))
	}
	if i := rPr.Child("i"); i != nil {
		rs.Italic = boolPtr(parseOnOff(i.Attr("val"), true))
	}
	if u := rPr.Child("u"); u != nil {
		rs.Underline = boolPtr(parseOnOff(u.Attr("val"), true))
	}
	if s := rPr.Child("strike"); s != nil {
		rs.Strike = boolPtr(parseOnOff(s.Attr("val"), true))
	}
	if fonts := rPr.Child("rFonts"); fonts != nil {
		if f := fonts.Attr("ascii"); f != "" {
			rs.Font = f
		} else if f := fonts.Attr("hAnsi"); f != "" {
			rs.Font = f
		}
	}
	if sz := rPr.Child("sz"); sz != nil {
		rs.Size = parseHalfPoints(sz.Attr("val"))
	}
	if rs.Size == 0 {
		if szCs := rPr.Child("szCs"); szCs != nil {
			rs.Size = parseHalfPoints(szCs.Attr("val"))
		}
	}
	if c := rPr.Child("color"); c != nil {
		rs.Color = normalizeColor(c.Attr("val"))
	}
	if h := rPr.Child("highlight"); h != nil {
		rs.Highlight = h.Attr("val")
	}
	if va := rPr.Child("vertAlign"); va != nil {
		rs.VertAlign = parseVertAlign(va.Attr("val"))
	}
	return rs
}

func parseVertAlign(val string) string {
	switch val {
	case "superscript", "subscript":
		return val
	}
	return ""
}

// parseParaProps reads one pPr node into the paragraph property subset.
func parseParaProps(pPr *Node) paraProps {
	var pp paraProps
	if pPr == nil {
		return pp
	}
	if jc := pPr.Child("jc"); jc != nil {
		pp.align = normalizeAlignment(jc.Attr("val"))
	}
	if spacing := pPr.Child("spacing"); spacing != nil {
		if v := spacing.Attr("before"); v != "" {
			pp.spacingBefore = intPtr(parseTwips(v))
		}
		if v := spacing.Attr("after"); v != "" {
			pp.spacingAfter = intPtr(parseTwips(v))
		}
	}
	if ind := pPr.Child("ind"); ind != nil {
		if v := ind.Attr("left"); v != "" {
			pp.indentLeft = intPtr(parseTwips(v))
		} else if v := ind.Attr("start"); v != "" {
			pp.indentLeft = intPtr(parseTwips(v))
		}
		if v := ind.Attr("right"); v != "" {
			pp.indentRight = intPtr(parseTwips(v))
		} else if v := ind.Attr("end"); v != "" {
			pp.indentRight = intPtr(parseTwips(v))
		}
		if v := ind.Attr("firstLine"); v != "" {
			pp.indentFirst = intPtr(parseTwips(v))
		}
	}
	return pp
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
