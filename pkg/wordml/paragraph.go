package wordml

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// parseParagraph turns one w:p node into its resolved representation.
//
// Effective run formatting cascades low to high: document default →
// paragraph-style chain → paragraph-local run defaults (pPr/rPr) →
// character-style chain → run-local direct properties. Each stage merges
// only the fields it defines.
func (p *parser) parseParagraph(node *Node) *Paragraph {
	para := &Paragraph{}
	pPr := node.Child("pPr")

	var styleID string
	if pPr != nil {
		if pStyle := pPr.Child("pStyle"); pStyle != nil {
			styleID = pStyle.Attr("val")
		}
	}
	para.StyleID = styleID

	// Paragraph-level base for run formatting.
	runBase := p.styles.DefaultRun()
	runBase = mergeRunStyle(runBase, p.styles.ResolveRun(styleID))
	if pPr != nil {
		runBase = mergeRunStyle(runBase, parseRunProps(pPr.Child("rPr")))
	}

	// Paragraph properties: defaults, then the style chain, then direct.
	props := mergeParaProps(p.styles.defaultPara, p.styles.ResolvePara(styleID))
	if pPr != nil {
		props = mergeParaProps(props, parseParaProps(pPr))
	}
	para.Alignment = props.align
	if props.spacingBefore != nil {
		para.SpacingBefore = *props.spacingBefore
	}
	if props.spacingAfter != nil {
		para.SpacingAfter = *props.spacingAfter
	}
	if props.indentLeft != nil {
		para.IndentLeft = *props.indentLeft
	}
	if props.indentRight != nil {
		para.IndentRight = *props.indentRight
	}
	if props.indentFirst != nil {
		para.IndentFirst = *props.indentFirst
	}

	// The heading level comes only from the paragraph's resolved style,
	// never from direct formatting.
	para.HeadingLevel = p.styles.HeadingLevel(styleID)

	if pPr != nil {
		if numPr := pPr.Child("numPr"); numPr != nil {
			ref := NumberingRef{}
			if numID := numPr.Child("numId"); numID != nil {
				ref.NumID = numID.Attr("val")
			}
			if ilvl := numPr.Child("ilvl"); ilvl != nil {
				ref.Level = parseIntAttr(ilvl.Attr("val"))
			}
			if ref.NumID != "" {
				para.Numbering = &ref
			}
		}
	}

	flat := p.flattenRuns(node)
	linkTargets := make(map[string]bool)

	var text strings.Builder
	for _, rn := range flat {
		t := runText(rn.node)
		para.Images = append(para.Images, p.parseRunImages(rn.node)...)
		p.collectNoteRefs(rn.node, para)
		if rn.link != "" {
			linkTargets[rn.link] = true
		}
		if t == "" {
			continue
		}
		para.Runs = append(para.Runs, Run{
			Text:     t,
			Style:    p.resolveRun(runBase, rn.node),
			Inserted: rn.inserted,
		})
		text.WriteString(t)
	}

	// An empty paragraph still carries one synthetic run with the fully
	// merged formatting, so intended style survives a round trip.
	if len(para.Runs) == 0 {
		para.Runs = []Run{{Style: runBase}}
	}

	para.Text = text.String()
	if p.cfg == nil || p.cfg.NormalizeText {
		para.Text = norm.NFC.String(para.Text)
	}

	p.collectMarkers(node, para)
	para.Fields = p.parseFields(node, flat)
	for _, f := range para.Fields {
		if f.Kind == FieldHyperlink {
			if target := hyperlinkFieldTarget(f.Code); target != "" {
				linkTargets[target] = true
			}
		}
	}

	// The convenience link is set only when the paragraph resolves to
	// exactly one distinct target; anything else stays undefined.
	if len(linkTargets) == 1 {
		for target := range linkTargets {
			para.Link = target
		}
	}

	para.Uniform = collapseUniform(para.Runs)
	return para
}

// collectMarkers records bookmark and comment-range markers anywhere inside
// the paragraph.
func (p *parser) collectMarkers(n *Node, para *Paragraph) {
	for _, c := range n.Children {
		if c.IsText() {
			continue
		}
		switch localName(c.Tag) {
		case "bookmarkStart":
			name := c.Attr("name")
			if name != "" && name != "_GoBack" {
				para.Bookmarks = append(para.Bookmarks, Bookmark{
					ID:   c.Attr("id"),
					Name: name,
				})
			}
		case "commentRangeStart":
			para.Comments = append(para.Comments, CommentRange{ID: c.Attr("id"), Start: true})
		case "commentRangeEnd":
			para.Comments = append(para.Comments, CommentRange{ID: c.Attr("id")})
		default:
			p.collectMarkers(c, para)
		}
	}
}

func (p *parser) collectNoteRefs(run *Node, para *Paragraph) {
	for _, c := range run.Children {
		if c.IsText() {
			continue
		}
		switch localName(c.Tag) {
		case "footnoteReference":
			para.Notes = append(para.Notes, NoteRef{Kind: "footnote", ID: c.Attr("id")})
		case "endnoteReference":
			para.Notes = append(para.Notes, NoteRef{Kind: "endnote", ID: c.Attr("id")})
		}
	}
}

// collapseUniform mirrors run formatting onto the paragraph record when
// every run agrees on bold, italic, underline, size, color and font. The
// run list itself is always retained.
func collapseUniform(runs []Run) RunStyle {
	if len(runs) == 0 {
		return RunStyle{}
	}
	first := runs[0].Style
	for _, r := range runs[1:] {
		s := r.Style
		if !boolEq(s.Bold, first.Bold) || !boolEq(s.Italic, first.Italic) ||
			!boolEq(s.Underline, first.Underline) ||
			s.Size != first.Size || s.Color != first.Color || s.Font != first.Font {
			return RunStyle{}
		}
	}
	return RunStyle{
		Bold:      first.Bold,
		Italic:    first.Italic,
		Underline: first.Underline,
		Size:      first.Size,
		Color:     first.Color,
		Font:      first.Font,
	}
}

func boolEq(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
