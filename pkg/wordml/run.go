package wordml

// parser carries the per-call lookup tables shared by every paragraph and
// table parse of one Parse invocation. It is never reused across calls.
type parser struct {
	styles    *StyleTable
	numbering *NumberingTable
	rels      *RelationshipTable
	media     func(path string) []byte // nil when no package is available
	cfg       *Config
}

// runNode is one flattened run inside a paragraph, annotated with the
// context its wrappers contributed.
type runNode struct {
	node     *Node
	inserted bool   // inside w:ins
	link     string // resolved hyperlink target of the enclosing w:hyperlink
}

// flattenRuns walks a paragraph's children and returns its runs in document
// order, looking through hyperlink, tracked-insert and simple-field
// wrappers. Deleted content (w:del) does not contribute runs.
func (p *parser) flattenRuns(para *Node) []runNode {
	var out []runNode
	p.collectRuns(para, false, "", &out)
	return out
}

func (p *parser) collectRuns(n *Node, inserted bool, link string, out *[]runNode) {
	for _, c := range n.Children {
		if c.IsText() {
			continue
		}
		switch localName(c.Tag) {
		case "r":
			*out = append(*out, runNode{node: c, inserted: inserted, link: link})
		case "hyperlink":
			target := link
			if id := c.Attr("id"); id != "" && p.rels != nil {
				if t := p.rels.Target(id); t != "" {
					target = t
				}
			}
			if anchor := c.Attr("anchor"); anchor != "" && target == link {
				target = "#" + anchor
			}
			p.collectRuns(c, inserted, target, out)
		case "ins":
			p.collectRuns(c, true, link, out)
		case "del":
			// Deleted tracked-change content is dropped on capture.
		case "fldSimple", "smartTag", "sdt", "sdtContent":
			p.collectRuns(c, inserted, link, out)
		}
	}
}

// resolveRun layers the character-style chain and the run's own direct
// properties on top of the paragraph-level base formatting.
func (p *parser) resolveRun(base RunStyle, run *Node) RunStyle {
	rPr := run.Child("rPr")
	eff := base
	if rPr != nil {
		if rStyle := rPr.Child("rStyle"); rStyle != nil {
			eff = mergeRunStyle(eff, p.styles.ResolveRun(rStyle.Attr("val")))
		}
	}
	return mergeRunStyle(eff, parseRunProps(rPr))
}

// runText extracts the visible text of a run: w:t content plus tab and
// break equivalents. Field-instruction text is not visible.
func runText(run *Node) string {
	var sb []byte
	for _, c := range run.Children {
		if c.IsText() {
			continue
		}
		switch localName(c.Tag) {
		case "t":
			sb = append(sb, c.TextContent()...)
		case "tab":
			sb = append(sb, '\t')
		case "br", "cr":
			sb = append(sb, '\n')
		}
	}
	return string(sb)
}

// findFirst returns the first descendant element with the given local tag
// name, searching depth-first.
func findFirst(n *Node, tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.IsText() {
			continue
		}
		if localName(c.Tag) == tag {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// parseRunImages extracts inline images referenced by a run, resolving the
// relationship target and sniffing pixel dimensions when media bytes are
// reachable. Both DrawingML (w:drawing) and legacy VML (w:pict) references
// are handled.
func (p *parser) parseRunImages(run *Node) []Image {
	var images []Image
	for _, c := range run.Children {
		if c.IsText() {
			continue
		}
		var relID string
		switch localName(c.Tag) {
		case "drawing":
			if blip := findFirst(c, "blip"); blip != nil {
				relID = blip.Attr("embed")
			}
		case "pict", "object":
			if data := findFirst(c, "imagedata"); data != nil {
				relID = data.Attr("id")
			}
		default:
			continue
		}
		if relID == "" {
			continue
		}
		img := Image{RelID: relID}
		if p.rels != nil {
			img.Target = p.rels.MediaPath(relID)
		}
		if img.Target != "" && p.media != nil {
			if data := p.media(img.Target); len(data) > 0 {
				img.Width, img.Height, img.Format = sniffImage(data)
			}
		}
		images = append(images, img)
	}
	return images
}
