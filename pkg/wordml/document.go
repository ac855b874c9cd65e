package wordml

// Parse reads a WordprocessingML package and returns its intermediate
// representation. An empty buffer or a package without a body entry yields
// an empty document, not an error; errors are reserved for buffers that are
// not readable zip archives and body XML that cannot be tokenized.
func Parse(pkg []byte) (*Document, error) {
	return ParseWithConfig(pkg, nil)
}

// ParseWithConfig is Parse with an explicit configuration. A nil cfg uses
// the environment-derived defaults.
func ParseWithConfig(pkg []byte, cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = GetGlobalConfig()
	}
	if len(pkg) == 0 {
		return &Document{}, nil
	}

	docXML, ok, err := ReadEntry(pkg, EntryDocument)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Document{}, nil
	}

	stylesXML, _, _ := ReadEntry(pkg, EntryStyles)
	numberingXML, _, _ := ReadEntry(pkg, EntryNumbering)
	relsXML, _, _ := ReadEntry(pkg, EntryRelationships)

	media := func(path string) []byte {
		data, ok, err := ReadEntry(pkg, path)
		if err != nil || !ok {
			return nil
		}
		return data
	}
	doc, err := parseParts(docXML, stylesXML, numberingXML, relsXML, media, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("blocks", len(doc.Blocks)).Msg("parsed package")
	return doc, nil
}

// ParseParts parses loose part payloads without a surrounding package. Any
// part other than the body may be nil. Media referenced from runs is left
// unresolved.
func ParseParts(docXML, stylesXML, numberingXML, relsXML []byte) (*Document, error) {
	return parseParts(docXML, stylesXML, numberingXML, relsXML, nil, GetGlobalConfig())
}

func parseParts(docXML, stylesXML, numberingXML, relsXML []byte, media func(string) []byte, cfg *Config) (*Document, error) {
	root, err := ParseXML(docXML)
	if err != nil {
		return nil, err
	}
	stylesRoot, _ := ParseXML(stylesXML)
	numberingRoot, _ := ParseXML(numberingXML)
	relsRoot, _ := ParseXML(relsXML)

	p := &parser{
		styles:    newStyleTable(stylesRoot),
		numbering: newNumberingTable(numberingRoot),
		rels:      newRelationshipTable(relsRoot),
		media:     media,
		cfg:       cfg,
	}
	return p.parseDocument(root), nil
}

// parseDocument walks the body children backward, threading the nearest
// following section-properties node through the pass. Section properties
// apply retroactively to everything back to the previous boundary, so
// resolving which section owns a block is naturally right-to-left. The
// output is reversed at the end to restore document order.
func (p *parser) parseDocument(root *Node) *Document {
	doc := &Document{}
	if root == nil {
		return doc
	}
	body := root.Child("body")
	if body == nil {
		return doc
	}

	var currentSect *Node
	var out []Block
	for i := len(body.Children) - 1; i >= 0; i-- {
		c := body.Children[i]
		if c.IsText() {
			continue
		}
		switch localName(c.Tag) {
		case "sectPr":
			currentSect = c
		case "p":
			// A paragraph whose properties embed a trailing sectPr ends a
			// section itself.
			if embedded := c.ChildN("pPr", "sectPr"); embedded != nil {
				currentSect = embedded
			}
			para := p.parseParagraph(c)
			p.backfillNumbering(para)
			para.Section = parseSection(currentSect)
			out = append(out, para)
		case "tbl":
			table := p.parseTable(c)
			table.Section = parseSection(currentSect)
			out = append(out, table)
		case "bookmarkStart", "bookmarkEnd":
			// Body-level bookmark stragglers carry no content.
		default:
			placeholder := placeholderFor(c.Tag)
			placeholder.Section = parseSection(currentSect)
			out = append(out, placeholder)
		}
	}

	for i := len(out) - 1; i >= 0; i-- {
		doc.Blocks = append(doc.Blocks, out[i])
	}
	return doc
}

func (p *parser) backfillNumbering(para *Paragraph) {
	if para.Numbering == nil {
		return
	}
	if nl, ok := p.numbering.Level(para.Numbering.NumID, para.Numbering.Level); ok {
		para.Numbering.Format = nl.Format
		para.Numbering.Text = nl.Text
	}
}

// placeholderFor stands in for an unrecognized body element so the emitted
// block count still reflects the source structure: italic, small, gray,
// naming the tag.
func placeholderFor(tag string) *Paragraph {
	italic := true
	style := RunStyle{Italic: &italic, Size: 8, Color: "808080"}
	text := "[" + tag + "]"
	return &Paragraph{
		Text:        text,
		Runs:        []Run{{Text: text, Style: style}},
		Uniform:     style,
		Placeholder: true,
	}
}
