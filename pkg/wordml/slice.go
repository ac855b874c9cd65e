package wordml

import (
	"bytes"
	"encoding/xml"
	"io"
)

// bodyChild is one top-level element of the body with its raw byte range in
// the document part. Paragraphs record an embedded trailing sectPr range if
// they carry one; tables record the ranges of their ordered sub-elements so
// a partial table can keep its structural setup plus only leading rows.
type bodyChild struct {
	tag   string
	start int64
	end   int64

	sectStart int64 // embedded pPr/sectPr, start==end means none
	sectEnd   int64

	openEnd  int64 // offset just past the opening tag (tables only)
	closeTag [2]int64
	subs     []subRange
}

type subRange struct {
	tag   string
	start int64
	end   int64
}

func (c *bodyChild) hasEmbeddedSect() bool { return c.sectEnd > c.sectStart }

// docScan holds the byte-range structure of one document part.
type docScan struct {
	raw           []byte
	bodyOpenEnd   int64
	bodyCloseStart int64
	children      []bodyChild
}

// scanDocument tokenizes the document part once, recording the byte ranges
// needed to splice a truncated body out of the original bytes. Spliced
// content is carried over verbatim, so namespaces, attribute order and
// unrecognized elements all survive untouched.
func scanDocument(raw []byte) (*docScan, error) {
	s := &docScan{raw: raw, bodyCloseStart: int64(len(raw))}
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Strict = false
	inBody := false
	for {
		prev := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewParseError(EntryDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !inBody {
				if t.Name.Local == "body" {
					inBody = true
					s.bodyOpenEnd = dec.InputOffset()
				}
				continue
			}
			child := bodyChild{tag: t.Name.Local, start: prev, openEnd: dec.InputOffset()}
			if err := consumeChild(dec, &child); err != nil {
				return nil, err
			}
			child.end = dec.InputOffset()
			s.children = append(s.children, child)
		case xml.EndElement:
			if inBody && t.Name.Local == "body" {
				s.bodyCloseStart = prev
				inBody = false
			}
		}
	}
	return s, nil
}

// consumeChild reads one body child to its end element, recording embedded
// sectPr ranges for paragraphs and sub-element ranges for tables.
func consumeChild(dec *xml.Decoder, child *bodyChild) error {
	var stack []string
	var subStart int64
	subTag := ""
	sectDepth := -1
	for {
		prev := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return NewParseError(EntryDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if child.tag == "tbl" && len(stack) == 0 {
				subStart = prev
				subTag = t.Name.Local
			}
			if child.tag == "p" && t.Name.Local == "sectPr" &&
				len(stack) == 1 && stack[0] == "pPr" && !child.hasEmbeddedSect() {
				child.sectStart = prev
				sectDepth = len(stack)
			}
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) == 0 {
				child.closeTag = [2]int64{prev, dec.InputOffset()}
				return nil
			}
			stack = stack[:len(stack)-1]
			if child.tag == "tbl" && len(stack) == 0 {
				child.subs = append(child.subs, subRange{tag: subTag, start: subStart, end: dec.InputOffset()})
			}
			if sectDepth >= 0 && len(stack) == sectDepth {
				child.sectEnd = dec.InputOffset()
				sectDepth = -1
			}
		}
	}
}

// unitCount returns how many content units the child contributes: one per
// non-table paragraph or other visible element, one per table row, zero for
// section markers and bookmark stragglers.
func (c *bodyChild) unitCount() int {
	switch c.tag {
	case "sectPr", "bookmarkStart", "bookmarkEnd":
		return 0
	case "tbl":
		n := 0
		for _, sub := range c.subs {
			if sub.tag == "tr" {
				n++
			}
		}
		return n
	}
	return 1
}

// CountUnits reports the total number of content units in a package's body.
func CountUnits(pkg []byte) (int, error) {
	if len(pkg) == 0 {
		return 0, nil
	}
	docXML, ok, err := ReadEntry(pkg, EntryDocument)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	scan, err := scanDocument(docXML)
	if err != nil {
		return 0, err
	}
	total := 0
	for i := range scan.children {
		total += scan.children[i].unitCount()
	}
	return total, nil
}

// Slice truncates a package to its first n content units. The result is an
// independently valid, openable package: a partially included table keeps
// its structural setup plus only its leading rows, and the section
// properties applying to the last included unit are carried forward by a
// forward scan over both body-level and paragraph-embedded locations. All
// entries other than the body part pass through unchanged.
func Slice(pkg []byte, n int) ([]byte, error) {
	if len(pkg) == 0 {
		return pkg, nil
	}
	docXML, ok, err := ReadEntry(pkg, EntryDocument)
	if err != nil {
		return nil, err
	}
	if !ok {
		return pkg, nil
	}
	scan, err := scanDocument(docXML)
	if err != nil {
		return nil, NewSliceError(n, err)
	}

	var body bytes.Buffer
	remaining := n
	lastIdx := -1 // index of the child holding the last included unit
	lastEmbedded := false
	for i := range scan.children {
		if remaining <= 0 {
			break
		}
		child := &scan.children[i]
		units := child.unitCount()
		if units == 0 {
			body.Write(scan.raw[child.start:child.end])
			continue
		}
		if child.tag == "tbl" && units > remaining {
			writePartialTable(&body, scan.raw, child, remaining)
			remaining = 0
			lastIdx = i
			lastEmbedded = false
			break
		}
		body.Write(scan.raw[child.start:child.end])
		remaining -= units
		lastIdx = i
		lastEmbedded = child.tag == "p" && child.hasEmbeddedSect()
	}

	// When the quota was never exhausted the whole body, trailing sectPr
	// included, is already written; appending would duplicate it. The same
	// holds when the last included paragraph embeds the governing sectPr:
	// its verbatim bytes carry it already.
	if remaining <= 0 && !lastEmbedded {
		if sect := scan.applicableSect(lastIdx); sect != nil {
			body.Write(sect)
		}
	}

	var out bytes.Buffer
	out.Write(scan.raw[:scan.bodyOpenEnd])
	out.Write(body.Bytes())
	out.Write(scan.raw[scan.bodyCloseStart:])

	sliced, err := ReplaceEntry(pkg, EntryDocument, out.Bytes())
	if err != nil {
		return nil, NewSliceError(n, err)
	}
	logger.Debug().Int("units", n).Int("bytes", len(sliced)).Msg("sliced package")
	return sliced, nil
}

// writePartialTable emits the table's opening tag, every structural
// sub-element up to the cut, the included leading rows, and the closing tag
// verbatim. Rows past the cut never appear without their predecessors.
func writePartialTable(body *bytes.Buffer, raw []byte, child *bodyChild, rows int) {
	body.Write(raw[child.start:child.openEnd])
	for _, sub := range child.subs {
		if sub.tag == "tr" {
			if rows == 0 {
				break
			}
			rows--
		}
		body.Write(raw[sub.start:sub.end])
	}
	body.Write(raw[child.closeTag[0]:child.closeTag[1]])
}

// applicableSect finds the raw bytes of the section properties governing
// the last included unit: the first body-level or paragraph-embedded sectPr
// scanning forward from it.
func (s *docScan) applicableSect(lastIdx int) []byte {
	for i := lastIdx + 1; i < len(s.children); i++ {
		c := &s.children[i]
		if c.tag == "sectPr" {
			return s.raw[c.start:c.end]
		}
		if c.tag == "p" && c.hasEmbeddedSect() {
			return s.raw[c.sectStart:c.sectEnd]
		}
	}
	return nil
}
