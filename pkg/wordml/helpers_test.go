package wordml

import "testing"

const wNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

// wrapDocument wraps body XML in a complete document part.
func wrapDocument(body string) []byte {
	return []byte(xmlHeader + `<w:document ` + wNamespaces + `><w:body>` + body + `</w:body></w:document>`)
}

// buildDocx assembles an in-memory package with the given body and any
// extra entries (styles, numbering, relationships, media).
func buildDocx(t *testing.T, body string, extras ...ArchiveEntry) []byte {
	t.Helper()
	entries := []ArchiveEntry{
		{EntryContentTypes, []byte(contentTypesXML)},
		{EntryPackageRels, []byte(packageRelsXML)},
		{EntryDocument, wrapDocument(body)},
	}
	entries = append(entries, extras...)
	pkg, err := WriteArchive(entries)
	if err != nil {
		t.Fatalf("building test package: %v", err)
	}
	return pkg
}

// parseBody parses body XML without a surrounding package.
func parseBody(t *testing.T, body string) *Document {
	t.Helper()
	doc, err := ParseParts(wrapDocument(body), nil, nil, nil)
	if err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	return doc
}

// parseBodyWith parses body XML alongside styles, numbering and
// relationships parts; any of them may be empty.
func parseBodyWith(t *testing.T, body, styles, numbering, rels string) *Document {
	t.Helper()
	doc, err := ParseParts(wrapDocument(body), []byte(styles), []byte(numbering), []byte(rels))
	if err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	return doc
}

func firstParagraph(t *testing.T, doc *Document) *Paragraph {
	t.Helper()
	if len(doc.Blocks) == 0 {
		t.Fatal("document has no blocks")
	}
	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("first block is %T, want *Paragraph", doc.Blocks[0])
	}
	return p
}

func firstTable(t *testing.T, doc *Document) *Table {
	t.Helper()
	if len(doc.Blocks) == 0 {
		t.Fatal("document has no blocks")
	}
	tbl, ok := doc.Blocks[0].(*Table)
	if !ok {
		t.Fatalf("first block is %T, want *Table", doc.Blocks[0])
	}
	return tbl
}
