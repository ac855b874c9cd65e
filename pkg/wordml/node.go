package wordml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Node is a single node in a parsed XML tree: either an element with a tag,
// attributes and ordered children, or a text leaf (Tag empty, Text set).
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// Attr is one attribute on an element node.
type Attr struct {
	Name  string
	Value string
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == ""
}

// Element creates an element node with the given tag and children.
func Element(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// TextNode creates a text leaf.
func TextNode(s string) *Node {
	return &Node{Text: s}
}

// WithAttr appends an attribute and returns the node for chaining.
func (n *Node) WithAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Attr returns the value of the named attribute. The name is matched against
// the attribute's local part, so "val" finds both "val" and "w:val".
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if a.Name == name || localName(a.Name) == name {
			return a.Value
		}
	}
	return ""
}

// Child returns the first child element with the given local tag name.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if localName(c.Tag) == tag {
			return c
		}
	}
	return nil
}

// ChildN returns the first descendant found by following a path of local tag
// names, or nil if any step is missing.
func (n *Node) ChildN(path ...string) *Node {
	cur := n
	for _, tag := range path {
		cur = cur.Child(tag)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ChildrenByTag returns all child elements with the given local tag name.
func (n *Node) ChildrenByTag(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if localName(c.Tag) == tag {
			out = append(out, c)
		}
	}
	return out
}

// Is reports whether the node is an element with the given local tag name.
func (n *Node) Is(tag string) bool {
	return n != nil && n.Tag != "" && localName(n.Tag) == tag
}

// TextContent returns the concatenated text of the subtree. Tab elements
// contribute "\t", break and carriage-return elements contribute "\n";
// every other element contributes its children's text in document order.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}
	switch localName(n.Tag) {
	case "tab":
		sb.WriteByte('\t')
		return
	case "br", "cr":
		sb.WriteByte('\n')
		return
	}
	for _, c := range n.Children {
		c.writeText(sb)
	}
}

// localName strips a namespace prefix, so "w:tbl" becomes "tbl".
func localName(tag string) string {
	if idx := strings.IndexByte(tag, ':'); idx >= 0 {
		return tag[idx+1:]
	}
	return tag
}

// ParseXML parses an XML document into a Node tree rooted at the first
// element. Tags and attribute names carry their local part only; namespace
// matching is done by local name throughout this package. Returns nil and no
// error for empty input.
func ParseXML(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, NewParseError("xml", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseElement(dec, start)
		}
	}
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*Node, error) {
	node := &Node{Tag: start.Name.Local}
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		node.Attrs = append(node.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			// Unterminated element: keep what was collected.
			return node, nil
		}
		if err != nil {
			return nil, NewParseError("xml", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.CharData:
			if len(t) > 0 {
				node.Children = append(node.Children, TextNode(string(t)))
			}
		case xml.EndElement:
			return node, nil
		}
	}
}

// WriteXML serializes the node tree. Tags and attribute names are written
// verbatim, so trees built by the generator carry their "w:" prefixes.
func (n *Node) WriteXML(w io.Writer) error {
	var sb strings.Builder
	n.appendXML(&sb)
	_, err := io.WriteString(w, sb.String())
	return err
}

// XML returns the serialized form of the node tree.
func (n *Node) XML() string {
	var sb strings.Builder
	n.appendXML(&sb)
	return sb.String()
}

func (n *Node) appendXML(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.IsText() {
		sb.WriteString(escapeText(n.Text))
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}
	if len(n.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.Children {
		c.appendXML(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
