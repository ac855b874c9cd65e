package wordml

import "strings"

// parseFields extracts simple and complex fields from a paragraph.
//
// Complex fields span sibling runs: a fldChar of type "begin" resets the
// accumulator and starts collecting instruction text, "separate" switches
// accumulation to the cached result, and "end" emits one field record. A
// "begin" that never reaches "end" emits nothing.
func (p *parser) parseFields(para *Node, runs []runNode) []Field {
	var fields []Field

	// fldSimple carries its instruction as an attribute and its cached
	// result as nested runs.
	collectSimpleFields(para, &fields)

	const (
		idle = iota
		inCode
		inResult
	)
	state := idle
	var code, result strings.Builder

	for _, rn := range runs {
		for _, c := range rn.node.Children {
			if c.IsText() {
				continue
			}
			switch localName(c.Tag) {
			case "fldChar":
				switch c.Attr("fldCharType") {
				case "begin":
					state = inCode
					code.Reset()
					result.Reset()
				case "separate":
					if state == inCode {
						state = inResult
					}
				case "end":
					if state == inCode || state == inResult {
						fields = append(fields, makeField(code.String(), result.String()))
					}
					state = idle
				}
			case "instrText":
				if state == inCode {
					code.WriteString(c.TextContent())
				}
			case "t":
				if state == inResult {
					result.WriteString(c.TextContent())
				}
			}
		}
	}
	return fields
}

func collectSimpleFields(n *Node, fields *[]Field) {
	for _, c := range n.Children {
		if c.IsText() {
			continue
		}
		if localName(c.Tag) == "fldSimple" {
			*fields = append(*fields, makeField(c.Attr("instr"), c.TextContent()))
			continue
		}
		collectSimpleFields(c, fields)
	}
}

func makeField(code, result string) Field {
	code = strings.TrimSpace(code)
	return Field{
		Code:   code,
		Result: strings.TrimSpace(result),
		Kind:   classifyField(code),
	}
}

// classifyField maps a field instruction to its kind by code prefix.
func classifyField(code string) FieldKind {
	upper := strings.ToUpper(code)
	switch {
	case strings.HasPrefix(upper, "TOC"):
		return FieldTOC
	case strings.HasPrefix(upper, "PAGEREF"):
		return FieldPageRef
	case strings.HasPrefix(upper, "REF"):
		return FieldRef
	case strings.HasPrefix(upper, "HYPERLINK"):
		return FieldHyperlink
	case strings.HasPrefix(upper, "DATE"):
		return FieldDate
	case strings.HasPrefix(upper, "TIME"):
		return FieldTime
	case strings.HasPrefix(upper, "="):
		return FieldFormula
	}
	return FieldOther
}

// hyperlinkFieldTarget extracts the target argument of a HYPERLINK field
// code: the first quoted argument, or the first bare token after the
// keyword. Returns "" when there is none.
func hyperlinkFieldTarget(code string) string {
	rest := strings.TrimSpace(code)
	if !strings.HasPrefix(strings.ToUpper(rest), "HYPERLINK") {
		return ""
	}
	rest = strings.TrimSpace(rest[len("HYPERLINK"):])
	if rest == "" {
		return ""
	}
	if rest[0] == '"' {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return rest[1:]
		}
		return rest[1 : 1+end]
	}
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "\\") {
		// A switch such as \l without a target.
		return ""
	}
	return rest
}
