package wordml

// Document is the parsed intermediate representation of one package: an
// ordered sequence of paragraph and table blocks.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Block is any top-level content block in a document body.
type Block interface {
	isBlock()
	// Section returns the section properties governing the block, if known.
	SectionProps() *SectionProperties
}

// RunStyle is fully resolved text-run formatting. Pointer booleans are
// tri-state: nil means the property was never defined anywhere in the
// cascade, so a lower-precedence layer may still supply it.
type RunStyle struct {
	Bold      *bool   `json:"bold,omitempty"`
	Italic    *bool   `json:"italic,omitempty"`
	Underline *bool   `json:"underline,omitempty"`
	Strike    *bool   `json:"strike,omitempty"`
	Font      string  `json:"font,omitempty"`
	Size      float64 `json:"size,omitempty"` // points
	Color     string  `json:"color,omitempty"` // 6-digit hex, no "#"
	Highlight string  `json:"highlight,omitempty"`
	VertAlign string  `json:"vertAlign,omitempty"` // "superscript" or "subscript"
}

// Run is one contiguous span of identically formatted text.
type Run struct {
	Text     string   `json:"text"`
	Style    RunStyle `json:"style"`
	Inserted bool     `json:"inserted,omitempty"` // inside a w:ins tracked change
}

// Paragraph is one body paragraph with its resolved formatting and extras.
// When every run shares the same bold/italic/underline/size/color/font, those
// values are also mirrored onto Uniform for single-run consumers.
type Paragraph struct {
	IsTable bool   `json:"isTable"`
	Text    string `json:"text"`
	Runs    []Run  `json:"runs"`

	StyleID      string `json:"styleId,omitempty"`
	Alignment    string `json:"alignment,omitempty"` // left, right, center, justify
	HeadingLevel int    `json:"headingLevel,omitempty"`

	SpacingBefore int `json:"spacingBefore,omitempty"` // twips
	SpacingAfter  int `json:"spacingAfter,omitempty"`
	IndentLeft    int `json:"indentLeft,omitempty"`
	IndentRight   int `json:"indentRight,omitempty"`
	IndentFirst   int `json:"indentFirstLine,omitempty"`

	Uniform RunStyle `json:"uniform"`

	Numbering *NumberingRef `json:"numbering,omitempty"`
	Link      string        `json:"link,omitempty"`

	Images    []Image        `json:"images,omitempty"`
	Bookmarks []Bookmark     `json:"bookmarks,omitempty"`
	Fields    []Field        `json:"fields,omitempty"`
	Notes     []NoteRef      `json:"notes,omitempty"`
	Comments  []CommentRange `json:"comments,omitempty"`

	Placeholder bool `json:"placeholder,omitempty"` // stands in for an unrecognized element

	Section *SectionProperties `json:"section,omitempty"`
}

func (p *Paragraph) isBlock() {}

// SectionProps implements Block.
func (p *Paragraph) SectionProps() *SectionProperties { return p.Section }

// Table is a rectangular cell grid with a parallel style grid. Every row in
// Data and Cells has the same length; merge-subsumed cells are present with
// Skip set.
type Table struct {
	IsTable bool         `json:"isTable"`
	Data    [][]string   `json:"data"`
	Cells   [][]CellStyle `json:"cells"`

	ColumnWidths []int        `json:"columnWidths,omitempty"` // twips
	Borders      TableBorders `json:"borders"`
	Layout       string       `json:"layout,omitempty"` // "fixed" or "autofit"
	StyleID      string       `json:"styleId,omitempty"`

	Section *SectionProperties `json:"section,omitempty"`
}

func (t *Table) isBlock() {}

// SectionProps implements Block.
func (t *Table) SectionProps() *SectionProperties { return t.Section }

// CellStyle is the resolved appearance and merge structure of one table cell.
// RowSpan is set (> 1) only on the owning top cell of a vertical merge;
// continuation cells and non-owning columns of a horizontal span carry Skip.
type CellStyle struct {
	Fill      string       `json:"fill,omitempty"`
	Borders   TableBorders `json:"borders"`
	VertAlign string       `json:"vertAlign,omitempty"` // top, center, bottom

	Bold   *bool   `json:"bold,omitempty"`
	Italic *bool   `json:"italic,omitempty"`
	Font   string  `json:"font,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Color  string  `json:"color,omitempty"`

	GridSpan int  `json:"gridSpan,omitempty"` // > 1 when horizontally merged
	RowSpan  int  `json:"rowSpan,omitempty"`  // > 1 on the vertical-merge owner
	ColIndex int  `json:"colIndex"`
	Skip     bool `json:"skip,omitempty"`
}

// BorderEdge is one border line.
type BorderEdge struct {
	Style string `json:"style,omitempty"` // OOXML border value: single, dashed, ...
	Size  int    `json:"size,omitempty"`  // eighths of a point
	Color string `json:"color,omitempty"`
}

// TableBorders holds up to six border edges of a table or cell.
type TableBorders struct {
	Top     *BorderEdge `json:"top,omitempty"`
	Bottom  *BorderEdge `json:"bottom,omitempty"`
	Left    *BorderEdge `json:"left,omitempty"`
	Right   *BorderEdge `json:"right,omitempty"`
	InsideH *BorderEdge `json:"insideH,omitempty"`
	InsideV *BorderEdge `json:"insideV,omitempty"`
}

// Empty reports whether no edge is set.
func (b TableBorders) Empty() bool {
	return b.Top == nil && b.Bottom == nil && b.Left == nil &&
		b.Right == nil && b.InsideH == nil && b.InsideV == nil
}

// SectionProperties is page-layout metadata in twentieths of a point, exactly
// as stored in the source; no unit conversion happens in this layer.
type SectionProperties struct {
	PageWidth   int    `json:"pageWidth,omitempty"`
	PageHeight  int    `json:"pageHeight,omitempty"`
	Orientation string `json:"orientation,omitempty"` // "portrait" or "landscape"

	MarginTop    int `json:"marginTop,omitempty"`
	MarginRight  int `json:"marginRight,omitempty"`
	MarginBottom int `json:"marginBottom,omitempty"`
	MarginLeft   int `json:"marginLeft,omitempty"`
	MarginHeader int `json:"marginHeader,omitempty"`
	MarginFooter int `json:"marginFooter,omitempty"`

	Columns       int `json:"columns,omitempty"`
	ColumnSpacing int `json:"columnSpacing,omitempty"`
}

// NumberingRef ties a paragraph to its list definition.
type NumberingRef struct {
	NumID  string `json:"numId"`
	Level  int    `json:"level"`
	Format string `json:"format,omitempty"` // numFmt keyword: decimal, bullet, ...
	Text   string `json:"text,omitempty"`   // literal lvlText, e.g. "%1."
}

// NumberingLevel is one level of an abstract numbering definition.
type NumberingLevel struct {
	Format string `json:"format"`
	Text   string `json:"text"`
}

// Image is an inline image referenced from a run. Width and Height are pixel
// dimensions sniffed from the media bytes when the package is available.
type Image struct {
	RelID  string `json:"relId"`
	Target string `json:"target,omitempty"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Bookmark is a named bookmark anchored in a paragraph.
type Bookmark struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// FieldKind classifies a field by its code prefix.
type FieldKind string

const (
	FieldTOC       FieldKind = "toc"
	FieldPageRef   FieldKind = "pageref"
	FieldRef       FieldKind = "ref"
	FieldHyperlink FieldKind = "hyperlink"
	FieldDate      FieldKind = "date"
	FieldTime      FieldKind = "time"
	FieldFormula   FieldKind = "formula"
	FieldOther     FieldKind = "other"
)

// Field is a simple or complex field: its instruction code, cached result
// text, and classification.
type Field struct {
	Code   string    `json:"code"`
	Result string    `json:"result,omitempty"`
	Kind   FieldKind `json:"kind"`
}

// NoteRef is a footnote or endnote reference mark.
type NoteRef struct {
	Kind string `json:"kind"` // "footnote" or "endnote"
	ID   string `json:"id"`
}

// CommentRange marks the start or end of a commented range.
type CommentRange struct {
	ID    string `json:"id"`
	Start bool   `json:"start"`
}
