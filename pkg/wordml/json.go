package wordml

import "github.com/bytedance/sonic"

// MarshalJSON serializes the document's block sequence for structural
// consumers. Paragraphs and tables are distinguished by their isTable
// field, mirroring the wire shape of the streaming transport.
func MarshalJSON(doc *Document) ([]byte, error) {
	return sonic.ConfigStd.Marshal(doc)
}

// MarshalJSONIndent is MarshalJSON with two-space indentation.
func MarshalJSONIndent(doc *Document) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(doc, "", "  ")
}
