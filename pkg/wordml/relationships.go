package wordml

import "strings"

// Relationship is one entry of a relationships part.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// RelationshipTable maps relationship ids to their targets: hyperlinks,
// media, headers and footers, notes.
type RelationshipTable struct {
	rels map[string]Relationship
}

// newRelationshipTable builds the lookup from the parsed relationships part
// root. A nil root yields an empty table.
func newRelationshipTable(root *Node) *RelationshipTable {
	t := &RelationshipTable{rels: make(map[string]Relationship)}
	if root == nil {
		return t
	}
	for _, rel := range root.ChildrenByTag("Relationship") {
		r := Relationship{
			ID:       rel.Attr("Id"),
			Type:     rel.Attr("Type"),
			Target:   rel.Attr("Target"),
			External: rel.Attr("TargetMode") == "External",
		}
		if r.ID == "" {
			continue
		}
		t.rels[r.ID] = r
	}
	return t
}

// Target returns the target of a relationship id, or "" when unknown.
func (t *RelationshipTable) Target(id string) string {
	return t.rels[id].Target
}

// Lookup returns the full relationship record.
func (t *RelationshipTable) Lookup(id string) (Relationship, bool) {
	r, ok := t.rels[id]
	return r, ok
}

// MediaPath resolves a media relationship target to its package entry path.
// Targets are relative to the word/ directory.
func (t *RelationshipTable) MediaPath(id string) string {
	target := t.rels[id].Target
	if target == "" || t.rels[id].External {
		return ""
	}
	target = strings.TrimPrefix(target, "/")
	if strings.HasPrefix(target, "word/") {
		return target
	}
	return "word/" + target
}
