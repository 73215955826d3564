package txtast

import "encoding/json"

// nodeJSON is the wire shape the host framework consumes. Children is never
// null; leaf nodes serialize an empty array.
type nodeJSON struct {
	Type     string    `json:"type"`
	Raw      string    `json:"raw"`
	Value    string    `json:"value,omitempty"`
	Depth    int       `json:"depth,omitempty"`
	Lang     string    `json:"lang,omitempty"`
	Title    string    `json:"title,omitempty"`
	Loc      spanJSON  `json:"loc"`
	Range    [2]int    `json:"range"`
	Children []*Node   `json:"children"`
}

type spanJSON struct {
	Start positionJSON `json:"start"`
	End   positionJSON `json:"end"`
}

type positionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// MarshalJSON serializes the node and its subtree in the host framework's
// wire shape.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		Type:  n.Type.String(),
		Raw:   n.Raw,
		Value: n.Value,
		Loc: spanJSON{
			Start: positionJSON{Line: n.Loc.Start.Line, Column: n.Loc.Start.Column},
			End:   positionJSON{Line: n.Loc.End.Line, Column: n.Loc.End.Column},
		},
		Range:    [2]int{n.Range.Start, n.Range.End},
		Children: n.Children(),
	}

	if n.Attrs != nil {
		out.Depth = n.Attrs.Depth
		out.Lang = n.Attrs.Lang
		out.Title = n.Attrs.Title
	}

	if out.Children == nil {
		out.Children = []*Node{}
	}

	return json.Marshal(out)
}
