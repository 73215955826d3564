package document

import (
	"encoding/json"
	"fmt"
)

// DTO types for the JSON exchange format the processor sidecar emits
// (one object per element, blocks nested under "blocks").

type blockDTO struct {
	Context    string            `json:"context"`
	LineNumber int               `json:"lineno"`
	Source     string            `json:"source,omitempty"`
	Converted  string            `json:"converted,omitempty"`
	Title      string            `json:"title,omitempty"`
	RawTitle   string            `json:"raw_title,omitempty"`
	Style      string            `json:"style,omitempty"`
	Level      *int              `json:"level,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Blocks     []*blockDTO       `json:"blocks,omitempty"`
	Rows       *rowsDTO          `json:"rows,omitempty"`
	Pairs      []*pairDTO        `json:"pairs,omitempty"`
}

type rowsDTO struct {
	Head [][]*cellDTO `json:"head,omitempty"`
	Body [][]*cellDTO `json:"body,omitempty"`
	Foot [][]*cellDTO `json:"foot,omitempty"`
}

type cellDTO struct {
	LineNumber int       `json:"lineno"`
	Source     string    `json:"source,omitempty"`
	Text       string    `json:"text,omitempty"`
	Style      string    `json:"style,omitempty"`
	Document   *blockDTO `json:"document,omitempty"`
}

type pairDTO struct {
	Terms       []*blockDTO `json:"terms,omitempty"`
	Description *blockDTO   `json:"description,omitempty"`
}

// DecodeJSON decodes a processor-emitted element tree. The root element must
// carry the "document" context.
func DecodeJSON(data []byte) (Element, error) {
	var dto blockDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode element tree: %w", err)
	}

	if dto.Context != ContextDocument {
		return nil, fmt.Errorf("decode element tree: root context is %q, want %q",
			dto.Context, ContextDocument)
	}

	return dto.toBlock(), nil
}

func (d *blockDTO) toBlock() *Block {
	block := &Block{
		ContextTag:    d.Context,
		Line:          d.LineNumber,
		SourceText:    d.Source,
		ConvertedText: d.Converted,
		TitleText:     d.Title,
		RawTitleText:  d.RawTitle,
		StyleName:     d.Style,
		AttributeMap:  d.Attributes,
	}

	if d.Level != nil {
		block.LevelValue = *d.Level
		block.HasLevel = true
	}

	for _, child := range d.Blocks {
		block.Elements = append(block.Elements, child.toBlock())
	}

	if d.Rows != nil {
		block.HeadRows = toCellRows(d.Rows.Head)
		block.BodyRows = toCellRows(d.Rows.Body)
		block.FootRows = toCellRows(d.Rows.Foot)
	}

	for _, pair := range d.Pairs {
		converted := DescriptionPair{}
		for _, term := range pair.Terms {
			converted.Terms = append(converted.Terms, term.toBlock())
		}
		if pair.Description != nil {
			converted.Description = pair.Description.toBlock()
		}
		block.ItemPairs = append(block.ItemPairs, converted)
	}

	return block
}

func toCellRows(rows [][]*cellDTO) [][]Cell {
	if rows == nil {
		return nil
	}

	out := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, 0, len(row))
		for _, cell := range row {
			converted := &TableCell{
				Line:         cell.LineNumber,
				SourceText:   cell.Source,
				RenderedText: cell.Text,
				StyleName:    cell.Style,
			}
			if cell.Document != nil {
				converted.Inner = cell.Document.toBlock()
			}
			cells = append(cells, converted)
		}
		out = append(out, cells)
	}

	return out
}
