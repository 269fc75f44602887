package formatter

import (
	"bytes"
	"encoding/json"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/visualization"
)

type documentBuilder struct {
	indent string
}

func newDocumentBuilder() *documentBuilder { return &documentBuilder{indent: "  "} }

// NewDocumentBuilder creates a builder producing two-space indented JSON
func NewDocumentBuilder() *documentBuilder {
	return newDocumentBuilder()
}

// BuildJSON serializes the visualization document
func (db *documentBuilder) BuildJSON(doc *visualization.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", db.indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
