package export

import (
	"encoding/json"

	"github.com/protheus-compose/protheus-compose/internal/schema"
)

type JSONExporter struct{}

func (e *JSONExporter) Name() string {
	return "json"
}

func (e *JSONExporter) Export(doc *schema.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}
