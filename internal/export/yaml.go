package export

import (
	"bytes"
	"fmt"

	"github.com/protheus-compose/protheus-compose/internal/schema"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the docker-compose file itself.
type YAMLExporter struct {
	indent int
}

func (e *YAMLExporter) Name() string {
	return "yaml"
}

func (e *YAMLExporter) Export(doc *schema.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range doc.Header {
		fmt.Fprintf(&buf, "# %s\n", line)
	}
	if len(doc.Header) > 0 {
		buf.WriteString("\n")
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(e.indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor: %w", err)
	}
	return buf.Bytes(), nil
}

func NewYAMLExporter() Exporter {
	return &YAMLExporter{indent: 2}
}
