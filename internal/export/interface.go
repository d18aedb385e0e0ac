package export

import "github.com/protheus-compose/protheus-compose/internal/schema"

// Exporter defines the interface for rendering a descriptor document
type Exporter interface {
	// Export converts a document to the target format
	Export(doc *schema.Document) ([]byte, error)

	// Name returns the exporter name (e.g., "yaml", "json")
	Name() string
}

// ByName returns the exporter registered under name.
func ByName(name string) (Exporter, bool) {
	switch name {
	case "yaml", "yml":
		return NewYAMLExporter(), true
	case "json":
		return NewJSONExporter(), true
	}
	return nil, false
}
