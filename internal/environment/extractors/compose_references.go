package extractors

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"gopkg.in/yaml.v3"
)

// referencePattern matches ${VAR} and ${VAR:-default}.
var referencePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-[^}]*)?\}`)

// ComposeReferenceExtractor lists the ${VAR} references a compose file makes.
// Only YAML values are scanned, comments are ignored.
type ComposeReferenceExtractor struct{}

func NewComposeReferenceExtractor() *ComposeReferenceExtractor {
	return &ComposeReferenceExtractor{}
}

func (d *ComposeReferenceExtractor) CanHandle(filename string) bool {
	name := strings.ToLower(filename)
	return strings.Contains(name, "compose") && (strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml"))
}

func (d *ComposeReferenceExtractor) Confidence() int {
	return 80
}

func (d *ComposeReferenceExtractor) Extract(ctx context.Context, filename string, content []byte) ([]types.EnvResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	seen := make(map[string]bool)
	walkScalars(&root, func(value string) {
		// $$ is an escaped dollar, never the start of a reference.
		value = strings.ReplaceAll(value, "$$", "")
		for _, match := range referencePattern.FindAllStringSubmatch(value, -1) {
			seen[match[1]] = true
		}
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]types.EnvResult, 0, len(names))
	for _, name := range names {
		_, sensitive := types.ClassifyEnvVar(name, "")
		results = append(results, types.EnvResult{
			VarName:    name,
			Value:      types.Symbol(name).Ref(),
			Type:       types.EnvTypeReference,
			Sensitive:  sensitive,
			Source:     fmt.Sprintf("docker-compose:%s", filename),
			Confidence: d.Confidence(),
		})
	}
	return results, nil
}

func walkScalars(node *yaml.Node, fn func(string)) {
	if node == nil {
		return
	}
	if node.Kind == yaml.ScalarNode {
		fn(node.Value)
		return
	}
	for _, child := range node.Content {
		walkScalars(child, fn)
	}
}
