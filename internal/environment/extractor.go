package environment

import (
	"cmp"
	"context"
	"slices"

	"github.com/protheus-compose/protheus-compose/internal/environment/extractors"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
)

// Extractor runs the content extractors that recognize a file name.
type Extractor struct {
	extractors []extractors.ContentExtractor
}

// NewExtractor knows compose descriptors and dotenv files.
func NewExtractor() *Extractor {
	return &Extractor{
		extractors: []extractors.ContentExtractor{
			extractors.NewComposeReferenceExtractor(),
			extractors.NewDotEnvExtractor(),
		},
	}
}

// Extract streams what the matching extractors find in content. An extractor
// that fails to parse the file is skipped. The channel is closed when all
// matching extractors are done or ctx ends.
func (e *Extractor) Extract(ctx context.Context, filename string, content []byte) <-chan types.EnvResult {
	out := make(chan types.EnvResult, 32)

	go func() {
		defer close(out)
		for _, x := range e.matching(filename) {
			found, err := x.Extract(ctx, filename, content)
			if err != nil {
				continue
			}
			for _, r := range found {
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (e *Extractor) matching(filename string) []extractors.ContentExtractor {
	var matched []extractors.ContentExtractor
	for _, x := range e.extractors {
		if x.CanHandle(filename) {
			matched = append(matched, x)
		}
	}
	slices.SortStableFunc(matched, func(a, b extractors.ContentExtractor) int {
		return cmp.Compare(b.Confidence(), a.Confidence())
	})
	return matched
}
