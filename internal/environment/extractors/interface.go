package extractors

import (
	"context"

	"github.com/protheus-compose/protheus-compose/internal/environment/types"
)

// ContentExtractor reads the variable names one kind of file declares or
// references.
type ContentExtractor interface {
	CanHandle(filename string) bool

	// Confidence orders extractors that accept the same file, highest first.
	Confidence() int

	Extract(ctx context.Context, filename string, content []byte) ([]types.EnvResult, error)
}
