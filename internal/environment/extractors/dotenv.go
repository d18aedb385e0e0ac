package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
)

// DotEnvExtractor lists the keys an env file defines.
type DotEnvExtractor struct{}

func NewDotEnvExtractor() *DotEnvExtractor {
	return &DotEnvExtractor{}
}

func (d *DotEnvExtractor) CanHandle(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))
	return strings.HasPrefix(base, ".env") || strings.HasSuffix(base, ".env")
}

func (d *DotEnvExtractor) Confidence() int {
	return 90 // keys are declared, not inferred
}

func (d *DotEnvExtractor) Extract(ctx context.Context, filename string, content []byte) ([]types.EnvResult, error) {
	env, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]types.EnvResult, 0, len(keys))
	for _, key := range keys {
		envType, sensitive := types.ClassifyEnvVar(key, env[key])
		results = append(results, types.EnvResult{
			VarName:    key,
			Value:      env[key],
			Type:       envType,
			Sensitive:  sensitive,
			Source:     fmt.Sprintf("dotenv:%s", filename),
			Confidence: d.Confidence(),
		})
	}

	return results, nil
}
