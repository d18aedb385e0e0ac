package environment

import (
	"context"
	"fmt"
	"slices"

	"github.com/protheus-compose/protheus-compose/internal/environment/extractors"
)

// AuditReport compares the references of a descriptor with the keys of its
// env file.
type AuditReport struct {
	References []string
	Keys       []string
	// Orphans are referenced but not defined.
	Orphans []string
	// Unused are defined but never referenced.
	Unused []string
}

// Consistent reports whether every reference has a key and every key is used.
func (r *AuditReport) Consistent() bool {
	return len(r.Orphans) == 0 && len(r.Unused) == 0
}

// Audit cross-checks a reference-mode descriptor against an env file.
func Audit(ctx context.Context, descriptor, envFile []byte) (*AuditReport, error) {
	refs, err := extractors.NewComposeReferenceExtractor().Extract(ctx, "docker-compose.yaml", descriptor)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor references: %w", err)
	}
	keys, err := extractors.NewDotEnvExtractor().Extract(ctx, ".env", envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file keys: %w", err)
	}

	report := &AuditReport{}
	for _, r := range refs {
		report.References = append(report.References, r.VarName)
	}
	for _, k := range keys {
		report.Keys = append(report.Keys, k.VarName)
	}

	// Both lists come back sorted from the extractors.
	for _, name := range report.References {
		if _, found := slices.BinarySearch(report.Keys, name); !found {
			report.Orphans = append(report.Orphans, name)
		}
	}
	for _, name := range report.Keys {
		if _, found := slices.BinarySearch(report.References, name); !found {
			report.Unused = append(report.Unused, name)
		}
	}

	return report, nil
}
