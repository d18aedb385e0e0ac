package compose

import (
	"fmt"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// EnvFileName is the env file a reference-mode descriptor reads.
const EnvFileName = ".env"

// Assemble builds the descriptor for rec. It normalizes rec first, so the
// SmartView-implies-REST-server rule holds for any caller. Assemble does no
// I/O and returns the same document for the same record.
func Assemble(rec config.Record) (*schema.Document, error) {
	rec = rec.Normalize()

	c, err := newBuildContext(rec)
	if err != nil {
		return nil, err
	}

	doc := schema.NewDocument()
	if rec.LocalDatabase() {
		doc.AddService(buildDatabase(c))
	}
	doc.AddService(buildLicenseServer(c))
	doc.AddService(buildDBAccess(c))
	doc.AddService(buildAppServer(c, primaryRole(rec)))
	if rec.IncludeRestServer {
		doc.AddService(buildAppServer(c, secondaryRole(rec)))
	}
	if rec.IncludeSmartView {
		doc.AddService(buildSmartView(c))
	}

	ordered, err := DependencyOrder(doc.Services)
	if err != nil {
		return nil, err
	}
	doc.Services = ordered

	doc.Volumes = CollectVolumes(doc.Services)
	doc.Networks[rec.NetworkName] = schema.Network{Driver: "bridge"}

	if rec.UseEnvFile {
		doc.Header = []string{
			"TOTVS Protheus Docker Compose",
			fmt.Sprintf("Values are read from the %s file next to this descriptor.", EnvFileName),
		}
	}

	return doc, nil
}

// CollectVolumes returns the named volumes the services mount. Bind mounts are
// host paths and never appear here; a volume shared by two services appears once.
func CollectVolumes(services schema.Services) map[string]schema.Volume {
	volumes := make(map[string]schema.Volume)
	for _, svc := range services {
		for _, m := range svc.Mounts {
			if m.Volume == "" {
				continue
			}
			volumes[m.Volume] = schema.Volume{Driver: "local"}
		}
	}
	return volumes
}
