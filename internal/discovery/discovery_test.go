package discovery_test

import (
	"testing"

	"github.com/protheus-compose/protheus-compose/internal/discovery"
	"github.com/protheus-compose/protheus-compose/internal/discovery/detectors"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectors(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"docker-compose.yml", discovery.KindDescriptor},
		{"docker-compose.yaml", discovery.KindDescriptor},
		{"compose.yaml", discovery.KindDescriptor},
		{"docker-compose-postgres.yaml", discovery.KindDescriptor},
		{"Docker-Compose-MSSQL.YML", discovery.KindDescriptor},
		{"compose-dev.yml", discovery.KindDescriptor},
		{".env", discovery.KindEnvFile},
		{".env.production", discovery.KindEnvFile},
		{"protheus.yaml", discovery.KindRecord},
		{"Protheus.toml", discovery.KindRecord},
		{"protheus.yml", discovery.KindRecord},
		{"docker-compose.json", ""},
		{"composer.yaml", ""},
		{"values.yaml", ""},
		{"env", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := ""
			for _, d := range detectors.All() {
				if d.Detect(tt.filename, tt.filename, nil) {
					got = d.Name()
					break
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanner_DiscoverConfigs(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("protheus.yaml", []byte("database_type: postgres"))
	mfs.AddFile("prod/docker-compose-postgres.yaml", []byte("services: {}"))
	mfs.AddFile("prod/.env", []byte("TZ=UTC"))
	mfs.AddFile("dev/compose.yaml", []byte("services: {}"))
	mfs.AddFile("dev/README.md", []byte("# dev"))
	mfs.AddFile(".git/compose.yaml", []byte("ignored"))

	scanner := discovery.NewScannerWithDetectors(mfs, detectors.All())
	configs, err := scanner.DiscoverConfigs(".")
	require.NoError(t, err)

	assert.Equal(t, []discovery.ConfigFile{
		{Path: "dev/compose.yaml", Type: discovery.KindDescriptor},
		{Path: "prod/.env", Type: discovery.KindEnvFile},
		{Path: "prod/docker-compose-postgres.yaml", Type: discovery.KindDescriptor},
		{Path: "protheus.yaml", Type: discovery.KindRecord},
	}, configs)
}

func TestScanner_NoDetectors(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("compose.yaml", []byte("services: {}"))

	configs, err := discovery.NewScanner(mfs).DiscoverConfigs(".")
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestDeployments(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	configs := []discovery.ConfigFile{
		{Path: "dev/compose.yaml", Type: discovery.KindDescriptor},
		{Path: "prod/.env", Type: discovery.KindEnvFile},
		{Path: "prod/.env.local", Type: discovery.KindEnvFile},
		{Path: "prod/docker-compose-postgres.yaml", Type: discovery.KindDescriptor},
		{Path: "protheus.yaml", Type: discovery.KindRecord},
	}

	assert.Equal(t, []discovery.Deployment{
		{Descriptor: "dev/compose.yaml"},
		{Descriptor: "prod/docker-compose-postgres.yaml", EnvFile: "prod/.env"},
	}, discovery.Deployments(mfs, configs))
}
