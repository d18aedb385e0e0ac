package detectors

import (
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/discovery"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
)

// Record matches configuration records saved by the init command.
type Record struct{}

func (d *Record) Name() string { return discovery.KindRecord }

func (d *Record) Detect(filename, fullPath string, info filesystems.FileInfo) bool {
	switch strings.ToLower(filename) {
	case "protheus.yaml", "protheus.yml", "protheus.toml":
		return true
	}
	return false
}

// All returns the detectors used by the inspect command, most specific first.
func All() []discovery.Detector {
	return []discovery.Detector{
		&Record{},
		&DockerCompose{},
		&DotEnv{},
	}
}
