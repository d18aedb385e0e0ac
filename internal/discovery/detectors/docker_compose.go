package detectors

import (
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/discovery"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
)

type DockerCompose struct{}

func (d *DockerCompose) Name() string { return discovery.KindDescriptor }

// Detect matches the standard compose names and the per-engine
// docker-compose-<engine>.yaml files this tool writes.
func (d *DockerCompose) Detect(filename, fullPath string, info filesystems.FileInfo) bool {
	filename = strings.ToLower(filename)
	if !strings.HasSuffix(filename, ".yml") && !strings.HasSuffix(filename, ".yaml") {
		return false
	}
	stem := strings.TrimSuffix(strings.TrimSuffix(filename, ".yml"), ".yaml")
	return stem == "docker-compose" || stem == "compose" ||
		strings.HasPrefix(stem, "docker-compose-") || strings.HasPrefix(stem, "compose-")
}
