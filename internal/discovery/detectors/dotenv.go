package detectors

import (
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/discovery"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
)

type DotEnv struct{}

func (d *DotEnv) Name() string { return discovery.KindEnvFile }

func (d *DotEnv) Detect(filename, fullPath string, info filesystems.FileInfo) bool {
	filename = strings.ToLower(filename)
	return filename == ".env" || strings.HasPrefix(filename, ".env.")
}
