package discovery

import (
	"sort"

	"github.com/protheus-compose/protheus-compose/internal/filesystems"
)

// Kinds reported by the bundled detectors.
const (
	KindDescriptor = "docker-compose"
	KindEnvFile    = "dotenv"
	KindRecord     = "record"
)

// ConfigFile represents a discovered deployment artifact
type ConfigFile struct {
	Path string
	Type string
}

// Detector defines the interface for artifact detection
type Detector interface {
	Name() string
	Detect(filename, fullPath string, info filesystems.FileInfo) bool
}

// Scanner handles recursive discovery using registered detectors
type Scanner struct {
	fs        filesystems.FileSystem
	detectors []Detector
}

func NewScanner(fs filesystems.FileSystem) *Scanner {
	return &Scanner{fs: fs, detectors: make([]Detector, 0)}
}

func (s *Scanner) RegisterDetector(detector Detector) {
	s.detectors = append(s.detectors, detector)
}

func (s *Scanner) DiscoverConfigs(rootPath string) ([]ConfigFile, error) {
	var configs []ConfigFile

	err := s.fs.Walk(rootPath, func(path string, info filesystems.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != rootPath && info.Name() == ".git" {
				return filesystems.SkipDir
			}
			return nil
		}

		for _, detector := range s.detectors {
			if detector.Detect(info.Name(), path, info) {
				configs = append(configs, ConfigFile{
					Path: path,
					Type: detector.Name(),
				})
				break // first match wins
			}
		}

		return nil
	})

	sort.Slice(configs, func(i, j int) bool { return configs[i].Path < configs[j].Path })
	return configs, err
}

// NewScannerWithDetectors creates a scanner with the provided detectors
func NewScannerWithDetectors(fs filesystems.FileSystem, detectors []Detector) *Scanner {
	scanner := NewScanner(fs)
	for _, detector := range detectors {
		scanner.RegisterDetector(detector)
	}
	return scanner
}

// Deployment is a descriptor together with the env file beside it, if any.
type Deployment struct {
	Descriptor string
	EnvFile    string
}

// Deployments pairs every discovered descriptor with the ".env" file in its
// directory.
func Deployments(fs filesystems.FileSystem, configs []ConfigFile) []Deployment {
	envFiles := make(map[string]string)
	for _, c := range configs {
		if c.Type == KindEnvFile && fs.Base(c.Path) == ".env" {
			envFiles[fs.Dir(c.Path)] = c.Path
		}
	}

	var deployments []Deployment
	for _, c := range configs {
		if c.Type != KindDescriptor {
			continue
		}
		deployments = append(deployments, Deployment{
			Descriptor: c.Path,
			EnvFile:    envFiles[fs.Dir(c.Path)],
		})
	}
	return deployments
}
