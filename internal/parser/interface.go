package parser

import "context"

// ServiceSummary is what the CLI shows about one service of a loaded project.
type ServiceSummary struct {
	Name           string
	Image          string
	ContainerName  string
	Ports          []string
	Volumes        []string
	Networks       []string
	DependsOn      map[string]string
	Environment    map[string]string
	HasHealthCheck bool
}

// ProjectSummary is a compose project after interpolation and validation.
type ProjectSummary struct {
	Name     string
	Source   string
	Services []ServiceSummary
	Volumes  []string
	Networks []string
}

// Service returns the summary of the named service, or nil.
func (p *ProjectSummary) Service(name string) *ServiceSummary {
	for i := range p.Services {
		if p.Services[i].Name == name {
			return &p.Services[i]
		}
	}
	return nil
}

// Parser loads compose content the way docker compose would.
type Parser interface {
	// Load interpolates content with env and validates the result
	Load(ctx context.Context, filename string, content []byte, env map[string]string) (*ProjectSummary, error)

	// LoadFile loads a compose file from disk together with its env files
	LoadFile(ctx context.Context, path string, envFiles []string) (*ProjectSummary, error)
}
