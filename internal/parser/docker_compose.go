package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/compose-spec/compose-go/v2/cli"
	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
)

// ProjectName is used when the content does not come from a directory. Every
// profile is enabled so profiled services are validated too.
const ProjectName = "protheus"

type DockerComposeParser struct{}

func NewDockerComposeParser() Parser {
	return &DockerComposeParser{}
}

func (p *DockerComposeParser) Load(ctx context.Context, filename string, content []byte, env map[string]string) (*ProjectSummary, error) {
	configDetails := types.ConfigDetails{
		WorkingDir: ".",
		ConfigFiles: []types.ConfigFile{
			{
				Filename: filename,
				Content:  content,
			},
		},
		Environment: types.Mapping(env),
	}

	project, err := loader.LoadWithContext(ctx, configDetails, func(options *loader.Options) {
		options.SetProjectName(ProjectName, true)
		options.Profiles = []string{"*"}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load compose project: %w", err)
	}

	return summarize(project, filename), nil
}

func (p *DockerComposeParser) LoadFile(ctx context.Context, path string, envFiles []string) (*ProjectSummary, error) {
	projectName := filepath.Base(filepath.Dir(path))

	options, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithWorkingDirectory(filepath.Dir(path)),
		cli.WithEnvFiles(envFiles...),
		cli.WithDotEnv,
		cli.WithName(projectName),
		cli.WithProfiles([]string{"*"}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project options: %w", err)
	}

	project, err := options.LoadProject(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load compose project: %w", err)
	}

	return summarize(project, path), nil
}

func summarize(project *types.Project, source string) *ProjectSummary {
	summary := &ProjectSummary{
		Name:   project.Name,
		Source: source,
	}

	names := make([]string, 0, len(project.Services))
	for name := range project.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		summary.Services = append(summary.Services, convertService(project.Services[name]))
	}

	for name := range project.Volumes {
		summary.Volumes = append(summary.Volumes, name)
	}
	sort.Strings(summary.Volumes)

	for name := range project.Networks {
		summary.Networks = append(summary.Networks, name)
	}
	sort.Strings(summary.Networks)

	return summary
}

func convertService(composeService types.ServiceConfig) ServiceSummary {
	service := ServiceSummary{
		Name:           composeService.Name,
		Image:          composeService.Image,
		ContainerName:  composeService.ContainerName,
		DependsOn:      make(map[string]string, len(composeService.DependsOn)),
		Environment:    make(map[string]string, len(composeService.Environment)),
		HasHealthCheck: composeService.HealthCheck != nil && !composeService.HealthCheck.Disable,
	}

	for _, port := range composeService.Ports {
		if port.Published == "" {
			service.Ports = append(service.Ports, fmt.Sprintf("%d", port.Target))
			continue
		}
		service.Ports = append(service.Ports, fmt.Sprintf("%s:%d", port.Published, port.Target))
	}

	for _, volume := range composeService.Volumes {
		service.Volumes = append(service.Volumes, volume.Source+":"+volume.Target)
	}

	for network := range composeService.Networks {
		service.Networks = append(service.Networks, network)
	}
	sort.Strings(service.Networks)

	for dep, config := range composeService.DependsOn {
		service.DependsOn[dep] = config.Condition
	}

	for key, value := range composeService.Environment {
		if value == nil {
			continue
		}
		service.Environment[key] = *value
	}

	return service
}
