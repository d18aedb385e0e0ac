// Package generator turns a configuration record into a docker-compose
// descriptor and its env file.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/protheus-compose/protheus-compose/internal/compose"
	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment"
	"github.com/protheus-compose/protheus-compose/internal/export"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
	"github.com/protheus-compose/protheus-compose/internal/parser"
	"github.com/protheus-compose/protheus-compose/internal/ports"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// Result holds both artifacts of one generation run.
type Result struct {
	Record         config.Record
	Document       *schema.Document
	Descriptor     []byte
	DescriptorName string
	EnvFile        []byte
	EnvFileName    string
}

// Files returns the artifacts to write. The env file is included in
// reference mode, or always when withEnv is set.
func (r *Result) Files(withEnv bool) []filesystems.File {
	files := []filesystems.File{{Name: r.DescriptorName, Content: r.Descriptor}}
	if withEnv || r.Record.UseEnvFile {
		files = append(files, filesystems.File{Name: r.EnvFileName, Content: r.EnvFile})
	}
	return files
}

// DescriptorName is the file name used for a record's descriptor.
func DescriptorName(engine config.DatabaseEngine) string {
	return fmt.Sprintf("docker-compose-%s.yaml", engine)
}

type Generator struct {
	logger   *slog.Logger
	now      func() time.Time
	exporter export.Exporter
	parser   parser.Parser
}

type Option func(*Generator)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithClock sets the time stamped into the env file header.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func WithExporter(exporter export.Exporter) Option {
	return func(g *Generator) {
		g.exporter = exporter
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
		exporter: export.NewYAMLExporter(),
		parser:   parser.NewDockerComposeParser(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates rec and renders both artifacts. Record problems come back
// wrapping config.ErrConfigurationInvalid or ports.ErrPortConflict.
func (g *Generator) Generate(rec config.Record) (*Result, error) {
	rec = rec.Normalize()

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := ports.Validate(rec); err != nil {
		return nil, err
	}

	doc, err := compose.Assemble(rec)
	if err != nil {
		return nil, err
	}
	for _, svc := range doc.Services {
		g.logger.Debug("built service",
			"service", svc.Name,
			"container", svc.ContainerName,
			"depends_on", len(svc.DependsOn),
		)
	}

	descriptor, err := g.exporter.Export(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render descriptor: %w", err)
	}

	envFile := environment.AssembleEnvFile(rec, g.now())

	result := &Result{
		Record:         rec,
		Document:       doc,
		Descriptor:     descriptor,
		DescriptorName: DescriptorName(rec.DatabaseType),
		EnvFile:        envFile.Bytes(),
		EnvFileName:    compose.EnvFileName,
	}

	g.logger.Info("generated deployment",
		"database", rec.DatabaseType,
		"external_database", rec.UseExternalDatabase,
		"mode", environment.ModeFor(rec.UseEnvFile),
		"services", len(doc.Services),
		"volumes", len(doc.Volumes),
	)

	return result, nil
}

// Verification is what docker compose would see for a generated result.
type Verification struct {
	Project *parser.ProjectSummary
	Audit   *environment.AuditReport
}

// Verify loads the descriptor with the env file values the way docker compose
// does and, in reference mode, checks that references and keys match.
func (g *Generator) Verify(ctx context.Context, result *Result) (*Verification, error) {
	values, err := environment.ParseEnvFile(result.EnvFile)
	if err != nil {
		return nil, err
	}

	project, err := g.parser.Load(ctx, result.DescriptorName, result.Descriptor, values)
	if err != nil {
		return nil, fmt.Errorf("descriptor does not load: %w", err)
	}

	v := &Verification{Project: project}
	if !result.Record.UseEnvFile {
		return v, nil
	}

	report, err := environment.Audit(ctx, result.Descriptor, result.EnvFile)
	if err != nil {
		return nil, err
	}
	v.Audit = report
	if !report.Consistent() {
		return v, fmt.Errorf("descriptor and env file disagree: %d orphan references, %d unused keys",
			len(report.Orphans), len(report.Unused))
	}

	g.logger.Debug("verified deployment", "project", project.Name, "services", len(project.Services))
	return v, nil
}

// Write stores the artifacts of result on fs.
func (g *Generator) Write(ctx context.Context, fs filesystems.FileSystem, result *Result, withEnv bool) error {
	files := result.Files(withEnv)
	if err := filesystems.WriteAll(ctx, fs, files); err != nil {
		return err
	}
	for _, f := range files {
		g.logger.Info("wrote artifact", "file", f.Name, "bytes", len(f.Content))
	}
	return nil
}
