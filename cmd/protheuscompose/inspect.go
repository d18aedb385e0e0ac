package protheuscompose

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/discovery"
	"github.com/protheus-compose/protheus-compose/internal/discovery/detectors"
	"github.com/protheus-compose/protheus-compose/internal/environment"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
	"github.com/protheus-compose/protheus-compose/internal/parser"
	"github.com/protheus-compose/protheus-compose/internal/ui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "Load generated deployments in a directory the way docker compose would",
	Long: `Inspect finds compose descriptors, .env files and record files under dir,
loads every descriptor with the .env file beside it and prints its services.
References without a key and keys nobody references are reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	fs := filesystems.NewLocalFS(dir)

	scanner := discovery.NewScannerWithDetectors(fs, detectors.All())
	configs, err := scanner.DiscoverConfigs(".")
	if err != nil {
		return fail(cmd, "Discovery failed", err, "")
	}
	logger.Debug("discovered files", "dir", dir, "count", len(configs))

	for _, c := range configs {
		if c.Type == discovery.KindRecord {
			fmt.Fprintf(out, "%s %s\n", ui.Dim("record"), c.Path)
		}
	}

	deployments := discovery.Deployments(fs, configs)
	if len(deployments) == 0 {
		ui.Warn(out, fmt.Sprintf("no compose descriptors found in %s", dir))
		return nil
	}

	p := parser.NewDockerComposeParser()
	extractor := environment.NewExtractor()
	problems := 0

	for _, d := range deployments {
		fmt.Fprintf(out, "\n%s\n", ui.Bold("=== "+d.Descriptor+" ==="))

		var envFiles []string
		if d.EnvFile != "" {
			envFiles = append(envFiles, filepath.Join(dir, d.EnvFile))
		}

		project, err := p.LoadFile(ctx, filepath.Join(dir, d.Descriptor), envFiles)
		if err != nil {
			ui.ValidationErr(out, d.Descriptor, err.Error(), "")
			problems++
			continue
		}
		printProject(out, project)

		if d.EnvFile == "" {
			continue
		}

		descriptor, err := fs.ReadFile(d.Descriptor)
		if err != nil {
			return fail(cmd, "Failed to read descriptor", err, "")
		}
		envContent, err := fs.ReadFile(d.EnvFile)
		if err != nil {
			return fail(cmd, "Failed to read env file", err, "")
		}

		var keys []types.EnvResult
		for result := range extractor.Extract(ctx, d.EnvFile, envContent) {
			keys = append(keys, result)
		}
		printKeys(out, d.EnvFile, keys)

		report, err := environment.Audit(ctx, descriptor, envContent)
		if err != nil {
			return fail(cmd, "Audit failed", err, "")
		}
		for _, name := range report.Orphans {
			ui.ValidationErr(out, name, "referenced but not defined in "+d.EnvFile, "")
			problems++
		}
		if len(report.References) > 0 && len(report.Unused) > 0 {
			ui.Warn(out, fmt.Sprintf("unused keys in %s: %s", d.EnvFile, strings.Join(report.Unused, ", ")))
		}
		if report.Consistent() {
			ui.ValidationOK(out, d.EnvFile, fmt.Sprintf("%d references, all defined", len(report.References)))
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problems found", problems)
	}
	return nil
}

func printProject(w io.Writer, project *parser.ProjectSummary) {
	rows := make([][]string, 0, len(project.Services))
	for _, svc := range project.Services {
		deps := make([]string, 0, len(svc.DependsOn))
		for name, condition := range svc.DependsOn {
			deps = append(deps, fmt.Sprintf("%s (%s)", name, strings.TrimPrefix(condition, "service_")))
		}
		sort.Strings(deps)

		health := "-"
		if svc.HasHealthCheck {
			health = "yes"
		}
		rows = append(rows, []string{
			svc.Name,
			svc.Image,
			strings.Join(svc.Ports, " "),
			health,
			strings.Join(deps, ", "),
		})
	}
	fmt.Fprint(w, ui.Table([]string{"SERVICE", "IMAGE", "PORTS", "HEALTH", "DEPENDS ON"}, rows))
	fmt.Fprintf(w, "  %s %s\n", ui.Dim("volumes:"), strings.Join(project.Volumes, ", "))
	fmt.Fprintf(w, "  %s %s\n", ui.Dim("networks:"), strings.Join(project.Networks, ", "))
}

func printKeys(w io.Writer, source string, keys []types.EnvResult) {
	secrets := 0
	for _, k := range keys {
		if k.Sensitive {
			secrets++
		}
	}
	fmt.Fprintf(w, "  %s %d keys, %d secret\n", ui.Dim(source+":"), len(keys), secrets)
}
