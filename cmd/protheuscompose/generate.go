package protheuscompose

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/protheus-compose/protheus-compose/internal/export"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
	"github.com/protheus-compose/protheus-compose/internal/generator"
	"github.com/protheus-compose/protheus-compose/internal/ui"
	"github.com/spf13/cobra"
)

var (
	outputDir  string
	verifyOut  bool
	toStdout   bool
	alwaysEnv  bool
	descFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate [record-file]",
	Short: "Write the docker-compose descriptor and .env file for a record",
	Long: `Generate validates the record, rejects host port conflicts and writes
docker-compose-<engine>.yaml into the output directory. The .env file is
written as well when the record uses env-file references, or with --env.

Without a record file the built-in defaults are used. --format json writes
the same descriptor as JSON, which docker compose also reads.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from settings, \".\")")
	generateCmd.Flags().BoolVar(&verifyOut, "verify", false, "load the result with compose-go before writing")
	generateCmd.Flags().BoolVar(&toStdout, "stdout", false, "print the artifacts instead of writing them")
	generateCmd.Flags().BoolVar(&alwaysEnv, "env", false, "write the .env file in literal mode too")
	generateCmd.Flags().StringVarP(&descFormat, "format", "f", "yaml", "descriptor format (yaml, json)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	exporter, ok := export.ByName(descFormat)
	if !ok {
		return fail(cmd, "Unknown descriptor format", fmt.Errorf("unsupported format %q", descFormat), "use yaml or json")
	}

	rec, source, err := loadRecord(args)
	if err != nil {
		return fail(cmd, "Failed to load record", err, "run 'protheus-compose init' to create one")
	}
	logger.Debug("loaded record", "source", source)

	gen := generator.New(generator.WithLogger(logger), generator.WithExporter(exporter))
	result, err := gen.Generate(rec)
	if err != nil {
		return fail(cmd, "Cannot generate deployment", err, "fix the fields above and run generate again")
	}

	if verifyOut || cfg.Output.Verify {
		if _, err := gen.Verify(ctx, result); err != nil {
			return fail(cmd, "Generated descriptor does not verify", err, "")
		}
	}

	if toStdout {
		sink := filesystems.NewMemoryFS()
		if err := gen.Write(ctx, sink, result, alwaysEnv); err != nil {
			return fail(cmd, "Failed to render artifacts", err, "")
		}
		for _, name := range sink.Names() {
			content, _ := sink.ReadFile(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", ui.Dim("--- "+name), content)
		}
		return nil
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	if err := gen.Write(ctx, filesystems.NewLocalFS(dir), result, alwaysEnv); err != nil {
		return fail(cmd, "Failed to write artifacts", err, "check that the output directory is writable")
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files(alwaysEnv) {
		ui.Success(out, fmt.Sprintf("wrote %s", filepath.Join(dir, f.Name)))
	}
	return nil
}
