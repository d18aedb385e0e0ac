package protheuscompose

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/filesystems"
	"github.com/protheus-compose/protheus-compose/internal/ui"
	"github.com/protheus-compose/protheus-compose/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	initDefaults bool
	initFormat   string
	initPath     string
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a record file interactively",
	Long: `Init asks for the database engine, optional services and the main ports,
then writes a record file that generate can read. Use --defaults to skip the
questions and write the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write the defaults without asking")
	initCmd.Flags().StringVar(&initFormat, "format", "yaml", "record format: yaml or toml")
	initCmd.Flags().StringVarP(&initPath, "output", "o", "", "record file (default protheus.<format>)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing record file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if initFormat != "yaml" && initFormat != "toml" {
		return fail(cmd, "Unsupported format", fmt.Errorf("format %q", initFormat), "use yaml or toml")
	}

	path := initPath
	if path == "" {
		path = "protheus." + initFormat
	}
	if _, err := os.Stat(path); err == nil && !initForce {
		return fail(cmd, "Record file exists", fmt.Errorf("%s already exists", path), "pass --force to overwrite it")
	}

	rec := config.Default()
	if !initDefaults {
		answered, err := wizard.Run(rec)
		if err != nil {
			return fail(cmd, "Wizard aborted", err, "")
		}
		rec = answered
	}

	if err := rec.Validate(); err != nil {
		return fail(cmd, "Record is not valid", err, "")
	}

	content, err := config.Encode(rec, initFormat)
	if err != nil {
		return fail(cmd, "Failed to encode record", err, "")
	}

	fs := filesystems.NewLocalFS(filepath.Dir(path))
	if err := fs.WriteFile(filepath.Base(path), content); err != nil {
		return fail(cmd, "Failed to write record", err, "")
	}

	out := cmd.OutOrStdout()
	ui.Success(out, fmt.Sprintf("wrote %s", path))
	fmt.Fprintln(out, ui.Hint(fmt.Sprintf("next: protheus-compose generate %s", path)))
	return nil
}
