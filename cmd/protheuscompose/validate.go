package protheuscompose

import (
	"fmt"

	"github.com/protheus-compose/protheus-compose/internal/ports"
	"github.com/protheus-compose/protheus-compose/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [record-file]",
	Short: "Check a record for missing fields and host port conflicts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rec, source, err := loadRecord(args)
	if err != nil {
		return fail(cmd, "Failed to load record", err, "")
	}
	rec = rec.Normalize()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Bold(fmt.Sprintf("Validating %s...", source)))

	failed := 0
	if err := rec.Validate(); err != nil {
		failed += ui.Findings(out, err)
	} else {
		ui.ValidationOK(out, "fields", "all required fields set")
	}

	claims := ports.Claims(rec)
	if err := ports.Validate(rec); err != nil {
		failed += ui.Findings(out, err)
	} else {
		ui.ValidationOK(out, "ports", fmt.Sprintf("%d host ports, no conflicts", len(claims)))
	}

	fmt.Fprintln(out)
	if failed > 0 {
		return fmt.Errorf("%d validation errors", failed)
	}
	ui.Success(out, "record is valid")
	return nil
}
