package protheuscompose

import (
	"fmt"
	"time"

	"github.com/protheus-compose/protheus-compose/internal/environment"
	"github.com/protheus-compose/protheus-compose/internal/generator"
	"github.com/spf13/cobra"
)

var maskSecrets bool

var envCmd = &cobra.Command{
	Use:   "env [record-file]",
	Short: "Print the .env file for a record",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, _, err := loadRecord(args)
		if err != nil {
			return fail(cmd, "Failed to load record", err, "")
		}

		result, err := generator.New(generator.WithLogger(logger)).Generate(rec)
		if err != nil {
			return fail(cmd, "Cannot generate deployment", err, "")
		}

		envFile := environment.AssembleEnvFile(result.Record, time.Now())
		if maskSecrets {
			envFile = envFile.Masked()
		}
		fmt.Fprint(cmd.OutOrStdout(), envFile.String())
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&maskSecrets, "mask", false, "hide passwords and other secrets")
	rootCmd.AddCommand(envCmd)
}
