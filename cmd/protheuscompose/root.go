package protheuscompose

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/settings"
	"github.com/protheus-compose/protheus-compose/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *settings.Settings
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "protheus-compose",
	Short: "Generate docker-compose deployments for TOTVS Protheus",
	Long: `protheus-compose turns a deployment record into a docker-compose descriptor
and its companion .env file:
1. Load - Read the record file, or start from the defaults
2. Validate - Check required fields, volumes and host port conflicts
3. Assemble - Build the ordered service graph (database, license server,
   DBAccess, application servers, SmartView)
4. Export - Write docker-compose-<engine>.yaml and .env`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(settingsPath())
		if err != nil {
			return err
		}
		cfg = s
		logger = settings.SetupLogger(cfg, cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.protheus-compose.yaml)")
}

func settingsPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".protheus-compose.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadRecord reads the record file named by args, or returns the defaults.
func loadRecord(args []string) (config.Record, string, error) {
	if len(args) == 0 {
		return config.Default(), "defaults", nil
	}
	rec, err := config.Load(args[0])
	if err != nil {
		return rec, args[0], err
	}
	return rec, args[0], nil
}

// fail prints err the way every command reports problems and returns it so
// cobra exits non-zero.
func fail(cmd *cobra.Command, title string, err error, suggestion string) error {
	w := cmd.ErrOrStderr()
	if n := ui.Findings(w, err); n > 0 {
		fmt.Fprint(w, ui.FormatError(title, fmt.Sprintf("%d problem(s) found", n), suggestion))
		return err
	}
	fmt.Fprint(w, ui.FormatError(title, err.Error(), suggestion))
	return err
}
