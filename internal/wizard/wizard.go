package wizard

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/protheus-compose/protheus-compose/internal/config"
)

var engineLabels = map[config.DatabaseEngine]string{
	config.EnginePostgres: "PostgreSQL",
	config.EngineMSSQL:    "SQL Server",
	config.EngineOracle:   "Oracle",
}

// Run asks for the choices that shape a deployment, starting from base, and
// returns the resulting record. Fields the wizard does not ask about keep
// their base values.
func Run(base config.Record) (config.Record, error) {
	answers := NewAnswers(base)

	// Step 1: topology
	engineOptions := make([]huh.Option[config.DatabaseEngine], 0, len(config.Engines))
	for _, e := range config.Engines {
		engineOptions = append(engineOptions, huh.NewOption(engineLabels[e], e))
	}

	topology := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[config.DatabaseEngine]().
				Title("Database engine").
				Description("DBAccess is configured for this engine either way.").
				Options(engineOptions...).
				Value(&answers.DatabaseType),
			huh.NewConfirm().
				Title("Use an external database server?").
				Description("No database container is generated when the database lives elsewhere.").
				Value(&answers.UseExternalDatabase),
			huh.NewMultiSelect[string]().
				Title("Optional services").
				Description("SmartView needs the REST server and adds it when missing.").
				Options(
					huh.NewOption("REST application server", OptionRestServer).Selected(slices.Contains(answers.Services, OptionRestServer)),
					huh.NewOption("SmartView", OptionSmartView).Selected(slices.Contains(answers.Services, OptionSmartView)),
				).
				Value(&answers.Services),
			huh.NewConfirm().
				Title("Write values to a .env file?").
				Description("The descriptor then references ${VARIABLES} instead of literal values.").
				Value(&answers.UseEnvFile),
			huh.NewConfirm().
				Title("Use compose profiles?").
				Value(&answers.UseProfiles),
		),
	)
	if err := topology.Run(); err != nil {
		return base, err
	}

	if answers.DatabaseType != base.DatabaseType {
		seeded := base
		seeded.DatabaseType = answers.DatabaseType
		answers.seedDatabase(seeded.Normalize())
	}

	// Step 2: connection and ports
	var groups []*huh.Group
	if answers.UseExternalDatabase {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("External database host").
				Validate(huh.ValidateNotEmpty()).
				Value(&answers.ExternalHost),
			huh.NewInput().
				Title("External database port").
				Validate(validatePort).
				Value(&answers.ExternalPort),
			huh.NewInput().
				Title("External database user").
				Validate(huh.ValidateNotEmpty()).
				Value(&answers.ExternalUsername),
			huh.NewInput().
				Title("External database password").
				EchoMode(huh.EchoModePassword).
				Validate(huh.ValidateNotEmpty()).
				Value(&answers.ExternalPassword),
		))
	} else {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Database password").
				EchoMode(huh.EchoModePassword).
				Validate(huh.ValidateNotEmpty()).
				Value(&answers.DatabasePassword),
			huh.NewInput().
				Title("Database host port").
				Validate(validatePort).
				Value(&answers.DatabasePort),
		))
	}

	ports := []huh.Field{
		huh.NewInput().
			Title("AppServer port").
			Validate(validatePort).
			Value(&answers.AppServerPort),
		huh.NewInput().
			Title("AppServer web port").
			Validate(validatePort).
			Value(&answers.AppServerWebPort),
	}
	if slices.Contains(answers.Services, OptionRestServer) || slices.Contains(answers.Services, OptionSmartView) {
		ports = append(ports, huh.NewInput().
			Title("AppRest REST port").
			Description("SmartView discovers the REST server on this port.").
			Validate(validatePort).
			Value(&answers.RestPort))
	}
	groups = append(groups, huh.NewGroup(ports...))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return base, err
	}

	return answers.Apply(base)
}
