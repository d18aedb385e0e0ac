package wizard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/config"
)

// Answers holds what the wizard asks for. Numeric fields are kept as text
// while the form runs and converted by Apply.
type Answers struct {
	DatabaseType        config.DatabaseEngine
	UseExternalDatabase bool
	UseEnvFile          bool
	UseProfiles         bool
	Services            []string

	DatabasePassword string
	DatabasePort     string

	ExternalHost     string
	ExternalPort     string
	ExternalUsername string
	ExternalPassword string

	AppServerPort    string
	AppServerWebPort string
	RestPort         string
}

// Optional service keys offered by the wizard.
const (
	OptionRestServer = "apprest"
	OptionSmartView  = "smartview"
)

// NewAnswers seeds the answers from rec so that accepting every prompt
// reproduces rec.
func NewAnswers(rec config.Record) *Answers {
	a := &Answers{
		DatabaseType:        rec.DatabaseType,
		UseExternalDatabase: rec.UseExternalDatabase,
		UseEnvFile:          rec.UseEnvFile,
		UseProfiles:         rec.UseProfiles,
		ExternalHost:        rec.External.Host,
		ExternalPort:        portText(rec.External.Port),
		ExternalUsername:    rec.External.Username,
		ExternalPassword:    rec.External.Password,
		AppServerPort:       portText(rec.AppServer.Port),
		AppServerWebPort:    portText(rec.AppServer.WebPort),
		RestPort:            portText(rec.AppRest.RestPort),
	}
	if rec.IncludeRestServer {
		a.Services = append(a.Services, OptionRestServer)
	}
	if rec.IncludeSmartView {
		a.Services = append(a.Services, OptionSmartView)
	}
	a.seedDatabase(rec)
	return a
}

func (a *Answers) seedDatabase(rec config.Record) {
	switch a.DatabaseType {
	case config.EngineMSSQL:
		a.DatabasePassword = rec.MSSQL.SAPassword
		a.DatabasePort = portText(rec.MSSQL.ExternalPort)
	case config.EngineOracle:
		a.DatabasePassword = rec.Oracle.Password
		a.DatabasePort = portText(rec.Oracle.ExternalPort)
	default:
		a.DatabasePassword = rec.Postgres.Password
		a.DatabasePort = portText(rec.Postgres.ExternalPort)
	}
}

// Apply writes the answers over rec and returns the normalized result.
func (a *Answers) Apply(rec config.Record) (config.Record, error) {
	rec.DatabaseType = a.DatabaseType
	rec.UseExternalDatabase = a.UseExternalDatabase
	rec.UseEnvFile = a.UseEnvFile
	rec.UseProfiles = a.UseProfiles
	rec.IncludeRestServer = slices.Contains(a.Services, OptionRestServer)
	rec.IncludeSmartView = slices.Contains(a.Services, OptionSmartView)

	ports := []portAnswer{
		{"appserver.port", a.AppServerPort, &rec.AppServer.Port},
		{"appserver.web_port", a.AppServerWebPort, &rec.AppServer.WebPort},
		{"apprest.rest_port", a.RestPort, &rec.AppRest.RestPort},
	}

	if rec.UseExternalDatabase {
		rec.External.Host = strings.TrimSpace(a.ExternalHost)
		rec.External.Username = strings.TrimSpace(a.ExternalUsername)
		rec.External.Password = a.ExternalPassword
		ports = append(ports, portAnswer{"external_database.port", a.ExternalPort, &rec.External.Port})
	} else {
		field, dst := "postgres.external_port", &rec.Postgres.ExternalPort
		switch rec.DatabaseType {
		case config.EngineMSSQL:
			rec.MSSQL.SAPassword = a.DatabasePassword
			field, dst = "mssql.external_port", &rec.MSSQL.ExternalPort
		case config.EngineOracle:
			rec.Oracle.Password = a.DatabasePassword
			field, dst = "oracle.external_port", &rec.Oracle.ExternalPort
		default:
			rec.Postgres.Password = a.DatabasePassword
		}
		ports = append(ports, portAnswer{field, a.DatabasePort, dst})
	}

	for _, p := range ports {
		n, err := parsePort(p.text)
		if err != nil {
			return rec, config.NewFieldError(p.field, err.Error())
		}
		*p.dst = n
	}

	return rec.Normalize(), nil
}

type portAnswer struct {
	field string
	text  string
	dst   *int
}

func parsePort(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q is not a port number", text)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("port %d is out of range", n)
	}
	return n, nil
}

func validatePort(text string) error {
	_, err := parsePort(text)
	return err
}

func portText(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
