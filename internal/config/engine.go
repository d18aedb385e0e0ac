package config

import (
	"fmt"
	"strings"
)

// DatabaseEngine selects the database product backing DBAccess.
type DatabaseEngine string

const (
	EnginePostgres DatabaseEngine = "postgresql"
	EngineMSSQL    DatabaseEngine = "mssql"
	EngineOracle   DatabaseEngine = "oracle"
)

// Engines lists the supported engines in presentation order.
var Engines = []DatabaseEngine{EnginePostgres, EngineMSSQL, EngineOracle}

// EngineFacts are the product constants of a database engine.
type EngineFacts struct {
	ServiceKey      string
	Image           string
	InternalPort    int
	MountPath       string
	DefaultUsername string
	Profile         string
}

var engineFacts = map[DatabaseEngine]EngineFacts{
	EnginePostgres: {
		ServiceKey:      "postgres",
		Image:           "totvs_postgres",
		InternalPort:    5432,
		MountPath:       "/var/lib/postgresql/data",
		DefaultUsername: "postgres",
		Profile:         "POSTGRES",
	},
	EngineMSSQL: {
		ServiceKey:      "mssql",
		Image:           "totvs_mssql",
		InternalPort:    1433,
		MountPath:       "/var/opt/mssql/data",
		DefaultUsername: "sa",
		Profile:         "MSSQL",
	},
	EngineOracle: {
		ServiceKey:      "oracle",
		Image:           "totvs_oracle",
		InternalPort:    1521,
		MountPath:       "/opt/oracle/oradata",
		DefaultUsername: "system",
		Profile:         "ORACLE",
	},
}

// LookupEngine returns the facts of e, or false when e is not a supported engine.
func LookupEngine(e DatabaseEngine) (EngineFacts, bool) {
	facts, ok := engineFacts[e]
	return facts, ok
}

func (e DatabaseEngine) String() string {
	return string(e)
}

// ParseEngine accepts the engine names plus the short aliases used by the
// image names.
func ParseEngine(s string) (DatabaseEngine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgresql", "postgres", "pg":
		return EnginePostgres, nil
	case "mssql", "sqlserver":
		return EngineMSSQL, nil
	case "oracle":
		return EngineOracle, nil
	}
	return "", NewFieldError("database_type", fmt.Sprintf("unsupported database engine %q", s))
}
