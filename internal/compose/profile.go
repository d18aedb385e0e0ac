package compose

import (
	"fmt"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
)

// DatabaseProfile merges the fixed facts of the selected engine with the
// choices the record makes for it.
type DatabaseProfile struct {
	config.EngineFacts
	Engine        config.DatabaseEngine
	ContainerName string
	ExternalPort  int
	Volume        config.Volume

	ContainerSym    types.Symbol
	ExternalPortSym types.Symbol
	VolumeNameSym   types.Symbol
	VolumeBindSym   types.Symbol
}

// Mount returns the data mount of the database container.
func (p DatabaseProfile) Mount() MountSpec {
	return NewMount(p.Volume, p.MountPath, p.VolumeNameSym, p.VolumeBindSym)
}

// ResolveDatabaseProfile fails with config.ErrConfigurationInvalid when the
// record names an engine this generator does not know.
func ResolveDatabaseProfile(rec config.Record) (DatabaseProfile, error) {
	facts, ok := config.LookupEngine(rec.DatabaseType)
	if !ok {
		return DatabaseProfile{}, config.NewFieldError("database_type",
			fmt.Sprintf("unsupported database engine %q", rec.DatabaseType))
	}

	p := DatabaseProfile{EngineFacts: facts, Engine: rec.DatabaseType}
	switch rec.DatabaseType {
	case config.EnginePostgres:
		p.ContainerName = rec.Postgres.ContainerName
		p.ExternalPort = rec.Postgres.ExternalPort
		p.Volume = rec.Postgres.Volume
		p.ContainerSym = types.PostgresContainerName
		p.ExternalPortSym = types.PostgresExternalPort
		p.VolumeNameSym = types.PostgresVolumeName
		p.VolumeBindSym = types.PostgresVolumeBind
	case config.EngineMSSQL:
		p.ContainerName = rec.MSSQL.ContainerName
		p.ExternalPort = rec.MSSQL.ExternalPort
		p.Volume = rec.MSSQL.Volume
		p.ContainerSym = types.MSSQLContainerName
		p.ExternalPortSym = types.MSSQLExternalPort
		p.VolumeNameSym = types.MSSQLVolumeName
		p.VolumeBindSym = types.MSSQLVolumeBind
	case config.EngineOracle:
		p.ContainerName = rec.Oracle.ContainerName
		p.ExternalPort = rec.Oracle.ExternalPort
		p.Volume = rec.Oracle.Volume
		p.ContainerSym = types.OracleContainerName
		p.ExternalPortSym = types.OracleExternalPort
		p.VolumeNameSym = types.OracleVolumeName
		p.VolumeBindSym = types.OracleVolumeBind
	}
	return p, nil
}
