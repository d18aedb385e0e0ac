package compose

import (
	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// buildDatabase builds the local database container. Callers skip it for an
// external database.
func buildDatabase(c *buildContext) *schema.Service {
	p := c.profile
	rec := c.rec

	svc := c.newService(p.ServiceKey,
		c.image(p.Image, field{rec.AppServer.Release, types.AppServerRelease}),
		field{p.ContainerName, p.ContainerSym})
	svc.User = "root"
	svc.Ports = []string{c.portMapping(field{p.ExternalPort, p.ExternalPortSym}, fixed(p.InternalPort))}

	switch p.Engine {
	case config.EnginePostgres:
		user := field{rec.Postgres.User, types.PostgresUser}
		db := field{rec.Postgres.DB, types.PostgresDB}

		svc.Environment.Set("POSTGRES_USER", c.value(user))
		svc.Environment.Set("POSTGRES_PASSWORD", c.value(field{rec.Postgres.Password, types.PostgresPassword}))
		svc.Environment.Set("POSTGRES_DB", c.value(db))
		svc.Environment.Set("POSTGRES_INITDB_ARGS", c.value(field{rec.Postgres.InitDBArgs, types.PostgresInitDBArgs}))
		svc.Environment.Set("RESTORE_BACKUP", c.value(field{config.YesNo(rec.Postgres.RestoreBackup), types.RestoreBackup}))
		svc.HealthCheck = &schema.HealthCheck{
			Test:        []string{"CMD-SHELL", "pg_isready -U " + c.probe(user) + " -d " + c.probe(db)},
			Interval:    "10s",
			Timeout:     "5s",
			Retries:     5,
			StartPeriod: "10s",
		}

	case config.EngineMSSQL:
		password := field{rec.MSSQL.SAPassword, types.MSSQLSAPassword}

		svc.Environment.Set("SA_PASSWORD", c.value(password))
		svc.Environment.Set("ACCEPT_EULA", c.value(field{rec.MSSQL.AcceptEULA, types.MSSQLAcceptEULA}))
		svc.Environment.Set("RESTORE_BACKUP", c.value(field{config.YesNo(rec.MSSQL.RestoreBackup), types.RestoreBackup}))
		svc.HealthCheck = &schema.HealthCheck{
			Test: []string{
				"CMD", "/opt/mssql-tools18/bin/sqlcmd",
				"-S", "localhost",
				"-U", p.DefaultUsername,
				"-P", c.probe(password),
				"-C", "-Q", "SELECT 1",
			},
			Interval:    "10s",
			Timeout:     "10s",
			Retries:     10,
			StartPeriod: "10s",
		}

	case config.EngineOracle:
		svc.User = "oracle"
		svc.Environment.Set("ORACLE_PASSWORD", c.value(field{rec.Oracle.Password, types.OraclePassword}))
		svc.Environment.Set("RESTORE_BACKUP", c.value(field{config.YesNo(rec.Oracle.RestoreBackup), types.RestoreBackup}))
		svc.HealthCheck = &schema.HealthCheck{
			Test:        []string{"CMD-SHELL", "./healthcheck.sh"},
			Interval:    "20s",
			Timeout:     "10s",
			Retries:     10,
			StartPeriod: "10s",
		}
	}

	c.setCommon(&svc.Environment)
	c.mount(svc, p.Mount())
	return svc
}

// databaseConnection returns the server, port, username and password DBAccess
// uses to reach the database, local or external.
func (c *buildContext) databaseConnection() (server, port, username, password field) {
	rec := c.rec
	p := c.profile

	if rec.UseExternalDatabase {
		return field{rec.External.Host, types.ExternalDBHost},
			field{rec.External.Port, types.ExternalDBPort},
			field{rec.External.Username, types.ExternalDBUsername},
			field{rec.External.Password, types.ExternalDBPassword}
	}

	server = field{p.ContainerName, p.ContainerSym}
	port = fixed(p.InternalPort)
	switch p.Engine {
	case config.EnginePostgres:
		username = field{rec.Postgres.User, types.PostgresUser}
		password = field{rec.Postgres.Password, types.PostgresPassword}
	case config.EngineMSSQL:
		username = fixed(p.DefaultUsername)
		password = field{rec.MSSQL.SAPassword, types.MSSQLSAPassword}
	case config.EngineOracle:
		username = fixed(p.DefaultUsername)
		password = field{rec.Oracle.Password, types.OraclePassword}
	}
	return server, port, username, password
}
