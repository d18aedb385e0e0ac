package compose

import (
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// buildDBAccess builds the data-access middleware that sits between the
// application servers and the database.
func buildDBAccess(c *buildContext) *schema.Service {
	rec := c.rec
	dba := rec.DBAccess

	server, port, username, password := c.databaseConnection()
	alias := field{dba.DatabaseAlias, types.DBAccessDatabaseAlias}

	svc := c.newService(ServiceDBAccess,
		c.image("totvs_dbaccess", field{dba.Version, types.DBAccessVersion}),
		field{dba.ContainerName, types.DBAccessContainerName})

	if dba.ExposePorts {
		svc.Ports = []string{
			c.portMapping(field{dba.Port, types.DBAccessPort}, fixed(DBAccessInternalPort)),
			c.portMapping(field{dba.AuditPort, types.DBAccessAuditPort}, fixed(DBAccessAuditInternalPort)),
		}
	}

	env := &svc.Environment
	env.Set("DATABASE_PROFILE", c.value(field{dba.DatabaseProfile, types.DBAccessDatabaseProfile}))
	env.Set("DATABASE_SERVER", c.value(server))
	env.Set("DATABASE_PORT", c.value(port))
	env.Set("DATABASE_ALIAS", c.value(alias))
	env.Set("DATABASE_NAME", c.value(field{dba.DatabaseName, types.DBAccessDatabaseName}))
	env.Set("DATABASE_USERNAME", c.value(username))
	env.Set("DATABASE_PASSWORD", c.value(password))
	env.Set("DBACCESS_LICENSE_SERVER", c.value(field{rec.LicenseServer.ContainerName, types.LicenseContainerName}))
	env.Set("DBACCESS_LICENSE_PORT", c.value(field{rec.LicenseServer.Port, types.LicensePort}))
	env.Set("DBACCESS_CONSOLEFILE", c.value(field{dba.ConsoleFile, types.DBAccessConsoleFile}))
	c.setCommon(env)

	// An external database has nothing in this graph to wait on.
	if !rec.UseExternalDatabase {
		dependsOn(svc, c.profile.ServiceKey, schema.ConditionHealthy)
	}
	// No health check on the license server.
	dependsOn(svc, ServiceLicenseServer, schema.ConditionStarted)

	svc.HealthCheck = &schema.HealthCheck{
		Test:        []string{"CMD", "isql", "-b", c.probe(alias), c.probe(username), c.probe(password)},
		Interval:    "10s",
		Timeout:     "10s",
		Retries:     10,
		StartPeriod: "10s",
	}

	return svc
}
