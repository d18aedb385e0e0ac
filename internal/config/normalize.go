package config

import "fmt"

// DiscoveryURL is the SmartView security discovery endpoint served by the REST
// application server.
func DiscoveryURL(restServer string, restPort int) string {
	return fmt.Sprintf("http://%s:%d/rest/.well-known/treports/security", restServer, restPort)
}

// Normalize returns a copy of r with the record-level implications applied and
// the derived fields filled in. It is idempotent.
//
// SmartView needs the REST server, so enabling it forces IncludeRestServer on.
// DBAccess connection facts follow the database selection, and SmartView's REST
// facts follow the REST server.
func (r Record) Normalize() Record {
	if r.IncludeSmartView {
		r.IncludeRestServer = true
	}

	if r.Postgres.DB == "" {
		r.Postgres.DB = r.DBAccess.DatabaseName
	}

	facts, known := LookupEngine(r.DatabaseType)
	if known {
		r.DBAccess.DatabaseProfile = facts.Profile
		if r.External.Port == 0 {
			r.External.Port = facts.InternalPort
		}
	}

	switch {
	case r.UseExternalDatabase:
		r.DBAccess.DatabaseServer = r.External.Host
		r.DBAccess.DatabasePort = r.External.Port
		r.DBAccess.DatabaseUsername = r.External.Username
		r.DBAccess.DatabasePassword = r.External.Password
	case r.DatabaseType == EnginePostgres:
		r.DBAccess.DatabaseServer = r.Postgres.ContainerName
		r.DBAccess.DatabasePort = facts.InternalPort
		r.DBAccess.DatabaseUsername = r.Postgres.User
		r.DBAccess.DatabasePassword = r.Postgres.Password
	case r.DatabaseType == EngineMSSQL:
		r.DBAccess.DatabaseServer = r.MSSQL.ContainerName
		r.DBAccess.DatabasePort = facts.InternalPort
		r.DBAccess.DatabaseUsername = facts.DefaultUsername
		r.DBAccess.DatabasePassword = r.MSSQL.SAPassword
	case r.DatabaseType == EngineOracle:
		r.DBAccess.DatabaseServer = r.Oracle.ContainerName
		r.DBAccess.DatabasePort = facts.InternalPort
		r.DBAccess.DatabaseUsername = facts.DefaultUsername
		r.DBAccess.DatabasePassword = r.Oracle.Password
	}

	r.SmartView.RestServer = r.AppRest.ContainerName
	r.SmartView.RestPort = r.AppRest.RestPort
	r.SmartView.DiscoveryURL = DiscoveryURL(r.AppRest.ContainerName, r.AppRest.RestPort)

	return r
}
