package config

import (
	"fmt"
	"slices"
)

// RestartPolicies are the restart values docker compose accepts.
var RestartPolicies = []string{"no", "always", "on-failure", "unless-stopped"}

type validator struct {
	errs ValidationErrors
}

func (v *validator) fail(field, format string, args ...any) {
	v.errs = append(v.errs, NewFieldError(field, fmt.Sprintf(format, args...)))
}

func (v *validator) required(field, value string) {
	if value == "" {
		v.fail(field, "is required")
	}
}

func (v *validator) port(field string, port int) {
	if port < 1 || port > 65535 {
		v.fail(field, "port %d is out of range 1-65535", port)
	}
}

func (v *validator) volume(field string, vol Volume) {
	if vol.Name == "" && vol.Bind == "" {
		v.fail(field, "needs a volume name or a bind path")
	}
}

func (v *validator) auxVolume(field string, vol AuxVolume) {
	if vol.Enabled && vol.Name == "" && vol.Bind == "" {
		v.fail(field, "is enabled but has neither a volume name nor a bind path")
	}
}

// Validate checks the required fields of the services r enables. It does not
// look for port collisions; that is the port checker's job.
func (r Record) Validate() error {
	v := &validator{}

	_, known := LookupEngine(r.DatabaseType)
	if !known {
		v.fail("database_type", "unsupported database engine %q", r.DatabaseType)
	}

	v.required("image_repository", r.ImageRepository)
	v.required("network_name", r.NetworkName)
	if !slices.Contains(RestartPolicies, r.RestartPolicy) {
		v.fail("restart_policy", "must be one of %v, got %q", RestartPolicies, r.RestartPolicy)
	}

	if r.UseExternalDatabase {
		v.required("external_database.host", r.External.Host)
		v.port("external_database.port", r.External.Port)
		v.required("external_database.username", r.External.Username)
	} else if known {
		switch r.DatabaseType {
		case EnginePostgres:
			v.required("postgres.container_name", r.Postgres.ContainerName)
			v.required("postgres.user", r.Postgres.User)
			v.required("postgres.password", r.Postgres.Password)
			v.required("postgres.db", r.Postgres.DB)
			v.port("postgres.external_port", r.Postgres.ExternalPort)
			v.volume("postgres.volume", r.Postgres.Volume)
		case EngineMSSQL:
			v.required("mssql.container_name", r.MSSQL.ContainerName)
			v.required("mssql.sa_password", r.MSSQL.SAPassword)
			v.port("mssql.external_port", r.MSSQL.ExternalPort)
			v.volume("mssql.volume", r.MSSQL.Volume)
		case EngineOracle:
			v.required("oracle.container_name", r.Oracle.ContainerName)
			v.required("oracle.password", r.Oracle.Password)
			v.port("oracle.external_port", r.Oracle.ExternalPort)
			v.volume("oracle.volume", r.Oracle.Volume)
		}
	}

	v.required("dbaccess.container_name", r.DBAccess.ContainerName)
	v.required("dbaccess.version", r.DBAccess.Version)
	v.required("dbaccess.database_alias", r.DBAccess.DatabaseAlias)
	v.required("dbaccess.database_name", r.DBAccess.DatabaseName)
	if r.DBAccess.ExposePorts {
		v.port("dbaccess.port", r.DBAccess.Port)
		v.port("dbaccess.audit_port", r.DBAccess.AuditPort)
	}

	v.required("licenseserver.container_name", r.LicenseServer.ContainerName)
	v.required("licenseserver.version", r.LicenseServer.Version)
	v.port("licenseserver.tcp_port", r.LicenseServer.TCPPort)
	v.port("licenseserver.port", r.LicenseServer.Port)
	v.port("licenseserver.webapp_port", r.LicenseServer.WebAppPort)
	if r.LicenseServer.ExposePorts {
		v.port("licenseserver.tcp_port_external", r.LicenseServer.TCPPortExternal)
		v.port("licenseserver.port_external", r.LicenseServer.PortExternal)
		v.port("licenseserver.webapp_port_external", r.LicenseServer.WebAppPortExternal)
	}

	v.required("appserver.container_name", r.AppServer.ContainerName)
	v.required("appserver.release", r.AppServer.Release)
	v.port("appserver.port", r.AppServer.Port)
	v.port("appserver.web_port", r.AppServer.WebPort)
	v.port("appserver.rest_port", r.AppServer.RestPort)
	v.port("appserver.web_manager", r.AppServer.WebManager)
	v.volume("appserver.volume", r.AppServer.Volume)
	v.auxVolume("appserver.apo", r.AppServer.APO)
	v.auxVolume("appserver.logs", r.AppServer.Logs)

	if r.IncludeRestServer || r.IncludeSmartView {
		v.required("apprest.container_name", r.AppRest.ContainerName)
		v.port("apprest.port", r.AppRest.Port)
		v.port("apprest.web_port", r.AppRest.WebPort)
		v.port("apprest.rest_port", r.AppRest.RestPort)
		v.port("apprest.web_manager", r.AppRest.WebManager)
		v.auxVolume("apprest.apo", r.AppRest.APO)
		v.auxVolume("apprest.logs", r.AppRest.Logs)
	}

	if r.IncludeSmartView {
		v.required("smartview.container_name", r.SmartView.ContainerName)
		v.required("smartview.version", r.SmartView.Version)
		v.port("smartview.app_port", r.SmartView.AppPort)
		v.port("smartview.config_port", r.SmartView.ConfigPort)
		v.volume("smartview.volume", r.SmartView.Volume)
	}

	r.checkContainerNames(v)

	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// checkContainerNames rejects two active services sharing a container name;
// the containers would collide on the network.
func (r Record) checkContainerNames(v *validator) {
	type owner struct{ field, name string }
	var owners []owner

	if !r.UseExternalDatabase {
		switch r.DatabaseType {
		case EnginePostgres:
			owners = append(owners, owner{"postgres.container_name", r.Postgres.ContainerName})
		case EngineMSSQL:
			owners = append(owners, owner{"mssql.container_name", r.MSSQL.ContainerName})
		case EngineOracle:
			owners = append(owners, owner{"oracle.container_name", r.Oracle.ContainerName})
		}
	}
	owners = append(owners,
		owner{"licenseserver.container_name", r.LicenseServer.ContainerName},
		owner{"dbaccess.container_name", r.DBAccess.ContainerName},
		owner{"appserver.container_name", r.AppServer.ContainerName},
	)
	if r.IncludeRestServer || r.IncludeSmartView {
		owners = append(owners, owner{"apprest.container_name", r.AppRest.ContainerName})
	}
	if r.IncludeSmartView {
		owners = append(owners, owner{"smartview.container_name", r.SmartView.ContainerName})
	}

	seen := make(map[string]string)
	for _, o := range owners {
		if o.name == "" {
			continue
		}
		if first, ok := seen[o.name]; ok {
			v.fail(o.field, "container name %q is already used by %s", o.name, first)
			continue
		}
		seen[o.name] = o.field
	}
}
