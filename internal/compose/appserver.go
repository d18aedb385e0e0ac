package compose

import (
	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// AppServerMode is the APPSERVER_MODE of an application server container.
type AppServerMode string

const (
	ModePrimary   AppServerMode = "application"
	ModeSecondary AppServerMode = "rest"
)

// appServerRole carries what differs between the primary and the REST server.
type appServerRole struct {
	key       string
	mode      AppServerMode
	container field
	port      field
	webPort   field
	restPort  field
	manager   field
	apo       *MountSpec
	logs      *MountSpec
}

func primaryRole(rec config.Record) appServerRole {
	as := rec.AppServer
	role := appServerRole{
		key:       ServiceAppServer,
		mode:      ModePrimary,
		container: field{as.ContainerName, types.AppServerContainerName},
		port:      field{as.Port, types.AppServerPort},
		webPort:   field{as.WebPort, types.AppServerWebPort},
		restPort:  field{as.RestPort, types.AppServerRestPort},
		manager:   field{as.WebManager, types.AppServerWebManager},
	}
	if as.APO.Enabled {
		m := NewAuxMount(as.APO, ProtheusAPOPath, types.AppServerVolumeAPO, types.AppServerVolumeAPOBind)
		role.apo = &m
	}
	if as.Logs.Enabled {
		m := NewAuxMount(as.Logs, ProtheusLogsPath, types.AppServerVolumeLogs, types.AppServerVolumeLogsBind)
		role.logs = &m
	}
	return role
}

func secondaryRole(rec config.Record) appServerRole {
	ar := rec.AppRest
	primary := primaryRole(rec)
	return appServerRole{
		key:       ServiceAppRest,
		mode:      ModeSecondary,
		container: field{ar.ContainerName, types.AppRestContainerName},
		port:      field{ar.Port, types.AppRestPort},
		webPort:   field{ar.WebPort, types.AppRestWebPort},
		restPort:  field{ar.RestPort, types.AppRestRestPort},
		manager:   field{ar.WebManager, types.AppRestWebManager},
		apo: sharedOrOwn(ar.APO, primary.apo,
			ProtheusAPOPath, types.AppRestVolumeAPO, types.AppRestVolumeAPOBind),
		logs: sharedOrOwn(ar.Logs, primary.logs,
			ProtheusLogsPath, types.AppRestVolumeLogs, types.AppRestVolumeLogsBind),
	}
}

// sharedOrOwn picks the REST server's own mount when enabled, else the primary
// server's mount of the same kind, else nothing.
func sharedOrOwn(own config.AuxVolume, primary *MountSpec, target string, nameSym, bindSym types.Symbol) *MountSpec {
	if own.Enabled {
		m := NewAuxMount(own, target, nameSym, bindSym)
		return &m
	}
	return primary
}

func buildAppServer(c *buildContext, role appServerRole) *schema.Service {
	rec := c.rec
	as := rec.AppServer

	svc := c.newService(role.key,
		c.image("totvs_appserver", field{as.Release, types.AppServerRelease}),
		role.container)
	svc.Ulimits = schema.FileLimits(FileDescriptorLimit)
	svc.Ports = []string{
		c.portMapping(role.port, role.port),
		c.portMapping(role.webPort, role.webPort),
		c.portMapping(role.restPort, role.restPort),
		c.portMapping(role.manager, role.manager),
	}

	env := &svc.Environment
	env.Set("APPSERVER_MODE", string(role.mode))
	env.Set("APPSERVER_RPO_CUSTOM", c.value(field{as.RPOCustom, types.AppServerRPOCustom}))
	env.Set("APPSERVER_DBACCESS_DATABASE", c.value(field{rec.DBAccess.DatabaseProfile, types.DBAccessDatabaseProfile}))
	env.Set("APPSERVER_DBACCESS_SERVER", c.value(field{rec.DBAccess.ContainerName, types.DBAccessContainerName}))
	env.Set("APPSERVER_DBACCESS_PORT", DBAccessInternalPort)
	env.Set("APPSERVER_DBACCESS_ALIAS", c.value(field{rec.DBAccess.DatabaseAlias, types.DBAccessDatabaseAlias}))
	env.Set("APPSERVER_CONSOLEFILE", c.value(field{as.ConsoleFile, types.AppServerConsoleFile}))
	env.Set("APPSERVER_MULTIPROTOCOLPORTSECURE", c.value(field{as.MultiProtocolPortSecure, types.AppServerMultiProtocolPortSecure}))
	env.Set("APPSERVER_MULTIPROTOCOLPORT", c.value(field{as.MultiProtocolPort, types.AppServerMultiProtocolPort}))
	env.Set("APPSERVER_LICENSE_SERVER", c.value(field{rec.LicenseServer.ContainerName, types.LicenseContainerName}))
	env.Set("APPSERVER_LICENSE_PORT", c.value(field{rec.LicenseServer.Port, types.LicensePort}))
	// The server reads its listen ports from the environment, not from the
	// port mappings.
	env.Set("APPSERVER_PORT", c.value(role.port))
	env.Set("APPSERVER_WEB_PORT", c.value(role.webPort))
	env.Set("APPSERVER_REST_PORT", c.value(role.restPort))
	env.Set("APPSERVER_WEB_MANAGER", c.value(role.manager))
	env.Set("EXTRACT_RESOURCES", "true")
	c.setCommon(env)

	c.mount(svc, NewMount(as.Volume, ProtheusDataPath, types.AppServerVolumeName, types.AppServerVolumeBind))
	if role.apo != nil {
		c.mount(svc, *role.apo)
	}
	if role.logs != nil {
		c.mount(svc, *role.logs)
	}

	dependsOn(svc, ServiceLicenseServer, schema.ConditionStarted)
	dependsOn(svc, ServiceDBAccess, schema.ConditionHealthy)

	return svc
}
