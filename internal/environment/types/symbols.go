package types

// Symbol is the canonical environment-file key of a record field. The compose
// builders and the env-file assembler both name fields through these
// constants, so a reference in the descriptor always has a matching key.
type Symbol string

// Ref returns the interpolation marker docker compose expands from the env file.
func (s Symbol) Ref() string {
	return "${" + string(s) + "}"
}

func (s Symbol) String() string {
	return string(s)
}

// Network and shared settings.
const (
	NetworkName   Symbol = "NETWORK_NAME"
	RestartPolicy Symbol = "RESTART_POLICY"
	DebugScript   Symbol = "DEBUG_SCRIPT"
	Timezone      Symbol = "TZ"
	RestoreBackup Symbol = "RESTORE_BACKUP"
)

// PostgreSQL.
const (
	PostgresContainerName Symbol = "POSTGRES_CONTAINER_NAME"
	PostgresUser          Symbol = "POSTGRES_USER"
	PostgresPassword      Symbol = "POSTGRES_PASSWORD"
	PostgresDB            Symbol = "POSTGRES_DB"
	PostgresInitDBArgs    Symbol = "POSTGRES_INITDB_ARGS"
	PostgresExternalPort  Symbol = "POSTGRES_EXTERNAL_PORT"
	PostgresVolumeName    Symbol = "POSTGRES_VOLUME_NAME"
	PostgresVolumeBind    Symbol = "POSTGRES_VOLUME_BIND"
)

// SQL Server.
const (
	MSSQLContainerName Symbol = "MSSQL_CONTAINER_NAME"
	MSSQLSAPassword    Symbol = "MSSQL_SA_PASSWORD"
	MSSQLAcceptEULA    Symbol = "MSSQL_ACCEPT_EULA"
	MSSQLExternalPort  Symbol = "MSSQL_EXTERNAL_PORT"
	MSSQLVolumeName    Symbol = "MSSQL_VOLUME_NAME"
	MSSQLVolumeBind    Symbol = "MSSQL_VOLUME_BIND"
)

// Oracle.
const (
	OracleContainerName Symbol = "ORACLE_CONTAINER_NAME"
	OraclePassword      Symbol = "ORACLE_PASSWORD"
	OracleExternalPort  Symbol = "ORACLE_EXTERNAL_PORT"
	OracleVolumeName    Symbol = "ORACLE_VOLUME_NAME"
	OracleVolumeBind    Symbol = "ORACLE_VOLUME_BIND"
)

// External database.
const (
	ExternalDBHost     Symbol = "EXTERNAL_DB_HOST"
	ExternalDBPort     Symbol = "EXTERNAL_DB_PORT"
	ExternalDBUsername Symbol = "EXTERNAL_DB_USERNAME"
	ExternalDBPassword Symbol = "EXTERNAL_DB_PASSWORD"
)

// DBAccess.
const (
	DBAccessContainerName   Symbol = "DBACCESS_CONTAINER_NAME"
	DBAccessVersion         Symbol = "DBACCESS_VERSION"
	DBAccessDatabaseProfile Symbol = "DBACCESS_DATABASE_PROFILE"
	DBAccessDatabaseAlias   Symbol = "DBACCESS_DATABASE_ALIAS"
	DBAccessDatabaseName    Symbol = "DBACCESS_DATABASE_NAME"
	DBAccessConsoleFile     Symbol = "DBACCESS_CONSOLEFILE"
	DBAccessPort            Symbol = "DBACCESS_PORT_7890"
	DBAccessAuditPort       Symbol = "DBACCESS_PORT_7891"
	DBAccessExposePorts     Symbol = "DBACCESS_EXPOSE_PORTS"
)

// License server.
const (
	LicenseContainerName      Symbol = "LICENSESERVER_CONTAINER_NAME"
	LicenseVersion            Symbol = "LICENSESERVER_VERSION"
	LicenseTCPPort            Symbol = "LICENSE_TCP_PORT"
	LicensePort               Symbol = "LICENSE_PORT"
	LicenseWebAppPort         Symbol = "LICENSE_WEBAPP_PORT"
	LicenseConsoleFile        Symbol = "LICENSE_CONSOLEFILE"
	LicenseTCPPortExternal    Symbol = "LICENSE_TCP_PORT_EXTERNAL"
	LicensePortExternal       Symbol = "LICENSE_PORT_EXTERNAL"
	LicenseWebAppPortExternal Symbol = "LICENSE_WEBAPP_PORT_EXTERNAL"
	LicenseExposePorts        Symbol = "LICENSESERVER_EXPOSE_PORTS"
)

// Primary application server.
const (
	AppServerContainerName           Symbol = "APPSERVER_CONTAINER_NAME"
	AppServerRelease                 Symbol = "APPSERVER_RELEASE"
	AppServerPort                    Symbol = "APPSERVER_PORT"
	AppServerWebPort                 Symbol = "APPSERVER_WEB_PORT"
	AppServerRestPort                Symbol = "APPSERVER_REST_PORT"
	AppServerWebManager              Symbol = "APPSERVER_WEB_MANAGER"
	AppServerRPOCustom               Symbol = "APPSERVER_RPO_CUSTOM"
	AppServerConsoleFile             Symbol = "APPSERVER_CONSOLEFILE"
	AppServerMultiProtocolPortSecure Symbol = "APPSERVER_MULTIPROTOCOLPORTSECURE"
	AppServerMultiProtocolPort       Symbol = "APPSERVER_MULTIPROTOCOLPORT"
	AppServerVolumeName              Symbol = "APPSERVER_VOLUME_NAME"
	AppServerVolumeBind              Symbol = "APPSERVER_VOLUME_BIND"
	AppServerVolumeAPO               Symbol = "APPSERVER_VOLUME_APO"
	AppServerVolumeAPOBind           Symbol = "APPSERVER_VOLUME_APO_BIND"
	AppServerEnableVolumeAPO         Symbol = "APPSERVER_ENABLE_VOLUME_APO"
	AppServerVolumeLogs              Symbol = "APPSERVER_VOLUME_LOGS"
	AppServerVolumeLogsBind          Symbol = "APPSERVER_VOLUME_LOGS_BIND"
	AppServerEnableVolumeLogs        Symbol = "APPSERVER_ENABLE_VOLUME_LOGS"
)

// REST application server.
const (
	AppRestContainerName    Symbol = "APPREST_CONTAINER_NAME"
	AppRestPort             Symbol = "APPREST_PORT"
	AppRestWebPort          Symbol = "APPREST_WEB_PORT"
	AppRestRestPort         Symbol = "APPREST_REST_PORT"
	AppRestWebManager       Symbol = "APPREST_WEB_MANAGER"
	AppRestVolumeAPO        Symbol = "APPREST_VOLUME_APO"
	AppRestVolumeAPOBind    Symbol = "APPREST_VOLUME_APO_BIND"
	AppRestEnableVolumeAPO  Symbol = "APPREST_ENABLE_VOLUME_APO"
	AppRestVolumeLogs       Symbol = "APPREST_VOLUME_LOGS"
	AppRestVolumeLogsBind   Symbol = "APPREST_VOLUME_LOGS_BIND"
	AppRestEnableVolumeLogs Symbol = "APPREST_ENABLE_VOLUME_LOGS"
)

// SmartView.
const (
	SmartViewContainerName Symbol = "SMARTVIEW_CONTAINER_NAME"
	SmartViewVersion       Symbol = "SMARTVIEW_VERSION"
	SmartViewAppPort       Symbol = "SMARTVIEW_APP_PORT"
	SmartViewConfigPort    Symbol = "SMARTVIEW_CONFIG_PORT"
	SmartViewRestServer    Symbol = "SMARTVIEW_REST_SERVER"
	SmartViewRestPort      Symbol = "SMARTVIEW_REST_PORT"
	SmartViewDiscoveryURL  Symbol = "SMARTVIEW_DISCOVERY_URL"
	SmartViewVolumeName    Symbol = "SMARTVIEW_VOLUME_NAME"
	SmartViewVolumeBind    Symbol = "SMARTVIEW_VOLUME_BIND"
)
