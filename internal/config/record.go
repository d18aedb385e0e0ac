package config

// Record is the single input of a generation run: every choice that shapes the
// descriptor and the environment file. It is a value type; Normalize returns a
// new Record instead of mutating the receiver.
type Record struct {
	DatabaseType          DatabaseEngine `mapstructure:"database_type" yaml:"database_type" toml:"database_type"`
	UseExternalDatabase   bool           `mapstructure:"use_external_database" yaml:"use_external_database" toml:"use_external_database"`
	IncludeRestServer     bool           `mapstructure:"include_rest_server" yaml:"include_rest_server" toml:"include_rest_server"`
	IncludeSmartView      bool           `mapstructure:"include_smartview" yaml:"include_smartview" toml:"include_smartview"`
	UseEnvFile            bool           `mapstructure:"use_env_file" yaml:"use_env_file" toml:"use_env_file"`
	UseProfiles           bool           `mapstructure:"use_profiles" yaml:"use_profiles" toml:"use_profiles"`
	HealthCheckReferences bool           `mapstructure:"healthcheck_references" yaml:"healthcheck_references" toml:"healthcheck_references"`

	ImageRepository string `mapstructure:"image_repository" yaml:"image_repository" toml:"image_repository"`
	NetworkName     string `mapstructure:"network_name" yaml:"network_name" toml:"network_name"`
	RestartPolicy   string `mapstructure:"restart_policy" yaml:"restart_policy" toml:"restart_policy"`
	Timezone        string `mapstructure:"timezone" yaml:"timezone" toml:"timezone"`
	DebugScript     bool   `mapstructure:"debug_script" yaml:"debug_script" toml:"debug_script"`

	Postgres      PostgresConfig      `mapstructure:"postgres" yaml:"postgres" toml:"postgres"`
	MSSQL         MSSQLConfig         `mapstructure:"mssql" yaml:"mssql" toml:"mssql"`
	Oracle        OracleConfig        `mapstructure:"oracle" yaml:"oracle" toml:"oracle"`
	External      ExternalDatabase    `mapstructure:"external_database" yaml:"external_database" toml:"external_database"`
	DBAccess      DBAccessConfig      `mapstructure:"dbaccess" yaml:"dbaccess" toml:"dbaccess"`
	LicenseServer LicenseServerConfig `mapstructure:"licenseserver" yaml:"licenseserver" toml:"licenseserver"`
	AppServer     AppServerConfig     `mapstructure:"appserver" yaml:"appserver" toml:"appserver"`
	AppRest       AppRestConfig       `mapstructure:"apprest" yaml:"apprest" toml:"apprest"`
	SmartView     SmartViewConfig     `mapstructure:"smartview" yaml:"smartview" toml:"smartview"`
}

// Volume is a mount point backed by a named volume, or by a host path when
// Bind is set.
type Volume struct {
	Name string `mapstructure:"name" yaml:"name" toml:"name"`
	Bind string `mapstructure:"bind" yaml:"bind" toml:"bind"`
}

// AuxVolume is an optional mount point with its own enable flag.
type AuxVolume struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Name    string `mapstructure:"name" yaml:"name" toml:"name"`
	Bind    string `mapstructure:"bind" yaml:"bind" toml:"bind"`
}

type PostgresConfig struct {
	ContainerName string `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	User          string `mapstructure:"user" yaml:"user" toml:"user"`
	Password      string `mapstructure:"password" yaml:"password" toml:"password"`
	DB            string `mapstructure:"db" yaml:"db" toml:"db"`
	InitDBArgs    string `mapstructure:"initdb_args" yaml:"initdb_args" toml:"initdb_args"`
	ExternalPort  int    `mapstructure:"external_port" yaml:"external_port" toml:"external_port"`
	Volume        Volume `mapstructure:"volume" yaml:"volume" toml:"volume"`
	RestoreBackup bool   `mapstructure:"restore_backup" yaml:"restore_backup" toml:"restore_backup"`
}

type MSSQLConfig struct {
	ContainerName string `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	SAPassword    string `mapstructure:"sa_password" yaml:"sa_password" toml:"sa_password"`
	AcceptEULA    string `mapstructure:"accept_eula" yaml:"accept_eula" toml:"accept_eula"`
	ExternalPort  int    `mapstructure:"external_port" yaml:"external_port" toml:"external_port"`
	Volume        Volume `mapstructure:"volume" yaml:"volume" toml:"volume"`
	RestoreBackup bool   `mapstructure:"restore_backup" yaml:"restore_backup" toml:"restore_backup"`
}

type OracleConfig struct {
	ContainerName string `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	Password      string `mapstructure:"password" yaml:"password" toml:"password"`
	ExternalPort  int    `mapstructure:"external_port" yaml:"external_port" toml:"external_port"`
	Volume        Volume `mapstructure:"volume" yaml:"volume" toml:"volume"`
	RestoreBackup bool   `mapstructure:"restore_backup" yaml:"restore_backup" toml:"restore_backup"`
}

// ExternalDatabase describes a database server that lives outside the stack.
type ExternalDatabase struct {
	Host     string `mapstructure:"host" yaml:"host" toml:"host"`
	Port     int    `mapstructure:"port" yaml:"port" toml:"port"`
	Username string `mapstructure:"username" yaml:"username" toml:"username"`
	Password string `mapstructure:"password" yaml:"password" toml:"password"`
}

type DBAccessConfig struct {
	ContainerName string `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	Version       string `mapstructure:"version" yaml:"version" toml:"version"`
	DatabaseAlias string `mapstructure:"database_alias" yaml:"database_alias" toml:"database_alias"`
	DatabaseName  string `mapstructure:"database_name" yaml:"database_name" toml:"database_name"`
	ConsoleFile   string `mapstructure:"consolefile" yaml:"consolefile" toml:"consolefile"`
	ExposePorts   bool   `mapstructure:"expose_ports" yaml:"expose_ports" toml:"expose_ports"`
	Port          int    `mapstructure:"port" yaml:"port" toml:"port"`
	AuditPort     int    `mapstructure:"audit_port" yaml:"audit_port" toml:"audit_port"`

	// Connection facts derived from the database selection by Normalize.
	DatabaseProfile  string `mapstructure:"-" yaml:"-" toml:"-"`
	DatabaseServer   string `mapstructure:"-" yaml:"-" toml:"-"`
	DatabasePort     int    `mapstructure:"-" yaml:"-" toml:"-"`
	DatabaseUsername string `mapstructure:"-" yaml:"-" toml:"-"`
	DatabasePassword string `mapstructure:"-" yaml:"-" toml:"-"`
}

type LicenseServerConfig struct {
	ContainerName      string `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	Version            string `mapstructure:"version" yaml:"version" toml:"version"`
	TCPPort            int    `mapstructure:"tcp_port" yaml:"tcp_port" toml:"tcp_port"`
	Port               int    `mapstructure:"port" yaml:"port" toml:"port"`
	WebAppPort         int    `mapstructure:"webapp_port" yaml:"webapp_port" toml:"webapp_port"`
	ConsoleFile        string `mapstructure:"consolefile" yaml:"consolefile" toml:"consolefile"`
	ExposePorts        bool   `mapstructure:"expose_ports" yaml:"expose_ports" toml:"expose_ports"`
	TCPPortExternal    int    `mapstructure:"tcp_port_external" yaml:"tcp_port_external" toml:"tcp_port_external"`
	PortExternal       int    `mapstructure:"port_external" yaml:"port_external" toml:"port_external"`
	WebAppPortExternal int    `mapstructure:"webapp_port_external" yaml:"webapp_port_external" toml:"webapp_port_external"`
}

type AppServerConfig struct {
	ContainerName           string    `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	Release                 string    `mapstructure:"release" yaml:"release" toml:"release"`
	Port                    int       `mapstructure:"port" yaml:"port" toml:"port"`
	WebPort                 int       `mapstructure:"web_port" yaml:"web_port" toml:"web_port"`
	RestPort                int       `mapstructure:"rest_port" yaml:"rest_port" toml:"rest_port"`
	WebManager              int       `mapstructure:"web_manager" yaml:"web_manager" toml:"web_manager"`
	RPOCustom               string    `mapstructure:"rpo_custom" yaml:"rpo_custom" toml:"rpo_custom"`
	ConsoleFile             string    `mapstructure:"consolefile" yaml:"consolefile" toml:"consolefile"`
	MultiProtocolPortSecure int       `mapstructure:"multiprotocol_port_secure" yaml:"multiprotocol_port_secure" toml:"multiprotocol_port_secure"`
	MultiProtocolPort       int       `mapstructure:"multiprotocol_port" yaml:"multiprotocol_port" toml:"multiprotocol_port"`
	Volume                  Volume    `mapstructure:"volume" yaml:"volume" toml:"volume"`
	APO                     AuxVolume `mapstructure:"apo" yaml:"apo" toml:"apo"`
	Logs                    AuxVolume `mapstructure:"logs" yaml:"logs" toml:"logs"`
}

// AppRestConfig is the REST-mode application server. It shares the primary
// server's data volume, image release and runtime settings.
type AppRestConfig struct {
	ContainerName string    `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	Port          int       `mapstructure:"port" yaml:"port" toml:"port"`
	WebPort       int       `mapstructure:"web_port" yaml:"web_port" toml:"web_port"`
	RestPort      int       `mapstructure:"rest_port" yaml:"rest_port" toml:"rest_port"`
	WebManager    int       `mapstructure:"web_manager" yaml:"web_manager" toml:"web_manager"`
	APO           AuxVolume `mapstructure:"apo" yaml:"apo" toml:"apo"`
	Logs          AuxVolume `mapstructure:"logs" yaml:"logs" toml:"logs"`
}

type SmartViewConfig struct {
	ContainerName string `mapstructure:"container_name" yaml:"container_name" toml:"container_name"`
	Version       string `mapstructure:"version" yaml:"version" toml:"version"`
	AppPort       int    `mapstructure:"app_port" yaml:"app_port" toml:"app_port"`
	ConfigPort    int    `mapstructure:"config_port" yaml:"config_port" toml:"config_port"`
	Volume        Volume `mapstructure:"volume" yaml:"volume" toml:"volume"`

	// Derived from the REST server by Normalize.
	RestServer   string `mapstructure:"-" yaml:"-" toml:"-"`
	RestPort     int    `mapstructure:"-" yaml:"-" toml:"-"`
	DiscoveryURL string `mapstructure:"-" yaml:"-" toml:"-"`
}

// LocalDatabase reports whether the stack runs its own database container.
func (r Record) LocalDatabase() bool {
	return !r.UseExternalDatabase
}

// YesNo renders a flag the way the database images expect it.
func YesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
