package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultImageRepository = "juliansantosinfo"
	DefaultInitDBArgs      = "--locale=pt_BR.ISO-8859-1 -E LATIN1"
)

// Default returns the record the generator starts from when no file overrides
// a field. The result is already normalized.
func Default() Record {
	r := Record{
		DatabaseType:    EnginePostgres,
		ImageRepository: DefaultImageRepository,
		NetworkName:     "totvs",
		RestartPolicy:   "always",
		Timezone:        "America/Sao_Paulo",
		Postgres: PostgresConfig{
			ContainerName: "totvs_postgres",
			User:          "postgres",
			Password:      "ProtheusDatabasePassword1",
			DB:            "protheus",
			InitDBArgs:    DefaultInitDBArgs,
			ExternalPort:  5432,
			Volume:        Volume{Name: "totvs_postgres_data"},
			RestoreBackup: true,
		},
		MSSQL: MSSQLConfig{
			ContainerName: "totvs_mssql",
			SAPassword:    "ProtheusDatabasePassword1",
			AcceptEULA:    "Y",
			ExternalPort:  1433,
			Volume:        Volume{Name: "totvs_mssql_data"},
			RestoreBackup: true,
		},
		Oracle: OracleConfig{
			ContainerName: "totvs_oracle",
			Password:      "ProtheusDatabasePassword1",
			ExternalPort:  1521,
			Volume:        Volume{Name: "totvs_oracle_data"},
			RestoreBackup: true,
		},
		External: ExternalDatabase{
			Username: "postgres",
		},
		DBAccess: DBAccessConfig{
			ContainerName: "totvs_dbaccess",
			Version:       "23.1.1.4",
			DatabaseAlias: "protheus",
			DatabaseName:  "protheus",
			ConsoleFile:   "/totvs/dbaccess/multi/dbconsole.log",
			Port:          7890,
			AuditPort:     7891,
		},
		LicenseServer: LicenseServerConfig{
			ContainerName:      "totvs_licenseserver",
			Version:            "3.6.1",
			TCPPort:            2234,
			Port:               5555,
			WebAppPort:         8020,
			ConsoleFile:        "/totvs/licenseserver/bin/appserver/licenseserver.log",
			TCPPortExternal:    2234,
			PortExternal:       5555,
			WebAppPortExternal: 8020,
		},
		AppServer: AppServerConfig{
			ContainerName:           "totvs_appserver",
			Release:                 "12.1.2410",
			Port:                    1234,
			WebPort:                 12345,
			RestPort:                8080,
			WebManager:              8088,
			RPOCustom:               "/totvs/protheus/apo/custom.rpo",
			ConsoleFile:             "/totvs/protheus/bin/appserver/console.log",
			MultiProtocolPortSecure: 0,
			MultiProtocolPort:       1,
			Volume:                  Volume{Name: "totvs_protheus_data"},
			APO:                     AuxVolume{Name: "totvs_protheus_apo"},
			Logs:                    AuxVolume{Name: "totvs_protheus_logs"},
		},
		AppRest: AppRestConfig{
			ContainerName: "totvs_apprest",
			Port:          1235,
			WebPort:       12346,
			RestPort:      8081,
			WebManager:    8089,
			APO:           AuxVolume{Name: "totvs_apprest_apo"},
			Logs:          AuxVolume{Name: "totvs_apprest_logs"},
		},
		SmartView: SmartViewConfig{
			ContainerName: "totvs_smartview",
			Version:       "3.9.0",
			AppPort:       7017,
			ConfigPort:    7019,
			Volume:        Volume{Name: "totvs_smartview_data"},
		},
	}
	return r.Normalize()
}

// SetDefaults registers every field of Default on v so that config files and
// environment variables only need to name the fields they change.
func SetDefaults(v *viper.Viper) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode defaults: %w", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to decode defaults: %w", err)
	}

	setDefaults(v, "", tree)
	return nil
}

func setDefaults(v *viper.Viper, prefix string, tree map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			setDefaults(v, key, nested)
			continue
		}
		v.SetDefault(key, value)
	}
}
