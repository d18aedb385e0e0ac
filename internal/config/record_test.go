package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Defaults
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	rec := Default()

	require.NoError(t, rec.Validate())
	assert.Equal(t, EnginePostgres, rec.DatabaseType)
	assert.Equal(t, "juliansantosinfo", rec.ImageRepository)
	assert.Equal(t, "totvs", rec.NetworkName)
	assert.Equal(t, "always", rec.RestartPolicy)
	assert.Equal(t, "America/Sao_Paulo", rec.Timezone)
	assert.False(t, rec.UseEnvFile)
	assert.False(t, rec.IncludeRestServer)
	assert.False(t, rec.IncludeSmartView)
}

func TestDefault_IsNormalized(t *testing.T) {
	rec := Default()
	assert.Equal(t, rec, rec.Normalize())
	assert.Equal(t, "POSTGRES", rec.DBAccess.DatabaseProfile)
	assert.Equal(t, "totvs_postgres", rec.DBAccess.DatabaseServer)
}

// =============================================================================
// Engines
// =============================================================================

func TestParseEngine(t *testing.T) {
	tests := []struct {
		input string
		want  DatabaseEngine
	}{
		{"postgresql", EnginePostgres},
		{"postgres", EnginePostgres},
		{"PG", EnginePostgres},
		{"mssql", EngineMSSQL},
		{"sqlserver", EngineMSSQL},
		{" Oracle ", EngineOracle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEngine(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEngine_Unknown(t *testing.T) {
	_, err := ParseEngine("mysql")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationInvalid))
}

func TestLookupEngine_Facts(t *testing.T) {
	tests := []struct {
		engine   DatabaseEngine
		port     int
		username string
		profile  string
	}{
		{EnginePostgres, 5432, "postgres", "POSTGRES"},
		{EngineMSSQL, 1433, "sa", "MSSQL"},
		{EngineOracle, 1521, "system", "ORACLE"},
	}

	for _, tt := range tests {
		t.Run(string(tt.engine), func(t *testing.T) {
			facts, ok := LookupEngine(tt.engine)
			require.True(t, ok)
			assert.Equal(t, tt.port, facts.InternalPort)
			assert.Equal(t, tt.username, facts.DefaultUsername)
			assert.Equal(t, tt.profile, facts.Profile)
		})
	}

	_, ok := LookupEngine("db2")
	assert.False(t, ok)
}

// =============================================================================
// Normalize
// =============================================================================

func TestNormalize_SmartViewImpliesRestServer(t *testing.T) {
	rec := Default()
	rec.IncludeSmartView = true
	rec.IncludeRestServer = false

	got := rec.Normalize()
	assert.True(t, got.IncludeRestServer)
	assert.False(t, rec.IncludeRestServer, "Normalize must not mutate the receiver")
}

func TestNormalize_Idempotent(t *testing.T) {
	rec := Default()
	rec.IncludeSmartView = true
	rec.DatabaseType = EngineMSSQL

	once := rec.Normalize()
	assert.Equal(t, once, once.Normalize())
}

func TestNormalize_DBAccessConnection(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Record)
		server   string
		port     int
		username string
		password string
	}{
		{
			name:     "postgres",
			modify:   func(r *Record) {},
			server:   "totvs_postgres",
			port:     5432,
			username: "postgres",
			password: "ProtheusDatabasePassword1",
		},
		{
			name: "mssql",
			modify: func(r *Record) {
				r.DatabaseType = EngineMSSQL
				r.MSSQL.SAPassword = "Sa-Secret1"
			},
			server:   "totvs_mssql",
			port:     1433,
			username: "sa",
			password: "Sa-Secret1",
		},
		{
			name: "oracle",
			modify: func(r *Record) {
				r.DatabaseType = EngineOracle
			},
			server:   "totvs_oracle",
			port:     1521,
			username: "system",
			password: "ProtheusDatabasePassword1",
		},
		{
			name: "external",
			modify: func(r *Record) {
				r.UseExternalDatabase = true
				r.External = ExternalDatabase{Host: "db.internal", Port: 6432, Username: "protheus", Password: "ext"}
			},
			server:   "db.internal",
			port:     6432,
			username: "protheus",
			password: "ext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Default()
			tt.modify(&rec)
			got := rec.Normalize().DBAccess

			assert.Equal(t, tt.server, got.DatabaseServer)
			assert.Equal(t, tt.port, got.DatabasePort)
			assert.Equal(t, tt.username, got.DatabaseUsername)
			assert.Equal(t, tt.password, got.DatabasePassword)
		})
	}
}

func TestNormalize_ExternalPortDefaultsToEnginePort(t *testing.T) {
	rec := Default()
	rec.DatabaseType = EngineMSSQL
	rec.UseExternalDatabase = true
	rec.External = ExternalDatabase{Host: "sql.example.com", Username: "sa", Password: "x"}

	assert.Equal(t, 1433, rec.Normalize().External.Port)
}

func TestNormalize_SmartViewFollowsRestServer(t *testing.T) {
	rec := Default()
	rec.AppRest.ContainerName = "rest01"
	rec.AppRest.RestPort = 9090

	sv := rec.Normalize().SmartView
	assert.Equal(t, "rest01", sv.RestServer)
	assert.Equal(t, 9090, sv.RestPort)
	assert.Equal(t, "http://rest01:9090/rest/.well-known/treports/security", sv.DiscoveryURL)
}

// =============================================================================
// Validate
// =============================================================================

func TestValidate_UnknownEngine(t *testing.T) {
	rec := Default()
	rec.DatabaseType = "db2"

	err := rec.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationInvalid))

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.Fields(), "database_type")
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	rec := Default()
	rec.NetworkName = ""
	rec.RestartPolicy = "sometimes"
	rec.Postgres.Password = ""
	rec.AppServer.Port = 70000

	var verrs ValidationErrors
	require.True(t, errors.As(rec.Validate(), &verrs))
	assert.ElementsMatch(t,
		[]string{"network_name", "restart_policy", "postgres.password", "appserver.port"},
		verrs.Fields())
}

func TestValidate_ExternalDatabaseSkipsEngineFields(t *testing.T) {
	rec := Default()
	rec.UseExternalDatabase = true
	rec.Postgres = PostgresConfig{}
	rec.External = ExternalDatabase{Host: "db.example.com", Port: 5432, Username: "postgres"}

	assert.NoError(t, rec.Normalize().Validate())
}

func TestValidate_ExternalDatabaseRequiresHost(t *testing.T) {
	rec := Default()
	rec.UseExternalDatabase = true

	var verrs ValidationErrors
	require.True(t, errors.As(rec.Normalize().Validate(), &verrs))
	assert.Equal(t, []string{"external_database.host"}, verrs.Fields())
}

func TestValidate_VolumeNeedsNameOrBind(t *testing.T) {
	rec := Default()
	rec.AppServer.Volume = Volume{}
	rec.AppServer.APO = AuxVolume{Enabled: true}

	var verrs ValidationErrors
	require.True(t, errors.As(rec.Validate(), &verrs))
	assert.Equal(t, []string{"appserver.volume", "appserver.apo"}, verrs.Fields())
}

func TestValidate_DisabledServicesAreNotChecked(t *testing.T) {
	rec := Default()
	rec.AppRest = AppRestConfig{}
	rec.SmartView = SmartViewConfig{}

	assert.NoError(t, rec.Validate())
}

func TestValidate_DuplicateContainerNames(t *testing.T) {
	rec := Default()
	rec.IncludeRestServer = true
	rec.AppRest.ContainerName = rec.AppServer.ContainerName

	var verrs ValidationErrors
	require.True(t, errors.As(rec.Validate(), &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "apprest.container_name", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "appserver.container_name")
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Y", YesNo(true))
	assert.Equal(t, "N", YesNo(false))
}
