package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEnvVar(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      EnvType
		sensitive bool
	}{
		{"POSTGRES_PASSWORD", "ProtheusDatabasePassword1", EnvTypeSecret, true},
		{"MSSQL_SA_PASSWORD", "x", EnvTypeSecret, true},
		{"APPSERVER_PORT", "1234", EnvTypePort, false},
		{"DBACCESS_PORT_7890", "7890", EnvTypePort, false},
		{"APPREST_WEB_MANAGER", "8089", EnvTypePort, false},
		{"APPSERVER_MULTIPROTOCOLPORT", "1", EnvTypePort, false},
		{"SMARTVIEW_DISCOVERY_URL", "http://totvs_apprest:8081/rest", EnvTypeURL, false},
		{"DEBUG_SCRIPT", "false", EnvTypeBoolean, false},
		{"RESTORE_BACKUP", "Y", EnvTypeBoolean, false},
		{"APPSERVER_RPO_CUSTOM", "/totvs/protheus/apo/custom.rpo", EnvTypePath, false},
		{"APPSERVER_VOLUME_BIND", "./data", EnvTypePath, false},
		{"NETWORK_NAME", "totvs", EnvTypeConfig, false},
		{"DATABASE_PASSWORD", "${POSTGRES_PASSWORD}", EnvTypeReference, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sensitive := ClassifyEnvVar(tt.name, tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.sensitive, sensitive)
		})
	}
}

func TestIsSensitive(t *testing.T) {
	assert.True(t, IsSensitive("EXTERNAL_DB_PASSWORD"))
	assert.False(t, IsSensitive("EXTERNAL_DB_USERNAME"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "**", Mask("ab"))
	assert.Equal(t, "se****", Mask("secret"))
}

func TestSymbolRef(t *testing.T) {
	assert.Equal(t, "${APPSERVER_PORT}", AppServerPort.Ref())
	assert.Equal(t, "APPSERVER_PORT", AppServerPort.String())
}
