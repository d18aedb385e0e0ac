package environment

import (
	"testing"

	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		literal any
		want    any
	}{
		{"literal string", ModeLiteral, "totvs_dbaccess", "totvs_dbaccess"},
		{"literal int stays int", ModeLiteral, 7890, 7890},
		{"literal dollar is escaped", ModeLiteral, "pa$word1", "pa$$word1"},
		{"reference ignores dollar", ModeReference, "pa$word1", "${DBACCESS_CONTAINER_NAME}"},
		{"reference string", ModeReference, "totvs_dbaccess", "${DBACCESS_CONTAINER_NAME}"},
		{"reference int", ModeReference, 7890, "${DBACCESS_CONTAINER_NAME}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.mode, tt.literal, types.DBAccessContainerName))
		})
	}
}

func TestResolver_String(t *testing.T) {
	literal := NewResolver(ModeLiteral)
	reference := NewResolver(ModeReference)

	assert.Equal(t, "1234", literal.String(1234, types.AppServerPort))
	assert.Equal(t, "${APPSERVER_PORT}", reference.String(1234, types.AppServerPort))
	assert.Equal(t, ModeReference, reference.Mode())
	assert.Equal(t, "/srv/$$data", literal.String("/srv/$data", types.AppServerVolumeBind))
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, ModeReference, ModeFor(true))
	assert.Equal(t, ModeLiteral, ModeFor(false))
	assert.Equal(t, "reference", ModeReference.String())
	assert.Equal(t, "literal", ModeLiteral.String())
}
