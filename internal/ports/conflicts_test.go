package ports

import (
	"errors"
	"testing"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims_Default(t *testing.T) {
	claims := Claims(config.Default())

	assert.Equal(t, []Claim{
		{Port: 5432, Service: LabelDatabase, Field: "postgres.external_port"},
		{Port: 1234, Service: LabelAppServer, Field: "appserver.port"},
		{Port: 12345, Service: LabelAppServer, Field: "appserver.web_port"},
		{Port: 8080, Service: LabelAppServer, Field: "appserver.rest_port"},
		{Port: 8088, Service: LabelAppServer, Field: "appserver.web_manager"},
	}, claims)
}

func TestClaims_FollowEnabledServices(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Record)
		want   int
	}{
		{"external database claims nothing", func(r *config.Record) { r.UseExternalDatabase = true }, 4},
		{"license server exposed", func(r *config.Record) { r.LicenseServer.ExposePorts = true }, 8},
		{"dbaccess exposed", func(r *config.Record) { r.DBAccess.ExposePorts = true }, 7},
		{"rest server", func(r *config.Record) { r.IncludeRestServer = true }, 9},
		{"smartview brings the rest server", func(r *config.Record) { r.IncludeSmartView = true }, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := config.Default()
			tt.modify(&rec)
			assert.Len(t, Claims(rec), tt.want)
		})
	}
}

func TestCheck(t *testing.T) {
	claims := []Claim{
		{Port: 80, Service: "a", Field: "a.port"},
		{Port: 81, Service: "b", Field: "b.port"},
		{Port: 80, Service: "c", Field: "c.port"},
		{Port: 80, Service: "d", Field: "d.port"},
	}

	conflicts := Check(claims)
	require.Len(t, conflicts, 2)
	for _, c := range conflicts {
		assert.Equal(t, 80, c.Port)
		assert.Equal(t, "a", c.Owner.Service)
	}
	assert.Equal(t, "c", conflicts[0].Claimant.Service)
	assert.Equal(t, "d", conflicts[1].Claimant.Service)
	assert.Equal(t, "port 80: c (c.port) conflicts with a (a.port)", conflicts[0].String())

	assert.Empty(t, Check(claims[:2]))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(config.Default()))

	rec := config.Default()
	rec.IncludeSmartView = true
	rec.SmartView.AppPort = rec.AppServer.RestPort

	err := Validate(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPortConflict))

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, 8080, conflictErr.Conflicts[0].Port)
	assert.Equal(t, "appserver.rest_port", conflictErr.Conflicts[0].Owner.Field)
	assert.Equal(t, "smartview.app_port", conflictErr.Conflicts[0].Claimant.Field)
	assert.Contains(t, err.Error(), "port conflict: port 8080: SmartView")
}

func TestValidate_HiddenPortsDoNotConflict(t *testing.T) {
	rec := config.Default()
	// Unexposed license server ports live on the network only.
	rec.LicenseServer.PortExternal = rec.AppServer.Port

	assert.NoError(t, Validate(rec))

	rec.LicenseServer.ExposePorts = true
	assert.ErrorIs(t, Validate(rec), ErrPortConflict)
}
