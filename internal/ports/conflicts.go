package ports

import (
	"errors"
	"fmt"
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/config"
)

// ErrPortConflict is returned (wrapped) when two services publish the same
// host port.
var ErrPortConflict = errors.New("port conflict")

// Service labels used in conflict reports.
const (
	LabelDatabase      = "Database"
	LabelLicenseServer = "License Server"
	LabelDBAccess      = "DBAccess"
	LabelAppServer     = "AppServer"
	LabelAppRest       = "AppRest"
	LabelSmartView     = "SmartView"
)

// Claim is one host port published by a service.
type Claim struct {
	Port    int
	Service string
	Field   string
}

// Conflict is a port claimed again after its first owner.
type Conflict struct {
	Port     int
	Owner    Claim
	Claimant Claim
}

func (c Conflict) String() string {
	return fmt.Sprintf("port %d: %s (%s) conflicts with %s (%s)",
		c.Port, c.Claimant.Service, c.Claimant.Field, c.Owner.Service, c.Owner.Field)
}

// ConflictError carries every conflict found in a record.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	msgs := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		msgs = append(msgs, c.String())
	}
	return fmt.Sprintf("%s: %s", ErrPortConflict, strings.Join(msgs, "; "))
}

func (e *ConflictError) Unwrap() error {
	return ErrPortConflict
}

// Check reports every claim on a port that an earlier claim already owns.
// Protocol does not matter: two claims of one port always conflict.
func Check(claims []Claim) []Conflict {
	owners := make(map[int]Claim)
	var conflicts []Conflict
	for _, claim := range claims {
		if owner, taken := owners[claim.Port]; taken {
			conflicts = append(conflicts, Conflict{Port: claim.Port, Owner: owner, Claimant: claim})
			continue
		}
		owners[claim.Port] = claim
	}
	return conflicts
}

// Validate runs Check over the claims of rec and returns a *ConflictError when
// any port is claimed twice.
func Validate(rec config.Record) error {
	if conflicts := Check(Claims(rec)); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}
	return nil
}

// Claims lists the host ports published by the services rec enables, in
// service order. Container-side ports and unexposed ports are not claims.
func Claims(rec config.Record) []Claim {
	rec = rec.Normalize()

	var claims []Claim
	add := func(service, field string, port int) {
		claims = append(claims, Claim{Port: port, Service: service, Field: field})
	}

	if rec.LocalDatabase() {
		switch rec.DatabaseType {
		case config.EnginePostgres:
			add(LabelDatabase, "postgres.external_port", rec.Postgres.ExternalPort)
		case config.EngineMSSQL:
			add(LabelDatabase, "mssql.external_port", rec.MSSQL.ExternalPort)
		case config.EngineOracle:
			add(LabelDatabase, "oracle.external_port", rec.Oracle.ExternalPort)
		}
	}

	if ls := rec.LicenseServer; ls.ExposePorts {
		add(LabelLicenseServer, "licenseserver.tcp_port_external", ls.TCPPortExternal)
		add(LabelLicenseServer, "licenseserver.port_external", ls.PortExternal)
		add(LabelLicenseServer, "licenseserver.webapp_port_external", ls.WebAppPortExternal)
	}

	if dba := rec.DBAccess; dba.ExposePorts {
		add(LabelDBAccess, "dbaccess.port", dba.Port)
		add(LabelDBAccess, "dbaccess.audit_port", dba.AuditPort)
	}

	as := rec.AppServer
	add(LabelAppServer, "appserver.port", as.Port)
	add(LabelAppServer, "appserver.web_port", as.WebPort)
	add(LabelAppServer, "appserver.rest_port", as.RestPort)
	add(LabelAppServer, "appserver.web_manager", as.WebManager)

	if rec.IncludeRestServer {
		ar := rec.AppRest
		add(LabelAppRest, "apprest.port", ar.Port)
		add(LabelAppRest, "apprest.web_port", ar.WebPort)
		add(LabelAppRest, "apprest.rest_port", ar.RestPort)
		add(LabelAppRest, "apprest.web_manager", ar.WebManager)
	}

	if rec.IncludeSmartView {
		add(LabelSmartView, "smartview.app_port", rec.SmartView.AppPort)
		add(LabelSmartView, "smartview.config_port", rec.SmartView.ConfigPort)
	}

	return claims
}
