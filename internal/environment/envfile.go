package environment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
)

// EnvFileHeader is the first line of every generated env file.
const EnvFileHeader = "TOTVS Protheus Docker Compose - Environment Variables"

// nameNote follows the header. The descriptor declares its network and named
// volumes under literal keys, so the matching values here cannot change alone.
var nameNote = []string{
	"NETWORK_NAME and the volume name keys must equal the networks and volumes",
	"declared in the descriptor. Regenerate both files to rename them.",
}

// Entry is one KEY=value line. Commented entries document a key that the
// current record leaves unset.
type Entry struct {
	Key       types.Symbol
	Value     string
	Commented bool
}

type Section struct {
	Title   string
	Entries []Entry
}

// EnvFile is the rendered companion of a reference-mode descriptor.
type EnvFile struct {
	GeneratedAt time.Time
	Sections    []Section
}

// AssembleEnvFile renders rec into env-file sections. Keys are the same
// symbols the compose builders resolve, so every reference in the descriptor
// has exactly one active key here.
func AssembleEnvFile(rec config.Record, generatedAt time.Time) *EnvFile {
	rec = rec.Normalize()

	f := &EnvFile{GeneratedAt: generatedAt}
	f.add(networkSection(rec))
	f.add(databaseSection(rec))
	f.add(dbAccessSection(rec))
	f.add(licenseServerSection(rec))
	f.add(appServerSection(rec))
	if rec.IncludeRestServer {
		f.add(appRestSection(rec))
	}
	if rec.IncludeSmartView {
		f.add(smartViewSection(rec))
	}
	return f
}

func (f *EnvFile) add(b *sectionBuilder) {
	f.Sections = append(f.Sections, b.section)
}

// Values returns the active keys and their values.
func (f *EnvFile) Values() map[string]string {
	values := make(map[string]string)
	for _, s := range f.Sections {
		for _, e := range s.Entries {
			if !e.Commented {
				values[string(e.Key)] = e.Value
			}
		}
	}
	return values
}

// Keys returns the active keys in file order.
func (f *EnvFile) Keys() []string {
	var keys []string
	for _, s := range f.Sections {
		for _, e := range s.Entries {
			if !e.Commented {
				keys = append(keys, string(e.Key))
			}
		}
	}
	return keys
}

func (f *EnvFile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", EnvFileHeader)
	fmt.Fprintf(&b, "# Generated on %s\n", f.GeneratedAt.UTC().Format(time.RFC3339))
	for _, line := range nameNote {
		fmt.Fprintf(&b, "# %s\n", line)
	}

	for _, s := range f.Sections {
		fmt.Fprintf(&b, "\n# %s\n", s.Title)
		for _, e := range s.Entries {
			if e.Commented {
				fmt.Fprintf(&b, "# %s=%s\n", e.Key, quote(e.Value))
				continue
			}
			fmt.Fprintf(&b, "%s=%s\n", e.Key, quote(e.Value))
		}
	}
	return b.String()
}

func (f *EnvFile) Bytes() []byte {
	return []byte(f.String())
}

// quote wraps values that a dotenv parser would otherwise split, truncate at a
// comment or expand.
func quote(value string) string {
	if !strings.ContainsAny(value, " \t#$\"'\\\n\r") {
		return value
	}
	if !strings.ContainsAny(value, "'\n\r") {
		return "'" + value + "'"
	}
	return `"` + doubleQuoted.Replace(value) + `"`
}

// doubleQuoted escapes what a dotenv reader would expand or split inside
// double quotes.
var doubleQuoted = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
)

type sectionBuilder struct {
	section Section
}

func newSection(title string) *sectionBuilder {
	return &sectionBuilder{section: Section{Title: title}}
}

func (b *sectionBuilder) set(key types.Symbol, value any) {
	b.section.Entries = append(b.section.Entries, Entry{Key: key, Value: render(value)})
}

func (b *sectionBuilder) placeholder(key types.Symbol, value any) {
	b.section.Entries = append(b.section.Entries, Entry{Key: key, Value: render(value), Commented: true})
}

// volume writes the active half of a name/bind pair and documents the other.
func (b *sectionBuilder) volume(vol config.Volume, nameKey, bindKey types.Symbol) {
	if vol.Bind != "" {
		b.placeholder(nameKey, vol.Name)
		b.set(bindKey, vol.Bind)
		return
	}
	b.set(nameKey, vol.Name)
	b.placeholder(bindKey, "")
}

func (b *sectionBuilder) auxVolume(vol config.AuxVolume, nameKey, bindKey, enableKey types.Symbol) {
	if !vol.Enabled {
		b.placeholder(enableKey, false)
		return
	}
	b.volume(config.Volume{Name: vol.Name, Bind: vol.Bind}, nameKey, bindKey)
}

func render(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func networkSection(rec config.Record) *sectionBuilder {
	b := newSection("Network")
	b.set(types.NetworkName, rec.NetworkName)
	b.set(types.RestartPolicy, rec.RestartPolicy)
	b.set(types.DebugScript, rec.DebugScript)
	b.set(types.Timezone, rec.Timezone)
	return b
}

func databaseSection(rec config.Record) *sectionBuilder {
	if rec.UseExternalDatabase {
		b := newSection("External Database")
		b.set(types.ExternalDBHost, rec.External.Host)
		b.set(types.ExternalDBPort, rec.External.Port)
		b.set(types.ExternalDBUsername, rec.External.Username)
		b.set(types.ExternalDBPassword, rec.External.Password)
		return b
	}

	switch rec.DatabaseType {
	case config.EngineMSSQL:
		b := newSection("SQL Server")
		b.set(types.MSSQLContainerName, rec.MSSQL.ContainerName)
		b.set(types.MSSQLSAPassword, rec.MSSQL.SAPassword)
		b.set(types.MSSQLAcceptEULA, rec.MSSQL.AcceptEULA)
		b.set(types.MSSQLExternalPort, rec.MSSQL.ExternalPort)
		b.volume(rec.MSSQL.Volume, types.MSSQLVolumeName, types.MSSQLVolumeBind)
		b.set(types.RestoreBackup, config.YesNo(rec.MSSQL.RestoreBackup))
		return b
	case config.EngineOracle:
		b := newSection("Oracle")
		b.set(types.OracleContainerName, rec.Oracle.ContainerName)
		b.set(types.OraclePassword, rec.Oracle.Password)
		b.set(types.OracleExternalPort, rec.Oracle.ExternalPort)
		b.volume(rec.Oracle.Volume, types.OracleVolumeName, types.OracleVolumeBind)
		b.set(types.RestoreBackup, config.YesNo(rec.Oracle.RestoreBackup))
		return b
	default:
		b := newSection("PostgreSQL")
		b.set(types.PostgresContainerName, rec.Postgres.ContainerName)
		b.set(types.PostgresUser, rec.Postgres.User)
		b.set(types.PostgresPassword, rec.Postgres.Password)
		b.set(types.PostgresDB, rec.Postgres.DB)
		b.set(types.PostgresInitDBArgs, rec.Postgres.InitDBArgs)
		b.set(types.PostgresExternalPort, rec.Postgres.ExternalPort)
		b.volume(rec.Postgres.Volume, types.PostgresVolumeName, types.PostgresVolumeBind)
		b.set(types.RestoreBackup, config.YesNo(rec.Postgres.RestoreBackup))
		return b
	}
}

func dbAccessSection(rec config.Record) *sectionBuilder {
	dba := rec.DBAccess
	b := newSection("DBAccess")
	b.set(types.DBAccessContainerName, dba.ContainerName)
	b.set(types.DBAccessVersion, dba.Version)
	b.set(types.DBAccessDatabaseProfile, dba.DatabaseProfile)
	b.set(types.DBAccessDatabaseAlias, dba.DatabaseAlias)
	b.set(types.DBAccessDatabaseName, dba.DatabaseName)
	b.set(types.DBAccessConsoleFile, dba.ConsoleFile)
	if dba.ExposePorts {
		b.set(types.DBAccessPort, dba.Port)
		b.set(types.DBAccessAuditPort, dba.AuditPort)
	} else {
		b.placeholder(types.DBAccessExposePorts, false)
		b.placeholder(types.DBAccessPort, dba.Port)
		b.placeholder(types.DBAccessAuditPort, dba.AuditPort)
	}
	return b
}

func licenseServerSection(rec config.Record) *sectionBuilder {
	ls := rec.LicenseServer
	b := newSection("License Server")
	b.set(types.LicenseContainerName, ls.ContainerName)
	b.set(types.LicenseVersion, ls.Version)
	b.set(types.LicenseTCPPort, ls.TCPPort)
	b.set(types.LicensePort, ls.Port)
	b.set(types.LicenseWebAppPort, ls.WebAppPort)
	b.set(types.LicenseConsoleFile, ls.ConsoleFile)
	if ls.ExposePorts {
		b.set(types.LicenseTCPPortExternal, ls.TCPPortExternal)
		b.set(types.LicensePortExternal, ls.PortExternal)
		b.set(types.LicenseWebAppPortExternal, ls.WebAppPortExternal)
	} else {
		b.placeholder(types.LicenseExposePorts, false)
		b.placeholder(types.LicenseTCPPortExternal, ls.TCPPortExternal)
		b.placeholder(types.LicensePortExternal, ls.PortExternal)
		b.placeholder(types.LicenseWebAppPortExternal, ls.WebAppPortExternal)
	}
	return b
}

func appServerSection(rec config.Record) *sectionBuilder {
	as := rec.AppServer
	b := newSection("AppServer")
	b.set(types.AppServerContainerName, as.ContainerName)
	b.set(types.AppServerRelease, as.Release)
	b.set(types.AppServerPort, as.Port)
	b.set(types.AppServerWebPort, as.WebPort)
	b.set(types.AppServerRestPort, as.RestPort)
	b.set(types.AppServerWebManager, as.WebManager)
	b.set(types.AppServerRPOCustom, as.RPOCustom)
	b.set(types.AppServerConsoleFile, as.ConsoleFile)
	b.set(types.AppServerMultiProtocolPortSecure, as.MultiProtocolPortSecure)
	b.set(types.AppServerMultiProtocolPort, as.MultiProtocolPort)
	b.volume(as.Volume, types.AppServerVolumeName, types.AppServerVolumeBind)
	b.auxVolume(as.APO, types.AppServerVolumeAPO, types.AppServerVolumeAPOBind, types.AppServerEnableVolumeAPO)
	b.auxVolume(as.Logs, types.AppServerVolumeLogs, types.AppServerVolumeLogsBind, types.AppServerEnableVolumeLogs)
	return b
}

func appRestSection(rec config.Record) *sectionBuilder {
	ar := rec.AppRest
	b := newSection("AppRest")
	b.set(types.AppRestContainerName, ar.ContainerName)
	b.set(types.AppRestPort, ar.Port)
	b.set(types.AppRestWebPort, ar.WebPort)
	b.set(types.AppRestRestPort, ar.RestPort)
	b.set(types.AppRestWebManager, ar.WebManager)
	b.auxVolume(ar.APO, types.AppRestVolumeAPO, types.AppRestVolumeAPOBind, types.AppRestEnableVolumeAPO)
	b.auxVolume(ar.Logs, types.AppRestVolumeLogs, types.AppRestVolumeLogsBind, types.AppRestEnableVolumeLogs)
	return b
}

func smartViewSection(rec config.Record) *sectionBuilder {
	sv := rec.SmartView
	b := newSection("SmartView")
	b.set(types.SmartViewContainerName, sv.ContainerName)
	b.set(types.SmartViewVersion, sv.Version)
	b.set(types.SmartViewAppPort, sv.AppPort)
	b.set(types.SmartViewConfigPort, sv.ConfigPort)
	b.set(types.SmartViewRestServer, sv.RestServer)
	b.set(types.SmartViewRestPort, sv.RestPort)
	b.set(types.SmartViewDiscoveryURL, sv.DiscoveryURL)
	b.volume(sv.Volume, types.SmartViewVolumeName, types.SmartViewVolumeBind)
	return b
}

// ParseEnvFile reads env-file content the way docker compose does. Commented
// placeholders are ignored.
func ParseEnvFile(content []byte) (map[string]string, error) {
	values, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file: %w", err)
	}
	return values, nil
}

// Masked returns a copy of f with sensitive values hidden.
func (f *EnvFile) Masked() *EnvFile {
	masked := &EnvFile{GeneratedAt: f.GeneratedAt, Sections: make([]Section, len(f.Sections))}
	for i, s := range f.Sections {
		entries := make([]Entry, len(s.Entries))
		for j, e := range s.Entries {
			if types.IsSensitive(string(e.Key)) {
				e.Value = types.Mask(e.Value)
			}
			entries[j] = e
		}
		masked.Sections[i] = Section{Title: s.Title, Entries: entries}
	}
	return masked
}
