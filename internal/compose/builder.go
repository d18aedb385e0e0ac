package compose

import (
	"fmt"
	"strconv"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// Service keys in the descriptor. The database key comes from its profile.
const (
	ServiceLicenseServer = "licenseserver"
	ServiceDBAccess      = "dbaccess"
	ServiceAppServer     = "appserver"
	ServiceAppRest       = "apprest"
	ServiceSmartView     = "smartview"
)

// Fixed container-side ports.
const (
	DBAccessInternalPort      = 7890
	DBAccessAuditInternalPort = 7891
	SmartViewAppInternal      = 7017
	SmartViewConfigInternal   = 7019
	FileDescriptorLimit       = 65536
)

// field pairs a literal with its env-file key. Product constants carry no key
// and always render literally.
type field struct {
	literal any
	sym     types.Symbol
}

func fixed(literal any) field {
	return field{literal: literal}
}

// buildContext is what every builder reads: the record, the resolver bound to
// the record's mode and the resolved database profile.
type buildContext struct {
	rec     config.Record
	resolve environment.Resolver
	profile DatabaseProfile
}

func newBuildContext(rec config.Record) (*buildContext, error) {
	profile, err := ResolveDatabaseProfile(rec)
	if err != nil {
		return nil, err
	}
	return &buildContext{
		rec:     rec,
		resolve: environment.NewResolver(environment.ModeFor(rec.UseEnvFile)),
		profile: profile,
	}, nil
}

func (c *buildContext) value(f field) any {
	if f.sym == "" {
		return f.literal
	}
	return c.resolve.Value(f.literal, f.sym)
}

func (c *buildContext) str(f field) string {
	return fmt.Sprint(c.value(f))
}

// probe renders a health-check argument. Health checks keep literal values
// unless the record opts into references for them.
func (c *buildContext) probe(f field) string {
	if !c.rec.HealthCheckReferences {
		return environment.Escape(fmt.Sprint(f.literal))
	}
	return c.str(f)
}

func (c *buildContext) image(name string, tag field) string {
	return fmt.Sprintf("%s/%s:%s", c.rec.ImageRepository, name, c.str(tag))
}

// newService fills the fields every service shares.
func (c *buildContext) newService(key, image string, container field) *schema.Service {
	svc := schema.NewService(key)
	svc.Image = image
	svc.ContainerName = c.str(container)
	svc.Restart = c.str(field{c.rec.RestartPolicy, types.RestartPolicy})
	svc.Networks = []string{c.str(field{c.rec.NetworkName, types.NetworkName})}
	return svc
}

// setCommon appends the variables every image's entrypoint reads.
func (c *buildContext) setCommon(env *schema.Environment) {
	env.Set("DEBUG_SCRIPT", c.value(field{strconv.FormatBool(c.rec.DebugScript), types.DebugScript}))
	env.Set("TZ", c.value(field{c.rec.Timezone, types.Timezone}))
}

func (c *buildContext) mount(svc *schema.Service, spec MountSpec) {
	m := spec.Resolve(c.resolve)
	svc.Volumes = append(svc.Volumes, m.Spec)
	svc.Mounts = append(svc.Mounts, m)
}

// portMapping renders "host:container".
func (c *buildContext) portMapping(host, container field) string {
	return c.str(host) + ":" + c.str(container)
}

func dependsOn(svc *schema.Service, service, condition string) {
	svc.DependsOn = append(svc.DependsOn, schema.Dependency{Service: service, Condition: condition})
}
