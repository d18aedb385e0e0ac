package compose

import (
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// SmartViewProfiles are the compose profiles SmartView joins when the record
// asks for profiles.
var SmartViewProfiles = []string{"full", "with-smartview"}

func buildSmartView(c *buildContext) *schema.Service {
	sv := c.rec.SmartView

	svc := c.newService(ServiceSmartView,
		c.image("totvs_smartview", field{sv.Version, types.SmartViewVersion}),
		field{sv.ContainerName, types.SmartViewContainerName})
	if c.rec.UseProfiles {
		svc.Profiles = append([]string(nil), SmartViewProfiles...)
	}
	svc.Ports = []string{
		c.portMapping(field{sv.AppPort, types.SmartViewAppPort}, fixed(SmartViewAppInternal)),
		c.portMapping(field{sv.ConfigPort, types.SmartViewConfigPort}, fixed(SmartViewConfigInternal)),
	}

	env := &svc.Environment
	env.Set("SMARTVIEW_REST_SERVER", c.value(field{sv.RestServer, types.SmartViewRestServer}))
	env.Set("SMARTVIEW_REST_PORT", c.value(field{sv.RestPort, types.SmartViewRestPort}))
	env.Set("SMARTVIEW_DISCOVERY_URL", c.value(field{sv.DiscoveryURL, types.SmartViewDiscoveryURL}))
	env.Set("EXTRACT_RESOURCES", "true")
	c.setCommon(env)

	c.mount(svc, NewMount(sv.Volume, SmartViewDataPath, types.SmartViewVolumeName, types.SmartViewVolumeBind))
	dependsOn(svc, ServiceAppRest, schema.ConditionStarted)

	return svc
}
