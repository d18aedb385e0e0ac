package compose

import (
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// buildLicenseServer builds the license server. Its ports are published only
// when expose_ports is set; otherwise it is reachable on the network alone.
func buildLicenseServer(c *buildContext) *schema.Service {
	ls := c.rec.LicenseServer

	tcp := field{ls.TCPPort, types.LicenseTCPPort}
	port := field{ls.Port, types.LicensePort}
	webapp := field{ls.WebAppPort, types.LicenseWebAppPort}

	svc := c.newService(ServiceLicenseServer,
		c.image("totvs_licenseserver", field{ls.Version, types.LicenseVersion}),
		field{ls.ContainerName, types.LicenseContainerName})
	svc.Ulimits = schema.FileLimits(FileDescriptorLimit)

	if ls.ExposePorts {
		svc.Ports = []string{
			c.portMapping(field{ls.TCPPortExternal, types.LicenseTCPPortExternal}, tcp),
			c.portMapping(field{ls.PortExternal, types.LicensePortExternal}, port),
			c.portMapping(field{ls.WebAppPortExternal, types.LicenseWebAppPortExternal}, webapp),
		}
	}

	svc.Environment.Set("LICENSE_TCP_PORT", c.value(tcp))
	svc.Environment.Set("LICENSE_CONSOLEFILE", c.value(field{ls.ConsoleFile, types.LicenseConsoleFile}))
	svc.Environment.Set("LICENSE_PORT", c.value(port))
	svc.Environment.Set("LICENSE_WEBAPP_PORT", c.value(webapp))
	c.setCommon(&svc.Environment)

	return svc
}
