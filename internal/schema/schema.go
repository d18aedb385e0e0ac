package schema

// ComposeVersion is the format version written at the top of every descriptor.
const ComposeVersion = "3.8"

// Dependency conditions understood by docker compose.
const (
	ConditionStarted = "service_started"
	ConditionHealthy = "service_healthy"
)

// Document is a complete docker-compose descriptor.
type Document struct {
	// Header is written as leading comment lines; not part of the YAML tree.
	Header   []string           `yaml:"-" json:"-"`
	Version  string             `yaml:"version" json:"version"`
	Services Services           `yaml:"services" json:"services"`
	Volumes  map[string]Volume  `yaml:"volumes" json:"volumes"`
	Networks map[string]Network `yaml:"networks" json:"networks"`
}

// Service is one container definition. Field order is the output order.
type Service struct {
	Name          string       `yaml:"-" json:"-"`
	Image         string       `yaml:"image" json:"image"`
	ContainerName string       `yaml:"container_name" json:"container_name"`
	User          string       `yaml:"user,omitempty" json:"user,omitempty"`
	Restart       string       `yaml:"restart,omitempty" json:"restart,omitempty"`
	Profiles      []string     `yaml:"profiles,omitempty" json:"profiles,omitempty"`
	Ports         []string     `yaml:"ports,omitempty" json:"ports,omitempty"`
	Ulimits       *Ulimits     `yaml:"ulimits,omitempty" json:"ulimits,omitempty"`
	Environment   Environment  `yaml:"environment,omitempty" json:"environment,omitempty"`
	Volumes       []string     `yaml:"volumes,omitempty" json:"volumes,omitempty"`
	Networks      []string     `yaml:"networks,omitempty" json:"networks,omitempty"`
	DependsOn     Dependencies `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	HealthCheck   *HealthCheck `yaml:"healthcheck,omitempty" json:"healthcheck,omitempty"`

	// Mounts keeps the unrendered mount points so named volumes can be
	// collected without parsing Volumes back.
	Mounts []Mount `yaml:"-" json:"-"`
}

// Mount is a resolved mount point of a service.
type Mount struct {
	// Volume is the literal named-volume identifier, empty for bind mounts.
	Volume string
	// Spec is the rendered "source:target" string.
	Spec string
}

type Ulimits struct {
	Nofile Ulimit `yaml:"nofile" json:"nofile"`
}

type Ulimit struct {
	Soft int `yaml:"soft" json:"soft"`
	Hard int `yaml:"hard" json:"hard"`
}

type HealthCheck struct {
	Test        []string `yaml:"test" json:"test"`
	Interval    string   `yaml:"interval" json:"interval"`
	Timeout     string   `yaml:"timeout" json:"timeout"`
	Retries     int      `yaml:"retries" json:"retries"`
	StartPeriod string   `yaml:"start_period" json:"start_period"`
}

type Volume struct {
	Driver string `yaml:"driver" json:"driver"`
}

type Network struct {
	Driver string `yaml:"driver" json:"driver"`
}

// Constructors

func NewDocument() *Document {
	return &Document{
		Version:  ComposeVersion,
		Services: make(Services, 0),
		Volumes:  make(map[string]Volume),
		Networks: make(map[string]Network),
	}
}

func (d *Document) AddService(service *Service) {
	d.Services = append(d.Services, service)
}

// Service returns the service registered under name, or nil.
func (d *Document) Service(name string) *Service {
	for _, s := range d.Services {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func NewService(name string) *Service {
	return &Service{Name: name}
}

// FileLimits returns the nofile ulimit with equal soft and hard limits.
func FileLimits(n int) *Ulimits {
	return &Ulimits{Nofile: Ulimit{Soft: n, Hard: n}}
}
