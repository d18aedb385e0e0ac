package types

type EnvType int

const (
	EnvTypeUnknown EnvType = iota
	EnvTypeSecret
	EnvTypeConfig
	EnvTypePort
	EnvTypePath
	EnvTypeURL
	EnvTypeBoolean
	EnvTypeReference // ${VAR} interpolation marker in a descriptor
)

func (t EnvType) String() string {
	switch t {
	case EnvTypeSecret:
		return "secret"
	case EnvTypeConfig:
		return "config"
	case EnvTypePort:
		return "port"
	case EnvTypePath:
		return "path"
	case EnvTypeURL:
		return "url"
	case EnvTypeBoolean:
		return "boolean"
	case EnvTypeReference:
		return "reference"
	default:
		return "unknown"
	}
}

type EnvResult struct {
	VarName    string
	Value      string
	Type       EnvType
	Sensitive  bool
	Source     string // e.g., "dotenv:/path/to/.env"
	Confidence int
}
