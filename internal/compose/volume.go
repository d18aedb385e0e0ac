package compose

import (
	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/environment"
	"github.com/protheus-compose/protheus-compose/internal/environment/types"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// Container-side mount points.
const (
	ProtheusDataPath  = "/totvs/protheus_data"
	ProtheusAPOPath   = "/totvs/protheus/apo"
	ProtheusLogsPath  = "/totvs/protheus/bin/appserver"
	SmartViewDataPath = "/totvs/smartview"
)

// MountKind tells a named volume from a bind mount.
type MountKind int

const (
	MountNamed MountKind = iota
	MountBind
)

// MountSpec is a mount point that is either Named(volume) or Bind(hostPath).
// NameSym and BindSym are the env-file keys of the two forms.
type MountSpec struct {
	Kind    MountKind
	Source  string
	Target  string
	NameSym types.Symbol
	BindSym types.Symbol
}

// NewMount picks the bind form when bind is set, the named form otherwise.
func NewMount(vol config.Volume, target string, nameSym, bindSym types.Symbol) MountSpec {
	if vol.Bind != "" {
		return MountSpec{Kind: MountBind, Source: vol.Bind, Target: target, NameSym: nameSym, BindSym: bindSym}
	}
	return MountSpec{Kind: MountNamed, Source: vol.Name, Target: target, NameSym: nameSym, BindSym: bindSym}
}

// NewAuxMount is NewMount for a mount with its own enable flag.
func NewAuxMount(vol config.AuxVolume, target string, nameSym, bindSym types.Symbol) MountSpec {
	return NewMount(config.Volume{Name: vol.Name, Bind: vol.Bind}, target, nameSym, bindSym)
}

// Symbol returns the env-file key of the active form.
func (m MountSpec) Symbol() types.Symbol {
	if m.Kind == MountBind {
		return m.BindSym
	}
	return m.NameSym
}

// Format renders the mount through the resolver.
func (m MountSpec) Format(r environment.Resolver) string {
	source := r.String(m.Source, m.Symbol())
	if m.Kind == MountBind {
		return FormatVolume("", source, m.Target)
	}
	return FormatVolume(source, "", m.Target)
}

// Resolve renders m and records the literal volume name for the named form.
func (m MountSpec) Resolve(r environment.Resolver) schema.Mount {
	mount := schema.Mount{Spec: m.Format(r)}
	if m.Kind == MountNamed {
		mount.Volume = m.Source
	}
	return mount
}

// FormatVolume returns "bind:target" when bind is set, else "name:target".
func FormatVolume(name, bind, target string) string {
	if bind != "" {
		return bind + ":" + target
	}
	return name + ":" + target
}
