package environment

import (
	"fmt"
	"strings"

	"github.com/protheus-compose/protheus-compose/internal/environment/types"
)

// Mode selects whether descriptor values are written inline or as references
// into the env file.
type Mode int

const (
	ModeLiteral Mode = iota
	ModeReference
)

// ModeFor returns the mode matching a record's use_env_file flag.
func ModeFor(useEnvFile bool) Mode {
	if useEnvFile {
		return ModeReference
	}
	return ModeLiteral
}

func (m Mode) String() string {
	if m == ModeReference {
		return "reference"
	}
	return "literal"
}

// Resolve returns literal in ModeLiteral and the ${sym} marker in
// ModeReference. Literal strings come back escaped so compose reads them
// verbatim.
func Resolve(mode Mode, literal any, sym types.Symbol) any {
	if mode == ModeReference {
		return sym.Ref()
	}
	if s, ok := literal.(string); ok {
		return Escape(s)
	}
	return literal
}

// Escape doubles every "$" so compose interpolation yields s unchanged.
func Escape(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// Resolver binds a mode so builders can resolve values without carrying it
// around separately.
type Resolver struct {
	mode Mode
}

func NewResolver(mode Mode) Resolver {
	return Resolver{mode: mode}
}

func (r Resolver) Mode() Mode {
	return r.mode
}

// Value resolves a single field. Literal ints stay ints.
func (r Resolver) Value(literal any, sym types.Symbol) any {
	return Resolve(r.mode, literal, sym)
}

// String resolves a field for use inside a larger string such as a port
// mapping or an image reference.
func (r Resolver) String(literal any, sym types.Symbol) string {
	return fmt.Sprint(Resolve(r.mode, literal, sym))
}
