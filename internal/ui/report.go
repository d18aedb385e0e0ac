package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/ports"
)

// Findings prints every record problem carried by err, one line each, and
// returns how many it printed. Errors that are not record problems print
// nothing.
func Findings(w io.Writer, err error) int {
	var conflicts *ports.ConflictError
	if errors.As(err, &conflicts) {
		for _, c := range conflicts.Conflicts {
			ValidationErr(w, fmt.Sprintf("port %d", c.Port),
				fmt.Sprintf("%s (%s) vs %s (%s)", c.Owner.Service, c.Owner.Field, c.Claimant.Service, c.Claimant.Field),
				"pick another host port for "+c.Claimant.Field)
		}
		return len(conflicts.Conflicts)
	}

	var fieldErrs config.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ValidationErr(w, fe.Field, fe.Message, "")
		}
		return len(fieldErrs)
	}

	var fieldErr *config.FieldError
	if errors.As(err, &fieldErr) {
		ValidationErr(w, fieldErr.Field, fieldErr.Message, "")
		return 1
	}

	return 0
}
