package compose

import (
	"fmt"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/schema"
)

// DependencyOrder returns services so that every service comes after the
// services it depends on. Ties keep the input order, so the result is
// deterministic. A dependency on a missing service or a cycle is a
// configuration error.
func DependencyOrder(services schema.Services) (schema.Services, error) {
	index := make(map[string]int, len(services))
	for i, svc := range services {
		index[svc.Name] = i
	}

	inDegree := make([]int, len(services))
	dependents := make([][]int, len(services))
	for i, svc := range services {
		for _, dep := range svc.DependsOn {
			j, ok := index[dep.Service]
			if !ok {
				return nil, config.NewFieldError(svc.Name,
					fmt.Sprintf("depends on %q, which is not part of the stack", dep.Service))
			}
			inDegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	// Kahn's algorithm; scanning by index instead of a queue keeps ties in input order.
	ordered := make(schema.Services, 0, len(services))
	done := make([]bool, len(services))
	for len(ordered) < len(services) {
		next := -1
		for i := range services {
			if !done[i] && inDegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, config.NewFieldError("depends_on", "dependency cycle between services")
		}
		done[next] = true
		ordered = append(ordered, services[next])
		for _, d := range dependents[next] {
			inDegree[d]--
		}
	}

	return ordered, nil
}
