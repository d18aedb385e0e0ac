package compose

import (
	"testing"

	"github.com/protheus-compose/protheus-compose/internal/config"
	"github.com/protheus-compose/protheus-compose/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func service(name string, deps ...string) *schema.Service {
	svc := schema.NewService(name)
	for _, d := range deps {
		dependsOn(svc, d, schema.ConditionStarted)
	}
	return svc
}

func TestDependencyOrder(t *testing.T) {
	tests := []struct {
		name     string
		services schema.Services
		want     []string
	}{
		{
			name:     "already ordered",
			services: schema.Services{service("a"), service("b", "a"), service("c", "b")},
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "dependents first",
			services: schema.Services{service("app", "db", "lic"), service("db"), service("lic")},
			want:     []string{"db", "lic", "app"},
		},
		{
			name:     "independent services keep input order",
			services: schema.Services{service("x"), service("y"), service("z")},
			want:     []string{"x", "y", "z"},
		},
		{
			name:     "empty",
			services: schema.Services{},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered, err := DependencyOrder(tt.services)
			require.NoError(t, err)

			names := make([]string, 0, len(ordered))
			for _, s := range ordered {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDependencyOrder_MissingService(t *testing.T) {
	_, err := DependencyOrder(schema.Services{service("dbaccess", "postgres")})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfigurationInvalid)
	assert.Contains(t, err.Error(), `depends on "postgres"`)

	var fieldErr *config.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "dbaccess", fieldErr.Field)
}

func TestDependencyOrder_Cycle(t *testing.T) {
	_, err := DependencyOrder(schema.Services{service("a", "b"), service("b", "a")})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfigurationInvalid)
	assert.Contains(t, err.Error(), "dependency cycle")
}
