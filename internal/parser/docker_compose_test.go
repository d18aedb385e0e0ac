package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceCompose = `services:
  dbaccess:
    image: juliansantosinfo/totvs_dbaccess:${DBACCESS_VERSION}
    container_name: ${DBACCESS_CONTAINER_NAME}
    ports:
      - "${DBACCESS_PORT}:7890"
    environment:
      DATABASE_SERVER: ${POSTGRES_CONTAINER_NAME}
      DATABASE_PORT: 5432
    networks:
      - ${NETWORK_NAME}
    depends_on:
      postgres:
        condition: service_healthy
    healthcheck:
      test: ["CMD", "isql", "-b", "protheus", "postgres", "secret"]
      interval: 10s
  postgres:
    image: juliansantosinfo/totvs_postgres:12.1.2410
    container_name: ${POSTGRES_CONTAINER_NAME}
    volumes:
      - totvs_postgres_data:/var/lib/postgresql/data
    networks:
      - ${NETWORK_NAME}
volumes:
  totvs_postgres_data:
    driver: local
networks:
  totvs:
    driver: bridge
`

var referenceEnv = map[string]string{
	"DBACCESS_VERSION":        "23.1.1.4",
	"DBACCESS_CONTAINER_NAME": "totvs_dbaccess",
	"DBACCESS_PORT":           "17890",
	"POSTGRES_CONTAINER_NAME": "db1",
	"NETWORK_NAME":            "totvs",
}

func TestDockerComposeParser_Load(t *testing.T) {
	p := NewDockerComposeParser()

	project, err := p.Load(context.Background(), "docker-compose-postgres.yaml", []byte(referenceCompose), referenceEnv)
	require.NoError(t, err)

	assert.Equal(t, ProjectName, project.Name)
	assert.Equal(t, "docker-compose-postgres.yaml", project.Source)
	assert.Equal(t, []string{"totvs_postgres_data"}, project.Volumes)
	assert.Equal(t, []string{"totvs"}, project.Networks)
	require.Len(t, project.Services, 2)
	assert.Equal(t, "dbaccess", project.Services[0].Name)

	dbaccess := project.Service("dbaccess")
	require.NotNil(t, dbaccess)
	assert.Equal(t, "juliansantosinfo/totvs_dbaccess:23.1.1.4", dbaccess.Image)
	assert.Equal(t, "totvs_dbaccess", dbaccess.ContainerName)
	assert.Equal(t, []string{"17890:7890"}, dbaccess.Ports)
	assert.Equal(t, []string{"totvs"}, dbaccess.Networks)
	assert.Equal(t, map[string]string{"postgres": "service_healthy"}, dbaccess.DependsOn)
	assert.Equal(t, "db1", dbaccess.Environment["DATABASE_SERVER"])
	assert.Equal(t, "5432", dbaccess.Environment["DATABASE_PORT"])
	assert.True(t, dbaccess.HasHealthCheck)

	postgres := project.Service("postgres")
	require.NotNil(t, postgres)
	assert.Equal(t, []string{"totvs_postgres_data:/var/lib/postgresql/data"}, postgres.Volumes)
	assert.False(t, postgres.HasHealthCheck)

	assert.Nil(t, project.Service("appserver"))
}

func TestDockerComposeParser_LoadRejectsUndefinedNetwork(t *testing.T) {
	env := map[string]string{}
	for k, v := range referenceEnv {
		env[k] = v
	}
	env["NETWORK_NAME"] = "elsewhere"

	_, err := NewDockerComposeParser().Load(context.Background(), "compose.yaml", []byte(referenceCompose), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load compose project")
}

func TestDockerComposeParser_LoadRejectsInvalidYAML(t *testing.T) {
	_, err := NewDockerComposeParser().Load(context.Background(), "compose.yaml", []byte("services: [\n"), nil)
	assert.Error(t, err)
}

func TestDockerComposeParser_LoadFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stack")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	composePath := filepath.Join(dir, "docker-compose-postgres.yaml")
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(composePath, []byte(referenceCompose), 0o644))

	var env []byte
	for _, k := range []string{"DBACCESS_VERSION", "DBACCESS_CONTAINER_NAME", "DBACCESS_PORT", "POSTGRES_CONTAINER_NAME", "NETWORK_NAME"} {
		env = append(env, []byte(k+"="+referenceEnv[k]+"\n")...)
	}
	require.NoError(t, os.WriteFile(envPath, env, 0o644))

	project, err := NewDockerComposeParser().LoadFile(context.Background(), composePath, []string{envPath})
	require.NoError(t, err)

	assert.Equal(t, "stack", project.Name)
	assert.Equal(t, composePath, project.Source)
	dbaccess := project.Service("dbaccess")
	require.NotNil(t, dbaccess)
	assert.Equal(t, "db1", dbaccess.Environment["DATABASE_SERVER"])
	assert.Equal(t, []string{"17890:7890"}, dbaccess.Ports)
}
