package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testDocument() *Document {
	doc := NewDocument()

	db := NewService("postgres")
	db.Image = "juliansantosinfo/totvs_postgres:12.1.2410"
	db.ContainerName = "totvs_postgres"
	db.Environment.Set("POSTGRES_USER", "postgres")
	db.Environment.Set("POSTGRES_DB", "protheus")

	app := NewService("appserver")
	app.Image = "juliansantosinfo/totvs_appserver:12.1.2410"
	app.ContainerName = "totvs_appserver"
	app.Ulimits = FileLimits(65536)
	app.Environment.Set("APPSERVER_PORT", 1234)
	app.Environment.Set("APPSERVER_MODE", "application")
	app.DependsOn = Dependencies{
		{Service: "postgres", Condition: ConditionHealthy},
		{Service: "licenseserver", Condition: ConditionStarted},
	}

	doc.AddService(db)
	doc.AddService(app)
	return doc
}

func TestServices_YAMLKeepsOrder(t *testing.T) {
	data, err := yaml.Marshal(testDocument())
	require.NoError(t, err)

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &root))

	doc := root.Content[0]
	services := mappingValue(t, doc, "services")
	assert.Equal(t, []string{"postgres", "appserver"}, mappingKeys(services))

	app := mappingValue(t, services, "appserver")
	assert.Equal(t, []string{"image", "container_name", "ulimits", "environment", "depends_on"}, mappingKeys(app))
	assert.Equal(t, []string{"APPSERVER_PORT", "APPSERVER_MODE"}, mappingKeys(mappingValue(t, app, "environment")))
	assert.Equal(t, []string{"postgres", "licenseserver"}, mappingKeys(mappingValue(t, app, "depends_on")))
}

func TestEnvironment_YAMLKeepsIntegers(t *testing.T) {
	var env Environment
	env.Set("APPSERVER_PORT", 1234)
	env.Set("APPSERVER_CONTAINER_NAME", "${APPSERVER_CONTAINER_NAME}")

	data, err := yaml.Marshal(env)
	require.NoError(t, err)
	assert.Equal(t, "APPSERVER_PORT: 1234\nAPPSERVER_CONTAINER_NAME: ${APPSERVER_CONTAINER_NAME}\n", string(data))
}

func TestDependencies_YAML(t *testing.T) {
	deps := Dependencies{{Service: "dbaccess", Condition: ConditionHealthy}}

	data, err := yaml.Marshal(deps)
	require.NoError(t, err)
	assert.Equal(t, "dbaccess:\n    condition: service_healthy\n", string(data))
}

func TestServices_JSONKeepsOrder(t *testing.T) {
	data, err := json.Marshal(testDocument().Services)
	require.NoError(t, err)

	assert.Regexp(t, `^\{"postgres":\{.*\},"appserver":\{.*\}\}$`, string(data))
	assert.Contains(t, string(data), `"environment":{"APPSERVER_PORT":1234,"APPSERVER_MODE":"application"}`)
	assert.Contains(t, string(data), `"depends_on":{"postgres":{"condition":"service_healthy"},"licenseserver":{"condition":"service_started"}}`)
}

func TestEnvironment_SetReplacesInPlace(t *testing.T) {
	var env Environment
	env.Set("A", 1)
	env.Set("B", 2)
	env.Set("A", 3)

	assert.Equal(t, []string{"A", "B"}, env.Names())
	v, ok := env.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = env.Get("C")
	assert.False(t, ok)
}

func TestDependencies_Lookup(t *testing.T) {
	deps := Dependencies{
		{Service: "dbaccess", Condition: ConditionHealthy},
		{Service: "licenseserver", Condition: ConditionStarted},
	}

	assert.Equal(t, ConditionHealthy, deps.Condition("dbaccess"))
	assert.Equal(t, "", deps.Condition("smartview"))
	assert.Equal(t, map[string]string{"dbaccess": ConditionHealthy, "licenseserver": ConditionStarted}, deps.AsMap())
}

func TestDocument_Service(t *testing.T) {
	doc := testDocument()
	require.NotNil(t, doc.Service("appserver"))
	assert.Nil(t, doc.Service("smartview"))
}

func mappingValue(t *testing.T, node *yaml.Node, key string) *yaml.Node {
	t.Helper()
	require.Equal(t, yaml.MappingNode, node.Kind)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	t.Fatalf("key %q not found", key)
	return nil
}

func mappingKeys(node *yaml.Node) []string {
	var keys []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}
