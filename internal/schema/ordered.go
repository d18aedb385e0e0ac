package schema

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Services keeps services in build order; it marshals as a mapping keyed by
// service name.
type Services []*Service

// EnvVar is one environment entry. Value is either a literal (string or int)
// or a ${VAR} reference string.
type EnvVar struct {
	Name  string
	Value any
}

// Environment is an ordered environment map with unique names.
type Environment []EnvVar

// Dependency is one depends_on entry.
type Dependency struct {
	Service   string
	Condition string
}

// Dependencies is an ordered depends_on map.
type Dependencies []Dependency

// Set adds name or replaces its value in place.
func (e *Environment) Set(name string, value any) {
	for i := range *e {
		if (*e)[i].Name == name {
			(*e)[i].Value = value
			return
		}
	}
	*e = append(*e, EnvVar{Name: name, Value: value})
}

// Get returns the value stored under name.
func (e Environment) Get(name string) (any, bool) {
	for _, v := range e {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Names returns the entry names in order.
func (e Environment) Names() []string {
	names := make([]string, 0, len(e))
	for _, v := range e {
		names = append(names, v.Name)
	}
	return names
}

// Condition returns the condition required on service, or "" when there is no
// dependency on it.
func (d Dependencies) Condition(service string) string {
	for _, dep := range d {
		if dep.Service == service {
			return dep.Condition
		}
	}
	return ""
}

// AsMap is a convenience for assertions and summaries.
func (d Dependencies) AsMap() map[string]string {
	m := make(map[string]string, len(d))
	for _, dep := range d {
		m[dep.Service] = dep.Condition
	}
	return m
}

func (s Services) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, service := range s {
		value := &yaml.Node{}
		if err := value.Encode(service); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, scalar(service.Name), value)
	}
	return node, nil
}

func (e Environment) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range e {
		value := &yaml.Node{}
		if err := value.Encode(v.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, scalar(v.Name), value)
	}
	return node, nil
}

func (d Dependencies) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, dep := range d {
		condition := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: []*yaml.Node{scalar("condition"), scalar(dep.Condition)},
		}
		node.Content = append(node.Content, scalar(dep.Service), condition)
	}
	return node, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func (s Services) MarshalJSON() ([]byte, error) {
	return orderedJSON(len(s), func(i int) (string, any) {
		return s[i].Name, s[i]
	})
}

func (e Environment) MarshalJSON() ([]byte, error) {
	return orderedJSON(len(e), func(i int) (string, any) {
		return e[i].Name, e[i].Value
	})
}

func (d Dependencies) MarshalJSON() ([]byte, error) {
	return orderedJSON(len(d), func(i int) (string, any) {
		return d[i].Service, map[string]string{"condition": d[i].Condition}
	})
}

func orderedJSON(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := entry(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
