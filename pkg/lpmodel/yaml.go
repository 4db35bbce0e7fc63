package lpmodel

import "github.com/goccy/go-yaml"

// MarshalYAML renders the model as YAML, using the same name-addressed
// projection as MarshalJSON.
func (m *Model) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(m.toJSONModel())
}
