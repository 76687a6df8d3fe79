package diffjson

import "gopkg.in/yaml.v3"

// MarshalYAML renders d in the same field shape Marshal produces for JSON,
// for operators who pipe the Diff document into YAML-native tooling
// instead of jq.
func MarshalYAML(d Diff) ([]byte, error) {
	return yaml.Marshal(d)
}
