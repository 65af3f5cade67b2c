package construct

import "fmt"

type ResourceId struct {
	Provider string `yaml:"provider" json:"provider" toml:"provider"`
	Type     string `yaml:"type" json:"type" toml:"type"`
	Name     string `yaml:"name" json:"name" toml:"name"`
}

var zeroId = ResourceId{}

func (id ResourceId) IsZero() bool {
	return id == zeroId
}

func (id ResourceId) String() string {
	if id.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%s:%s", id.Provider, id.Type, id.Name)
}

// Less orders ids lexicographically by provider, type, name. Used wherever a
// deterministic ordering of resources is needed.
func (id ResourceId) Less(other ResourceId) bool {
	if id.Provider != other.Provider {
		return id.Provider < other.Provider
	}
	if id.Type != other.Type {
		return id.Type < other.Type
	}
	return id.Name < other.Name
}
