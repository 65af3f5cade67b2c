package construct

// ResourceIntent is the record handed to the provisioning backend for one
// resource: what kind of resource, its fields, and which other intents in
// the same sequence must be realized first. Intents are immutable once
// planned.
type ResourceIntent struct {
	Kind        string         `yaml:"kind" json:"kind"`
	LogicalName string         `yaml:"logical_name" json:"logical_name"`
	Fields      map[string]any `yaml:"fields" json:"fields"`
	DependsOn   []string       `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
}
