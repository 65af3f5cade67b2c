package construct

type (
	// Resource is a node in the resource graph: a single cloud resource the
	// provisioning backend is asked to realize.
	Resource interface {
		Id() ResourceId
		// Properties returns the resource's provider fields as plain data,
		// with references to other resources expressed as IaCValues.
		Properties() map[string]any
	}

	// IaCValue is a value that is either a literal or a reference to a
	// property of another resource that only exists once the backend has
	// realized it (an ARN, an id). When ResourceId is zero, Property holds
	// the literal value. Suffix is appended after the referenced property
	// resolves, for values like "<volume arn>/*".
	IaCValue struct {
		ResourceId ResourceId `yaml:"ref,omitempty" json:"ref,omitempty"`
		Property   string     `yaml:"property,omitempty" json:"property,omitempty"`
		Suffix     string     `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	}
)

// Properties resolvable against a realized resource.
const (
	ArnProperty  = "arn"
	IdProperty   = "id"
	NameProperty = "name"
)

func Literal(value string) IaCValue {
	return IaCValue{Property: value}
}

func Ref(id ResourceId, property string) IaCValue {
	return IaCValue{ResourceId: id, Property: property}
}

func (v IaCValue) IsLiteral() bool {
	return v.ResourceId.IsZero()
}
