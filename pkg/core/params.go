package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe their state.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lines flattens the snapshot into "Label: value" strings in group order.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out = append(out, p.Label+": "+p.Value)
		}
	}
	return out
}
