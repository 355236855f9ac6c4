package core

// Parameter describes a single read-out value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of read-outs exposed by a sim.
// The HUD renders the groups in order.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose a status snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
