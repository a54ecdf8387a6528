package model

// ProcessInstrumentationFunction is a measuring or controlling function
// of the plant, owning its actuating and signal-generating parts.
type ProcessInstrumentationFunction struct {
	Base
	ClassName                        string
	ActuatingFunctions               []*ActuatingFunction
	ActuatingElectricalFunctions     []*ActuatingElectricalFunction
	ProcessSignalGeneratingFunctions []*ProcessSignalGeneratingFunction
	InformationFlows                 []*InformationFlow
	SignalConnectors                 []*SignalOffPageConnector
	LogicalStartOf                   []Object
	LogicalEndOf                     []Object
	PartOf                           Object
}

// AttrSchema returns the decodable attribute fields of the function.
func (f *ProcessInstrumentationFunction) AttrSchema() []AttrSpec { return instrumentationAttrs }

// Slots lists the relationship fields in declaration order.
func (f *ProcessInstrumentationFunction) Slots() []Slot {
	return []Slot{
		Collection("actuatingFunctions", &f.ActuatingFunctions),
		Collection("actuatingElectricalFunctions", &f.ActuatingElectricalFunctions),
		Collection("processSignalGeneratingFunctions", &f.ProcessSignalGeneratingFunctions),
		Collection("informationFlows", &f.InformationFlows),
		Collection("signalConnectors", &f.SignalConnectors),
		Collection("logicalStartOf", &f.LogicalStartOf),
		Collection("logicalEndOf", &f.LogicalEndOf),
		Singular("partOf", &f.PartOf),
	}
}

// ActuatingFunction drives a final control element such as a valve
// actuator.
type ActuatingFunction struct {
	Base
	ClassName         string
	ActuatingLocation Object
	Systems           []Object
	LogicalStartOf    []Object
	LogicalEndOf      []Object
}

// AttrSchema returns the decodable attribute fields of the function.
func (f *ActuatingFunction) AttrSchema() []AttrSpec { return instrumentationAttrs }

// Slots lists the relationship fields in declaration order.
func (f *ActuatingFunction) Slots() []Slot {
	return []Slot{
		Singular("actuatingLocation", &f.ActuatingLocation),
		Collection("systems", &f.Systems),
		Collection("logicalStartOf", &f.LogicalStartOf),
		Collection("logicalEndOf", &f.LogicalEndOf),
	}
}

// ActuatingElectricalFunction drives an electrical consumer. Its
// fulfilment relationship is not resolved; see the loader notes.
type ActuatingElectricalFunction struct {
	Base
	ClassName string
}

// AttrSchema returns the decodable attribute fields of the function.
func (f *ActuatingElectricalFunction) AttrSchema() []AttrSpec { return instrumentationAttrs }

// ProcessSignalGeneratingFunction produces a process signal, typically a
// measurement.
type ProcessSignalGeneratingFunction struct {
	Base
	ClassName       string
	SensingLocation Object
	Systems         []Object
}

// AttrSchema returns the decodable attribute fields of the function.
func (f *ProcessSignalGeneratingFunction) AttrSchema() []AttrSpec { return instrumentationAttrs }

// Slots lists the relationship fields in declaration order.
func (f *ProcessSignalGeneratingFunction) Slots() []Slot {
	return []Slot{
		Singular("sensingLocation", &f.SensingLocation),
		Collection("systems", &f.Systems),
	}
}

// InformationFlow connects a signal source to a signal sink.
type InformationFlow struct {
	Base
	ClassName string
	Source    Object
	Target    Object
}

// AttrSchema returns the decodable attribute fields of the flow.
func (f *InformationFlow) AttrSchema() []AttrSpec { return instrumentationAttrs }

// Slots lists the relationship fields in declaration order.
func (f *InformationFlow) Slots() []Slot {
	return []Slot{
		Singular("source", &f.Source),
		Singular("target", &f.Target),
	}
}

// SignalOffPageConnector stands in for a signal line continuing on
// another drawing page.
type SignalOffPageConnector struct {
	Base
	Reference      *SignalOffPageConnectorReference
	LogicalStartOf []Object
	LogicalEndOf   []Object
	ReferencedBy   []Object
}

// AttrSchema returns the decodable attribute fields of the connector.
func (c *SignalOffPageConnector) AttrSchema() []AttrSpec { return connectorAttrSchema }

// Slots lists the relationship fields in declaration order.
func (c *SignalOffPageConnector) Slots() []Slot {
	return []Slot{
		Singular("reference", &c.Reference),
		Collection("logicalStartOf", &c.LogicalStartOf),
		Collection("logicalEndOf", &c.LogicalEndOf),
		Collection("referencedBy", &c.ReferencedBy),
	}
}

// SignalOffPageConnectorReference resolves the counterpart of a signal
// off-page connector.
type SignalOffPageConnectorReference struct {
	Base
	RefersTo *SignalOffPageConnector
}

// Slots lists the relationship fields in declaration order.
func (r *SignalOffPageConnectorReference) Slots() []Slot {
	return []Slot{
		Singular("refersTo", &r.RefersTo),
	}
}

// ActuatingSystem realizes one or more actuating functions in hardware.
type ActuatingSystem struct {
	Base
	ClassName  string
	Components []*ActuatingSystemComponent
	Fulfills   []Object
}

// Slots lists the relationship fields in declaration order.
func (s *ActuatingSystem) Slots() []Slot {
	return []Slot{
		Collection("components", &s.Components),
		Collection("fulfills", &s.Fulfills),
	}
}

// ActuatingSystemComponent is one hardware part of an actuating system.
type ActuatingSystemComponent struct {
	Base
	ClassName string
}

// ProcessSignalGeneratingSystem realizes signal-generating functions in
// hardware.
type ProcessSignalGeneratingSystem struct {
	Base
	ClassName  string
	Components []*ProcessSignalGeneratingSystemComponent
	Fulfills   []Object
}

// Slots lists the relationship fields in declaration order.
func (s *ProcessSignalGeneratingSystem) Slots() []Slot {
	return []Slot{
		Collection("components", &s.Components),
		Collection("fulfills", &s.Fulfills),
	}
}

// ProcessSignalGeneratingSystemComponent is one hardware part of a
// signal-generating system.
type ProcessSignalGeneratingSystemComponent struct {
	Base
	ClassName string
}

// InstrumentationLoopFunction collects the functions of one control loop.
type InstrumentationLoopFunction struct {
	Base
	ClassName string
	Members   []Object
}

// AttrSchema returns the decodable attribute fields of the loop.
func (l *InstrumentationLoopFunction) AttrSchema() []AttrSpec { return instrumentationAttrs }

// Slots lists the relationship fields in declaration order.
func (l *InstrumentationLoopFunction) Slots() []Slot {
	return []Slot{
		Collection("members", &l.Members),
	}
}
