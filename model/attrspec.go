package model

// AttrKind is the declared type of a decodable generic attribute.
type AttrKind int

const (
	// AttrString decodes to String.
	AttrString AttrKind = iota
	// AttrInteger decodes to Integer.
	AttrInteger
	// AttrMultiLanguage accumulates LocalizedText pairs across blocks.
	AttrMultiLanguage
	// AttrQuantity decodes a number with a unit from the declared set.
	AttrQuantity
	// AttrEnum decodes a case-exact value from the declared set.
	AttrEnum
)

// AttrSpec declares one decodable field of a domain class. Units applies
// to AttrQuantity, Enum to AttrEnum. Schema order is the order the
// decoder considers fields, mirroring declaration order of the class.
type AttrSpec struct {
	Name  string
	Kind  AttrKind
	Units []string
	Enum  []string
}

// Attributed is implemented by domain objects whose generic attributes
// are decoded against a field schema.
type Attributed interface {
	Object
	AttrSchema() []AttrSpec
	SetAttribute(name string, v Value)
	Attribute(name string) (Value, bool)
}

var pressureUnits = []string{"Pa", "kPa", "MPa", "bar", "mbar", "psi"}

var temperatureUnits = []string{"K", "degC", "degF"}

var lengthUnits = []string{"mm", "cm", "m", "in"}

var volumeUnits = []string{"L", "m3"}

var taggedItemAttrs = []AttrSpec{
	{Name: "tagName", Kind: AttrString},
	{Name: "subTagName", Kind: AttrString},
	{Name: "displayName", Kind: AttrMultiLanguage},
	{Name: "description", Kind: AttrMultiLanguage},
}

var equipmentAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "designPressure", Kind: AttrQuantity, Units: pressureUnits},
	AttrSpec{Name: "designTemperature", Kind: AttrQuantity, Units: temperatureUnits},
	AttrSpec{Name: "nominalCapacity", Kind: AttrQuantity, Units: volumeUnits},
	AttrSpec{Name: "materialOfConstruction", Kind: AttrString},
	AttrSpec{Name: "numberOfTrays", Kind: AttrInteger},
)

var nozzleAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "nominalDiameter", Kind: AttrQuantity, Units: lengthUnits},
	AttrSpec{Name: "nominalPressure", Kind: AttrQuantity, Units: pressureUnits},
	AttrSpec{Name: "flangeStandard", Kind: AttrString},
)

var pipingComponentAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "nominalDiameter", Kind: AttrQuantity, Units: lengthUnits},
	AttrSpec{Name: "pipingClass", Kind: AttrString},
	AttrSpec{Name: "operation", Kind: AttrEnum, Enum: []string{"Continuous", "Intermittent"}},
	AttrSpec{Name: "failAction", Kind: AttrEnum, Enum: []string{"FailOpen", "FailClose", "FailLocked"}},
)

var segmentAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "nominalDiameter", Kind: AttrQuantity, Units: lengthUnits},
	AttrSpec{Name: "pipingClass", Kind: AttrString},
	AttrSpec{Name: "insulationType", Kind: AttrString},
	AttrSpec{Name: "slope", Kind: AttrString},
)

var centerLineAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "nominalDiameter", Kind: AttrQuantity, Units: lengthUnits},
	AttrSpec{Name: "pipingClass", Kind: AttrString},
)

var systemAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "fluidCode", Kind: AttrString},
	AttrSpec{Name: "lineNumber", Kind: AttrString},
)

var connectorAttrSchema = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "drawingReference", Kind: AttrString},
)

var instrumentationAttrs = append(append([]AttrSpec{}, taggedItemAttrs...),
	AttrSpec{Name: "processVariable", Kind: AttrString},
	AttrSpec{Name: "signalType", Kind: AttrEnum, Enum: []string{"Electrical", "Pneumatic", "Hydraulic", "Software"}},
)
