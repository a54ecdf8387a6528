package model

// EquipmentClass is the closed set of recognized equipment variants.
// Unrecognized component classes map to EquipmentCustom and keep the
// original class name on the object.
type EquipmentClass int

const (
	EquipmentCustom EquipmentClass = iota
	Tank
	Vessel
	PressureVessel
	Pump
	CentrifugalPump
	ReciprocatingPump
	Compressor
	HeatExchanger
	PlateHeatExchanger
	TubularHeatExchanger
	Column
	TaggedColumnSection
	SubTaggedColumnSection
	Agitator
	Filter
	Heater
	Cooler
	Mixer
	Blower
)

var equipmentClassNames = map[string]EquipmentClass{
	"Tank":                   Tank,
	"Vessel":                 Vessel,
	"PressureVessel":         PressureVessel,
	"Pump":                   Pump,
	"CentrifugalPump":        CentrifugalPump,
	"ReciprocatingPump":      ReciprocatingPump,
	"Compressor":             Compressor,
	"HeatExchanger":          HeatExchanger,
	"PlateHeatExchanger":     PlateHeatExchanger,
	"TubularHeatExchanger":   TubularHeatExchanger,
	"Column":                 Column,
	"TaggedColumnSection":    TaggedColumnSection,
	"SubTaggedColumnSection": SubTaggedColumnSection,
	"Agitator":               Agitator,
	"Filter":                 Filter,
	"Heater":                 Heater,
	"Cooler":                 Cooler,
	"Mixer":                  Mixer,
	"Blower":                 Blower,
}

var equipmentClassStrings = func() map[EquipmentClass]string {
	out := make(map[EquipmentClass]string, len(equipmentClassNames))
	for name, c := range equipmentClassNames {
		out[c] = name
	}
	return out
}()

// EquipmentClassFromName resolves a component-class string to its
// variant. The second result is false for unrecognized names.
func EquipmentClassFromName(name string) (EquipmentClass, bool) {
	c, ok := equipmentClassNames[name]
	return c, ok
}

// String returns the component-class name of the variant.
func (c EquipmentClass) String() string {
	if s, ok := equipmentClassStrings[c]; ok {
		return s
	}
	return "CustomEquipment"
}

// NozzleClass is the closed set of recognized nozzle variants.
type NozzleClass int

const (
	NozzleCustom NozzleClass = iota
	NozzleGeneric
	FlangedNozzle
)

var nozzleClassNames = map[string]NozzleClass{
	"Nozzle":        NozzleGeneric,
	"FlangedNozzle": FlangedNozzle,
}

// NozzleClassFromName resolves a component-class string to its variant.
func NozzleClassFromName(name string) (NozzleClass, bool) {
	c, ok := nozzleClassNames[name]
	return c, ok
}

// String returns the component-class name of the variant.
func (c NozzleClass) String() string {
	switch c {
	case NozzleGeneric:
		return "Nozzle"
	case FlangedNozzle:
		return "FlangedNozzle"
	default:
		return "CustomNozzle"
	}
}

// PipingComponentClass is the closed set of recognized piping component
// variants.
type PipingComponentClass int

const (
	PipingComponentCustom PipingComponentClass = iota
	GateValve
	GlobeValve
	BallValve
	ButterflyValve
	CheckValve
	SafetyValve
	AngleValve
	Flange
	BlindFlange
	Reducer
	PipeTee
	PipeCross
	PipeFitting
	Strainer
	SightGlass
)

var pipingComponentClassNames = map[string]PipingComponentClass{
	"GateValve":      GateValve,
	"GlobeValve":     GlobeValve,
	"BallValve":      BallValve,
	"ButterflyValve": ButterflyValve,
	"CheckValve":     CheckValve,
	"SafetyValve":    SafetyValve,
	"AngleValve":     AngleValve,
	"Flange":         Flange,
	"BlindFlange":    BlindFlange,
	"Reducer":        Reducer,
	"PipeTee":        PipeTee,
	"PipeCross":      PipeCross,
	"PipeFitting":    PipeFitting,
	"Strainer":       Strainer,
	"SightGlass":     SightGlass,
}

var pipingComponentClassStrings = func() map[PipingComponentClass]string {
	out := make(map[PipingComponentClass]string, len(pipingComponentClassNames))
	for name, c := range pipingComponentClassNames {
		out[c] = name
	}
	return out
}()

// PipingComponentClassFromName resolves a component-class string to its
// variant.
func PipingComponentClassFromName(name string) (PipingComponentClass, bool) {
	c, ok := pipingComponentClassNames[name]
	return c, ok
}

// String returns the component-class name of the variant.
func (c PipingComponentClass) String() string {
	if s, ok := pipingComponentClassStrings[c]; ok {
		return s
	}
	return "CustomPipingComponent"
}
