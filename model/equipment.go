package model

// Equipment is a tagged plant item such as a vessel, pump, or column.
// Nozzles and sub-equipment are composition edges; LocatedIn and
// LocationOf are non-owning references filled from associations.
type Equipment struct {
	Base
	Class       EquipmentClass
	CustomClass string
	Nozzles     []*Nozzle
	Equipment   []*Equipment
	LocatedIn   Object
	LocationOf  []Object
}

// AttrSchema returns the decodable attribute fields of equipment.
func (e *Equipment) AttrSchema() []AttrSpec { return equipmentAttrSchema }

// Slots lists the relationship fields in declaration order.
func (e *Equipment) Slots() []Slot {
	return []Slot{
		Collection("nozzles", &e.Nozzles),
		Collection("equipment", &e.Equipment),
		Singular("locatedIn", &e.LocatedIn),
		Collection("locationOf", &e.LocationOf),
	}
}

// Nozzle is a connection stub on a piece of equipment. LocatedIn points
// at the chamber or equipment the nozzle sits on; the owning equipment
// also holds the nozzle in its composition list, so the two edges encode
// the same fact redundantly.
type Nozzle struct {
	Base
	Class       NozzleClass
	CustomClass string
	Nodes       []*PipingNode
	LocatedIn   Object
	LocationOf  []Object
}

// AttrSchema returns the decodable attribute fields of a nozzle.
func (n *Nozzle) AttrSchema() []AttrSpec { return nozzleAttrSchema }

// Slots lists the relationship fields in declaration order.
func (n *Nozzle) Slots() []Slot {
	return []Slot{
		Collection("nodes", &n.Nodes),
		Singular("locatedIn", &n.LocatedIn),
		Collection("locationOf", &n.LocationOf),
	}
}
