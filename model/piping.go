package model

// PipingNode is one process connection point of a piping item.
type PipingNode struct {
	Base
	Type string
}

// CenterLine is an explicit pipe run between two piping items.
type CenterLine struct {
	Base
	NumPoints int
}

// AttrSchema returns the decodable attribute fields of a center line.
func (c *CenterLine) AttrSchema() []AttrSpec { return centerLineAttrSchema }

// PipingComponent is an inline piping item such as a valve or fitting.
type PipingComponent struct {
	Base
	Class        PipingComponentClass
	CustomClass  string
	Nodes        []*PipingNode
	LocationOf   []Object
	ReferencedBy []Object
}

// AttrSchema returns the decodable attribute fields of a piping component.
func (p *PipingComponent) AttrSchema() []AttrSpec { return pipingComponentAttrSchema }

// Slots lists the relationship fields in declaration order.
func (p *PipingComponent) Slots() []Slot {
	return []Slot{
		Collection("nodes", &p.Nodes),
		Collection("locationOf", &p.LocationOf),
		Collection("referencedBy", &p.ReferencedBy),
	}
}

// PipeOffPageConnector stands in for pipe continuation on another
// drawing page. Its reference child resolves the counterpart connector
// by id.
type PipeOffPageConnector struct {
	Base
	Nodes        []*PipingNode
	Reference    *PipeOffPageConnectorReference
	ReferencedBy []Object
}

// AttrSchema returns the decodable attribute fields of an off-page connector.
func (p *PipeOffPageConnector) AttrSchema() []AttrSpec { return connectorAttrSchema }

// Slots lists the relationship fields in declaration order.
func (p *PipeOffPageConnector) Slots() []Slot {
	return []Slot{
		Collection("nodes", &p.Nodes),
		Singular("reference", &p.Reference),
		Collection("referencedBy", &p.ReferencedBy),
	}
}

// PipeOffPageConnectorReference resolves the counterpart of an off-page
// connector on another page.
type PipeOffPageConnectorReference struct {
	Base
	RefersTo *PipeOffPageConnector
}

// Slots lists the relationship fields in declaration order.
func (r *PipeOffPageConnectorReference) Slots() []Slot {
	return []Slot{
		Singular("refersTo", &r.RefersTo),
	}
}

// PropertyBreak marks a change of piping properties inside a segment.
type PropertyBreak struct {
	Base
	Nodes        []*PipingNode
	LocationOf   []Object
	ReferencedBy []Object
}

// Slots lists the relationship fields in declaration order.
func (p *PropertyBreak) Slots() []Slot {
	return []Slot{
		Collection("nodes", &p.Nodes),
		Collection("locationOf", &p.LocationOf),
		Collection("referencedBy", &p.ReferencedBy),
	}
}

// PipingConnection is one edge of a segment's item chain. CenterLine is
// nil when the connection was inferred from item adjacency.
type PipingConnection struct {
	SourceItem Object
	SourceNode *PipingNode
	TargetItem Object
	TargetNode *PipingNode
	CenterLine *CenterLine
}

// Direct reports whether the connection was inferred from adjacency
// rather than declared by an explicit center line.
func (c *PipingConnection) Direct() bool { return c.CenterLine == nil }

// PipingNetworkSegment is an ordered run of piping items and the
// connections between them, with resolved external endpoints.
type PipingNetworkSegment struct {
	Base
	Items       []Object
	Connections []*PipingConnection
	SourceItem  Object
	SourceNode  *PipingNode
	TargetItem  Object
	TargetNode  *PipingNode
}

// AttrSchema returns the decodable attribute fields of a segment.
func (s *PipingNetworkSegment) AttrSchema() []AttrSpec { return segmentAttrSchema }

// Slots lists the relationship fields in declaration order.
func (s *PipingNetworkSegment) Slots() []Slot {
	return []Slot{
		Collection("items", &s.Items),
	}
}

// NodesOf returns the process connection nodes of a piping item, or nil
// for objects without any.
func NodesOf(o Object) []*PipingNode {
	switch t := o.(type) {
	case *Nozzle:
		return t.Nodes
	case *PipingComponent:
		return t.Nodes
	case *PipeOffPageConnector:
		return t.Nodes
	case *PropertyBreak:
		return t.Nodes
	default:
		return nil
	}
}

// PipingNetworkSystem groups the segments of one line.
type PipingNetworkSystem struct {
	Base
	Segments []*PipingNetworkSegment
}

// AttrSchema returns the decodable attribute fields of a system.
func (s *PipingNetworkSystem) AttrSchema() []AttrSpec { return systemAttrSchema }

// Slots lists the relationship fields in declaration order.
func (s *PipingNetworkSystem) Slots() []Slot {
	return []Slot{
		Collection("segments", &s.Segments),
	}
}
