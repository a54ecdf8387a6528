package proteus

import (
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// equipmentNode loads an Equipment element with its nozzles and nested
// equipment.
type equipmentNode struct {
	node
	assocs    []*association
	nozzles   []*nozzleNode
	subs      []*equipmentNode
	equipment *model.Equipment
}

func newEquipmentNode(ctx Context, el *xmldoc.Element) *equipmentNode {
	n := &equipmentNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	for _, c := range el.Children {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		switch child := built.(type) {
		case *nozzleNode:
			n.nozzles = append(n.nozzles, child)
		case *equipmentNode:
			n.subs = append(n.subs, child)
		default:
			continue
		}
		n.addChild(built)
	}
	return n
}

func (p *equipmentNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *equipmentNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	eq := &model.Equipment{Base: model.Base{ID: id}}
	p.resolveClass(eq)
	decodeAttributes(p.ctx, p.elem, eq)

	for _, child := range p.nozzles {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if nz, ok := obj.(*model.Nozzle); ok && nz != nil {
			eq.Nozzles = append(eq.Nozzles, nz)
		}
	}
	for _, child := range p.subs {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if sub, ok := obj.(*model.Equipment); ok && sub != nil {
			eq.Equipment = append(eq.Equipment, sub)
		}
	}

	if !p.register(id, eq) {
		return nil, nil
	}
	p.equipment = eq
	return eq, nil
}

// resolveClass maps the ComponentClass attribute to the closed variant
// set. ColumnSection is ambiguous in the source vocabulary: nested under
// another Equipment element it denotes a sub-tagged section, otherwise a
// tagged one.
func (p *equipmentNode) resolveClass(eq *model.Equipment) {
	class := p.elem.AttrValue("ComponentClass")
	switch {
	case class == "":
	case class == "ColumnSection":
		if p.ctx.ParentTag() == "Equipment" {
			eq.Class = model.SubTaggedColumnSection
		} else {
			eq.Class = model.TaggedColumnSection
		}
	default:
		if c, ok := model.EquipmentClassFromName(class); ok {
			eq.Class = c
			return
		}
		eq.Class = model.EquipmentCustom
		eq.CustomClass = class
		p.ctx.Warn(msgUnknownClass(class, p.name))
	}
}

func (p *equipmentNode) Reference() error {
	return p.referencePhase(p.resolve)
}

// resolve dispatches the equipment relation types. Location-of edges
// toward nozzles are implied by nesting as well, so they wait for the
// control pass; explicit location-of edges toward anything else resolve
// here.
func (p *equipmentNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsTheLocationOf:
			if _, isNozzle := target.(*model.Nozzle); isNozzle {
				return assocDeferred
			}
			p.equipment.LocationOf = append(p.equipment.LocationOf, target)
			return assocResolved
		case relIsLocatedIn:
			return assocDeferred
		default:
			return assocUnknown
		}
	})
}

func (p *equipmentNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.equipment, p.assocs)
	})
}

// nozzleNode loads a Nozzle element with its connection points.
type nozzleNode struct {
	node
	assocs []*association
	ports  *connectionPoints
	nozzle *model.Nozzle
}

func newNozzleNode(ctx Context, el *xmldoc.Element) *nozzleNode {
	return &nozzleNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *nozzleNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *nozzleNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	nz := &model.Nozzle{Base: model.Base{ID: id}}
	if class := p.elem.AttrValue("ComponentClass"); class != "" {
		if c, ok := model.NozzleClassFromName(class); ok {
			nz.Class = c
		} else {
			nz.Class = model.NozzleCustom
			nz.CustomClass = class
			p.ctx.Warn(msgUnknownClass(class, p.name))
		}
	}
	decodeAttributes(p.ctx, p.elem, nz)

	p.ports = parseConnectionPoints(p.ctx, p.elem)
	nz.Nodes = p.ports.nodes

	if !p.register(id, nz) {
		return nil, nil
	}
	p.nozzle = nz
	return nz, nil
}

func (p *nozzleNode) Reference() error {
	return p.referencePhase(p.resolve)
}

// resolve dispatches the nozzle relation types. The located-in edge
// resolves here; the inverse direction is implied by equipment nesting
// and waits for the control pass.
func (p *nozzleNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsLocatedIn:
			p.nozzle.LocatedIn = target
			return assocResolved
		case relIsTheLocationOf:
			return assocDeferred
		default:
			return assocUnknown
		}
	})
}

func (p *nozzleNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.nozzle, p.assocs)
	})
}

func (p *nozzleNode) inflowNode() (*model.PipingNode, error)  { return p.ports.inflowNode() }
func (p *nozzleNode) outflowNode() (*model.PipingNode, error) { return p.ports.outflowNode() }
