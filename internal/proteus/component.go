package proteus

import (
	"strconv"

	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// pipingComponentNode loads an inline piping item such as a valve.
type pipingComponentNode struct {
	pipingItemNode
	component *model.PipingComponent
}

func newPipingComponentNode(ctx Context, el *xmldoc.Element) *pipingComponentNode {
	return &pipingComponentNode{pipingItemNode: newPipingItemNode(ctx, el)}
}

func (p *pipingComponentNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *pipingComponentNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	pc := &model.PipingComponent{Base: model.Base{ID: id}}
	if class := p.elem.AttrValue("ComponentClass"); class != "" {
		if c, ok := model.PipingComponentClassFromName(class); ok {
			pc.Class = c
		} else {
			pc.Class = model.PipingComponentCustom
			pc.CustomClass = class
			p.ctx.Warn(msgUnknownClass(class, p.name))
		}
	}
	decodeAttributes(p.ctx, p.elem, pc)

	p.parsePorts()
	pc.Nodes = p.ports.nodes

	if !p.register(id, pc) {
		return nil, nil
	}
	p.component = pc
	return pc, nil
}

func (p *pipingComponentNode) Reference() error {
	return p.referencePhase(p.resolve)
}

// resolve defers both piping item relation types: location-of duplicates
// instrumentation nesting and referenced-by duplicates the connector
// reference, so the control pass decides.
func (p *pipingComponentNode) resolve() error {
	return p.resolveAssociations(p.assocs, pipingItemDispatch)
}

func (p *pipingComponentNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.component, p.assocs)
	})
}

// propertyBreakNode loads a PropertyBreak item.
type propertyBreakNode struct {
	pipingItemNode
	brk *model.PropertyBreak
}

func newPropertyBreakNode(ctx Context, el *xmldoc.Element) *propertyBreakNode {
	return &propertyBreakNode{pipingItemNode: newPipingItemNode(ctx, el)}
}

func (p *propertyBreakNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *propertyBreakNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	pb := &model.PropertyBreak{Base: model.Base{ID: id}}
	p.parsePorts()
	pb.Nodes = p.ports.nodes

	if !p.register(id, pb) {
		return nil, nil
	}
	p.brk = pb
	return pb, nil
}

func (p *propertyBreakNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *propertyBreakNode) resolve() error {
	return p.resolveAssociations(p.assocs, pipingItemDispatch)
}

func (p *propertyBreakNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.brk, p.assocs)
	})
}

// centerLineNode loads a CenterLine run. Center lines often carry no id
// in exports; they are registered only when one is present and are never
// skipped for lacking one.
type centerLineNode struct {
	node
	line *model.CenterLine
}

func newCenterLineNode(ctx Context, el *xmldoc.Element) *centerLineNode {
	return &centerLineNode{node: newNode(ctx, el)}
}

func (p *centerLineNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *centerLineNode) build() (model.Object, error) {
	cl := &model.CenterLine{Base: model.Base{ID: p.elem.AttrValue("ID")}}
	if raw, ok := p.elem.Attr("NumPoints"); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			cl.NumPoints = n
		}
	}
	decodeAttributes(p.ctx, p.elem, cl)
	if cl.ID != "" && !p.register(cl.ID, cl) {
		return nil, nil
	}
	p.line = cl
	return cl, nil
}
