package proteus

import (
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// pipeConnectorNode loads a PipeOffPageConnector: a generic piping item
// plus the reference child resolving its counterpart page.
type pipeConnectorNode struct {
	pipingItemNode
	refNode   *pipeConnectorReferenceNode
	connector *model.PipeOffPageConnector
}

func newPipeConnectorNode(ctx Context, el *xmldoc.Element) *pipeConnectorNode {
	n := &pipeConnectorNode{pipingItemNode: newPipingItemNode(ctx, el)}
	if c := el.FirstChild("PipeOffPageConnectorReference"); c != nil {
		if built, ok := buildNode(ctx.Descend(c), c); ok {
			if ref, ok := built.(*pipeConnectorReferenceNode); ok {
				n.refNode = ref
				n.addChild(ref)
			}
		}
	}
	return n
}

func (p *pipeConnectorNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *pipeConnectorNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	oc := &model.PipeOffPageConnector{Base: model.Base{ID: id}}
	decodeAttributes(p.ctx, p.elem, oc)

	p.parsePorts()
	oc.Nodes = p.ports.nodes

	if p.refNode != nil {
		obj, err := p.refNode.Compositional()
		if err != nil {
			return nil, err
		}
		if ref, ok := obj.(*model.PipeOffPageConnectorReference); ok && ref != nil {
			oc.Reference = ref
		}
	}

	if !p.register(id, oc) {
		return nil, nil
	}
	p.connector = oc
	return oc, nil
}

func (p *pipeConnectorNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *pipeConnectorNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsReferencedBy:
			return assocDeferred
		default:
			return assocUnknown
		}
	})
}

func (p *pipeConnectorNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.connector, p.assocs)
	})
}

// pipeConnectorReferenceNode resolves the counterpart connector of an
// off-page connector by id.
type pipeConnectorReferenceNode struct {
	node
	assocs []*association
	ref    *model.PipeOffPageConnectorReference
}

func newPipeConnectorReferenceNode(ctx Context, el *xmldoc.Element) *pipeConnectorReferenceNode {
	return &pipeConnectorReferenceNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *pipeConnectorReferenceNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *pipeConnectorReferenceNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	ref := &model.PipeOffPageConnectorReference{Base: model.Base{ID: id}}
	if !p.register(id, ref) {
		return nil, nil
	}
	p.ref = ref
	return ref, nil
}

func (p *pipeConnectorReferenceNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *pipeConnectorReferenceNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relRefersTo:
			if oc, ok := target.(*model.PipeOffPageConnector); ok {
				p.ref.RefersTo = oc
				return assocResolved
			}
			return assocUnknown
		default:
			return assocUnknown
		}
	})
}
