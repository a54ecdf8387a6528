package proteus

import (
	"strconv"

	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// connectionPoints holds the process nodes of a piping item and its
// declared main flow port indices. Indices are 1-based; 0 means the
// default applies: first node in, second node out.
type connectionPoints struct {
	nodes   []*model.PipingNode
	flowIn  int
	flowOut int
	parsed  bool
}

// parseConnectionPoints decodes the ConnectionPoints children of an
// item element. Multiple declarations accumulate their nodes in document
// order; a later declaration redeclaring FlowIn or FlowOut keeps the
// first value and logs ERROR. Only Node children typed "process" become
// ports.
func parseConnectionPoints(ctx Context, el *xmldoc.Element) *connectionPoints {
	cp := &connectionPoints{parsed: true}
	for _, block := range el.ChildrenByTag("ConnectionPoints") {
		offset := len(cp.nodes)
		for _, n := range block.ChildrenByTag("Node") {
			if n.AttrValue("Type") != "process" {
				continue
			}
			pn := &model.PipingNode{
				Base: model.Base{ID: n.AttrValue("ID")},
				Type: "process",
			}
			if pn.ID != "" {
				if err := ctx.objects.Register(pn.ID, pn); err != nil {
					ctx.Error(msgDuplicateID(pn.ID, "Node"))
					continue
				}
			}
			cp.nodes = append(cp.nodes, pn)
		}
		added := len(cp.nodes) - offset

		if declared, ok := block.Attr("NumPoints"); ok {
			if n, err := strconv.Atoi(declared); err == nil && n != added {
				ctx.Warn(msgNumPointsMismatch(n, added))
			}
		}

		if idx := parsePortIndex(ctx, block, "FlowIn", "inflow", added); idx != 0 {
			if cp.flowIn != 0 {
				ctx.Error(msgDuplicatePortDeclaration("inflow", el.Tag))
			} else {
				cp.flowIn = offset + idx
			}
		}
		if idx := parsePortIndex(ctx, block, "FlowOut", "outflow", added); idx != 0 {
			if cp.flowOut != 0 {
				ctx.Error(msgDuplicatePortDeclaration("outflow", el.Tag))
			} else {
				cp.flowOut = offset + idx
			}
		}
	}
	return cp
}

func parsePortIndex(ctx Context, block *xmldoc.Element, attr, kind string, count int) int {
	raw, ok := block.Attr(attr)
	if !ok {
		return 0
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 1 || idx > count {
		if err != nil {
			idx = 0
		}
		ctx.Error(msgPortIndexOutOfRange(kind, idx, count))
		return 0
	}
	return idx
}

// inflowNode returns the item's main inflow port: the declared index if
// set, otherwise the first node. Access before the compositional pass is
// a programmer error.
func (c *connectionPoints) inflowNode() (*model.PipingNode, error) {
	if c == nil || !c.parsed {
		return nil, derrors.Internalf("main inflow port accessed before compositional pass")
	}
	if c.flowIn >= 1 && c.flowIn <= len(c.nodes) {
		return c.nodes[c.flowIn-1], nil
	}
	if len(c.nodes) > 0 {
		return c.nodes[0], nil
	}
	return nil, nil
}

// outflowNode returns the item's main outflow port: the declared index
// if set, otherwise the second node. An item with fewer than two nodes
// has no default outflow port.
func (c *connectionPoints) outflowNode() (*model.PipingNode, error) {
	if c == nil || !c.parsed {
		return nil, derrors.Internalf("main outflow port accessed before compositional pass")
	}
	if c.flowOut >= 1 && c.flowOut <= len(c.nodes) {
		return c.nodes[c.flowOut-1], nil
	}
	if len(c.nodes) > 1 {
		return c.nodes[1], nil
	}
	return nil, nil
}

// pipingItemDispatch classifies associations declared on sequence
// items. Both relation types are redundantly encoded elsewhere, so the
// reference pass defers them and the control pass decides.
func pipingItemDispatch(relation string, _ model.Object) assocAction {
	switch relation {
	case relIsTheLocationOf, relIsReferencedBy:
		return assocDeferred
	default:
		return assocUnknown
	}
}

// pipingItem is the shared behavior of sequence items inside a piping
// network segment.
type pipingItem interface {
	Node
	inflowNode() (*model.PipingNode, error)
	outflowNode() (*model.PipingNode, error)
}

// pipingItemNode carries the behavior shared by piping components,
// off-page connectors, and property breaks: associations, connection
// points, and main port selection. Concrete item nodes embed it instead
// of duplicating the logic.
type pipingItemNode struct {
	node
	assocs []*association
	ports  *connectionPoints
}

func newPipingItemNode(ctx Context, el *xmldoc.Element) pipingItemNode {
	return pipingItemNode{
		node:   newNode(ctx, el),
		assocs: parseAssociations(el),
	}
}

// parsePorts decodes connection points once during the compositional
// pass.
func (p *pipingItemNode) parsePorts() {
	p.ports = parseConnectionPoints(p.ctx, p.elem)
}

func (p *pipingItemNode) inflowNode() (*model.PipingNode, error)  { return p.ports.inflowNode() }
func (p *pipingItemNode) outflowNode() (*model.PipingNode, error) { return p.ports.outflowNode() }
