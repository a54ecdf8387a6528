package proteus

import (
	"strconv"

	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// chainElem is one position in a segment's interleaved sequence: either
// a piping item or a connection between two neighbors.
type chainElem struct {
	item     model.Object
	itemNode pipingItem
	conn     *model.PipingConnection
}

func (e chainElem) object() model.Object {
	if e.item != nil {
		return e.item
	}
	if e.conn != nil && e.conn.CenterLine != nil {
		return e.conn.CenterLine
	}
	return nil
}

// segEntry is one recognized child of the segment element in document
// order, before the compositional pass runs.
type segEntry struct {
	item pipingItem
	line *centerLineNode
}

// endpointDecl is the segment's explicit Connection declaration naming
// the external source and target by id, with optional 1-based node
// index overrides.
type endpointDecl struct {
	fromID   string
	toID     string
	fromNode int
	toNode   int
}

// segmentNode loads a PipingNetworkSegment: it reconstructs the ordered
// item/connection chain, synthesizes direct connections for adjacent
// items, detects reversed direction, and assigns source and target ports
// to every connection.
type segmentNode struct {
	node
	assocs   []*association
	entries  []segEntry
	endpoint *endpointDecl
	chain    []chainElem
	segment  *model.PipingNetworkSegment
}

func newSegmentNode(ctx Context, el *xmldoc.Element) *segmentNode {
	n := &segmentNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	for _, c := range el.Children {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		switch child := built.(type) {
		case *pipingComponentNode:
			n.entries = append(n.entries, segEntry{item: child})
		case *pipeConnectorNode:
			n.entries = append(n.entries, segEntry{item: child})
		case *propertyBreakNode:
			n.entries = append(n.entries, segEntry{item: child})
		case *centerLineNode:
			n.entries = append(n.entries, segEntry{line: child})
		default:
			continue
		}
		n.addChild(built)
	}
	return n
}

func (p *segmentNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *segmentNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	seg := &model.PipingNetworkSegment{Base: model.Base{ID: id}}
	decodeAttributes(p.ctx, p.elem, seg)
	p.parseEndpointDecl()

	// Build the chain in sibling order. Two items with no center line
	// between them get a synthesized direct connection.
	prevWasItem := false
	for _, e := range p.entries {
		if e.line != nil {
			obj, err := e.line.Compositional()
			if err != nil {
				return nil, err
			}
			conn := &model.PipingConnection{}
			if cl, ok := obj.(*model.CenterLine); ok {
				conn.CenterLine = cl
			}
			p.chain = append(p.chain, chainElem{conn: conn})
			seg.Connections = append(seg.Connections, conn)
			prevWasItem = false
			continue
		}

		obj, err := e.item.Compositional()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			continue
		}
		if prevWasItem {
			conn := &model.PipingConnection{}
			p.chain = append(p.chain, chainElem{conn: conn})
			seg.Connections = append(seg.Connections, conn)
		}
		p.chain = append(p.chain, chainElem{item: obj, itemNode: e.item})
		seg.Items = append(seg.Items, obj)
		prevWasItem = true
	}

	if !p.register(id, seg) {
		return nil, nil
	}
	p.segment = seg
	return seg, nil
}

func (p *segmentNode) parseEndpointDecl() {
	decls := p.elem.ChildrenByTag("Connection")
	if len(decls) == 0 {
		return
	}
	if len(decls) > 1 {
		p.ctx.Error(msgDuplicateConnection(p.name))
	}
	decl := decls[0]
	p.endpoint = &endpointDecl{
		fromID:   decl.AttrValue("FromID"),
		toID:     decl.AttrValue("ToID"),
		fromNode: parseNodeIndex(decl.AttrValue("FromNode")),
		toNode:   parseNodeIndex(decl.AttrValue("ToNode")),
	}
}

func parseNodeIndex(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func (p *segmentNode) Reference() error {
	return p.referencePhase(p.connect)
}

// connect runs after the item children are resolved: it detects reversed
// direction, binds every connection to its neighbor ports, and settles
// the segment's external endpoints.
func (p *segmentNode) connect() error {
	seg := p.segment

	var srcObj, tgtObj model.Object
	var srcIdx, tgtIdx int
	if p.endpoint != nil {
		if p.endpoint.fromID != "" {
			srcObj, _ = p.ctx.objects.Lookup(p.endpoint.fromID)
		}
		if p.endpoint.toID != "" {
			tgtObj, _ = p.ctx.objects.Lookup(p.endpoint.toID)
		}
		srcIdx = p.endpoint.fromNode
		tgtIdx = p.endpoint.toNode
	}

	if p.isReversed(srcObj, tgtObj) {
		reverseChain(p.chain)
		reverseObjects(seg.Items)
		reverseConnections(seg.Connections)
	}

	if err := p.assignConnectionPorts(srcObj, tgtObj, srcIdx, tgtIdx); err != nil {
		return err
	}
	return p.assignEndpoints(srcObj, tgtObj, srcIdx, tgtIdx)
}

// isReversed applies the positional identity check: a declared source
// sitting at the end of the sequence, or a declared target sitting at
// the start, means the sequence was exported against flow order.
func (p *segmentNode) isReversed(srcObj, tgtObj model.Object) bool {
	if len(p.chain) == 0 {
		return false
	}
	first := p.chain[0].object()
	last := p.chain[len(p.chain)-1].object()
	if srcObj != nil && last != nil && srcObj == last {
		return true
	}
	if tgtObj != nil && first != nil && tgtObj == first {
		return true
	}
	return false
}

// assignConnectionPorts walks the chain and binds every connection to
// the main outflow port of its left neighbor and the main inflow port of
// its right neighbor. Only the connections at the sequence boundary bind
// to the external endpoints, honoring declared node index overrides; an
// interior connection without an item neighbor stays open.
func (p *segmentNode) assignConnectionPorts(srcObj, tgtObj model.Object, srcIdx, tgtIdx int) error {
	for i, e := range p.chain {
		if e.conn == nil {
			continue
		}
		conn := e.conn

		if i > 0 && p.chain[i-1].item != nil {
			conn.SourceItem = p.chain[i-1].item
			n, err := p.chain[i-1].itemNode.outflowNode()
			if err != nil {
				return err
			}
			conn.SourceNode = n
		} else if i == 0 && srcObj != nil {
			conn.SourceItem = srcObj
			conn.SourceNode = nodeAt(srcObj, srcIdx)
		}

		if i+1 < len(p.chain) && p.chain[i+1].item != nil {
			conn.TargetItem = p.chain[i+1].item
			n, err := p.chain[i+1].itemNode.inflowNode()
			if err != nil {
				return err
			}
			conn.TargetNode = n
		} else if i == len(p.chain)-1 && tgtObj != nil {
			conn.TargetItem = tgtObj
			conn.TargetNode = nodeAt(tgtObj, tgtIdx)
		}
	}
	return nil
}

// assignEndpoints settles the segment's external source and target. A
// declared endpoint wins; without one, a terminal item becomes the
// implicit endpoint through its main flow port.
func (p *segmentNode) assignEndpoints(srcObj, tgtObj model.Object, srcIdx, tgtIdx int) error {
	seg := p.segment

	switch {
	case srcObj != nil:
		seg.SourceItem = srcObj
		seg.SourceNode = nodeAt(srcObj, srcIdx)
		if seg.SourceNode == nil {
			if in := p.internalItemNode(srcObj); in != nil {
				n, err := in.inflowNode()
				if err != nil {
					return err
				}
				seg.SourceNode = n
			}
		}
	case len(p.chain) > 0 && p.chain[0].item != nil:
		seg.SourceItem = p.chain[0].item
		n, err := p.chain[0].itemNode.inflowNode()
		if err != nil {
			return err
		}
		seg.SourceNode = n
	}

	switch {
	case tgtObj != nil:
		seg.TargetItem = tgtObj
		seg.TargetNode = nodeAt(tgtObj, tgtIdx)
		if seg.TargetNode == nil {
			if in := p.internalItemNode(tgtObj); in != nil {
				n, err := in.outflowNode()
				if err != nil {
					return err
				}
				seg.TargetNode = n
			}
		}
	case len(p.chain) > 0 && p.chain[len(p.chain)-1].item != nil:
		last := p.chain[len(p.chain)-1]
		seg.TargetItem = last.item
		n, err := last.itemNode.outflowNode()
		if err != nil {
			return err
		}
		seg.TargetNode = n
	}
	return nil
}

// internalItemNode returns the loader node of obj when obj is one of
// this segment's own items.
func (p *segmentNode) internalItemNode(obj model.Object) pipingItem {
	for _, e := range p.chain {
		if e.item == obj {
			return e.itemNode
		}
	}
	return nil
}

func (p *segmentNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.segment, p.assocs)
	})
}

// nodeAt resolves a 1-based node index against an object's connection
// nodes. Index 0 or an object without nodes yields nil.
func nodeAt(obj model.Object, idx int) *model.PipingNode {
	if idx < 1 {
		return nil
	}
	nodes := model.NodesOf(obj)
	if idx > len(nodes) {
		return nil
	}
	return nodes[idx-1]
}

func reverseChain(s []chainElem) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseObjects(s []model.Object) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseConnections(s []*model.PipingConnection) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
