package proteus

import (
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// systemNode loads a PipingNetworkSystem and chains its segments into
// one logical path where endpoints are missing.
type systemNode struct {
	node
	assocs   []*association
	segNodes []*segmentNode
	system   *model.PipingNetworkSystem
}

func newSystemNode(ctx Context, el *xmldoc.Element) *systemNode {
	n := &systemNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	for _, c := range el.ChildrenByTag("PipingNetworkSegment") {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		if child, ok := built.(*segmentNode); ok {
			n.segNodes = append(n.segNodes, child)
			n.addChild(child)
		}
	}
	return n
}

func (p *systemNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *systemNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	sys := &model.PipingNetworkSystem{Base: model.Base{ID: id}}
	decodeAttributes(p.ctx, p.elem, sys)

	for _, child := range p.segNodes {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if seg, ok := obj.(*model.PipingNetworkSegment); ok && seg != nil {
			sys.Segments = append(sys.Segments, seg)
		}
	}

	if !p.register(id, sys) {
		return nil, nil
	}
	p.system = sys
	return sys, nil
}

func (p *systemNode) Reference() error {
	return p.referencePhase(p.chainSegments)
}

// chainSegments infers cross-segment connectivity: when a segment lacks
// an endpoint and its structural neighbor's terminal item is internal to
// that neighbor, the neighbor's terminal item and port complete the
// missing side. This links otherwise-disconnected segments into one
// path.
func (p *systemNode) chainSegments() error {
	for i := 0; i+1 < len(p.segNodes); i++ {
		a, b := p.segNodes[i], p.segNodes[i+1]
		if a.segment == nil || b.segment == nil {
			continue
		}

		if a.segment.TargetItem == nil && b.segment.SourceItem != nil &&
			containsObject(b.segment.Items, b.segment.SourceItem) {
			a.segment.TargetItem = b.segment.SourceItem
			a.segment.TargetNode = b.segment.SourceNode
			p.ctx.Info(msgSegmentsChained(a.segment.ID, b.segment.ID))
		}

		if b.segment.SourceItem == nil && a.segment.TargetItem != nil &&
			containsObject(a.segment.Items, a.segment.TargetItem) {
			b.segment.SourceItem = a.segment.TargetItem
			b.segment.SourceNode = a.segment.TargetNode
			p.ctx.Info(msgSegmentsChained(a.segment.ID, b.segment.ID))
		}
	}

	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		return assocUnknown
	})
}

func (p *systemNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.system, p.assocs)
	})
}

func containsObject(items []model.Object, obj model.Object) bool {
	for _, it := range items {
		if it == obj {
			return true
		}
	}
	return false
}
