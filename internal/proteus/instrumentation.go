package proteus

import (
	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

// instrumentationFunctionNode loads a ProcessInstrumentationFunction
// with its actuating, signal-generating, and flow children.
type instrumentationFunctionNode struct {
	node
	assocs     []*association
	actuating  []*actuatingFunctionNode
	electrical []*actuatingElectricalFunctionNode
	generating []*signalGeneratingFunctionNode
	flows      []*informationFlowNode
	connectors []*signalConnectorNode
	function   *model.ProcessInstrumentationFunction
}

func newInstrumentationFunctionNode(ctx Context, el *xmldoc.Element) *instrumentationFunctionNode {
	n := &instrumentationFunctionNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	for _, c := range el.Children {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		switch child := built.(type) {
		case *actuatingFunctionNode:
			n.actuating = append(n.actuating, child)
		case *actuatingElectricalFunctionNode:
			n.electrical = append(n.electrical, child)
		case *signalGeneratingFunctionNode:
			n.generating = append(n.generating, child)
		case *informationFlowNode:
			n.flows = append(n.flows, child)
		case *signalConnectorNode:
			n.connectors = append(n.connectors, child)
		default:
			continue
		}
		n.addChild(built)
	}
	return n
}

func (p *instrumentationFunctionNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *instrumentationFunctionNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}

	f := &model.ProcessInstrumentationFunction{Base: model.Base{ID: id}}
	f.ClassName = p.elem.AttrValue("ComponentClass")
	decodeAttributes(p.ctx, p.elem, f)

	for _, child := range p.actuating {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if af, ok := obj.(*model.ActuatingFunction); ok && af != nil {
			f.ActuatingFunctions = append(f.ActuatingFunctions, af)
		}
	}
	for _, child := range p.electrical {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if ef, ok := obj.(*model.ActuatingElectricalFunction); ok && ef != nil {
			f.ActuatingElectricalFunctions = append(f.ActuatingElectricalFunctions, ef)
		}
	}
	for _, child := range p.generating {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if gf, ok := obj.(*model.ProcessSignalGeneratingFunction); ok && gf != nil {
			f.ProcessSignalGeneratingFunctions = append(f.ProcessSignalGeneratingFunctions, gf)
		}
	}
	for _, child := range p.flows {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if fl, ok := obj.(*model.InformationFlow); ok && fl != nil {
			f.InformationFlows = append(f.InformationFlows, fl)
		}
	}
	for _, child := range p.connectors {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if sc, ok := obj.(*model.SignalOffPageConnector); ok && sc != nil {
			f.SignalConnectors = append(f.SignalConnectors, sc)
		}
	}

	if !p.register(id, f) {
		return nil, nil
	}
	p.function = f
	return f, nil
}

func (p *instrumentationFunctionNode) Reference() error {
	return p.referencePhase(p.resolve)
}

// resolve defers all recognized function relations: logical start and
// end are redundantly encoded by the flows, membership by the loop
// collection, so the control pass decides.
func (p *instrumentationFunctionNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsLogicalStartOf, relIsLogicalEndOf, relIsAPartOf:
			return assocDeferred
		default:
			return assocUnknown
		}
	})
}

func (p *instrumentationFunctionNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.function, p.assocs)
	})
}

// actuatingFunctionNode loads an ActuatingFunction.
type actuatingFunctionNode struct {
	node
	assocs   []*association
	function *model.ActuatingFunction
}

func newActuatingFunctionNode(ctx Context, el *xmldoc.Element) *actuatingFunctionNode {
	return &actuatingFunctionNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *actuatingFunctionNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *actuatingFunctionNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	f := &model.ActuatingFunction{Base: model.Base{ID: id}}
	f.ClassName = p.elem.AttrValue("ComponentClass")
	decodeAttributes(p.ctx, p.elem, f)
	if !p.register(id, f) {
		return nil, nil
	}
	p.function = f
	return f, nil
}

func (p *actuatingFunctionNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *actuatingFunctionNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsLocatedIn:
			p.function.ActuatingLocation = target
			return assocResolved
		case relIsFulfilledBy:
			p.function.Systems = append(p.function.Systems, target)
			return assocResolved
		case relIsLogicalStartOf, relIsLogicalEndOf:
			return assocDeferred
		default:
			return assocUnknown
		}
	})
}

func (p *actuatingFunctionNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.function, p.assocs)
	})
}

// actuatingElectricalFunctionNode loads an ActuatingElectricalFunction.
// Its fulfilment relation is ill-defined in the source format and is
// deliberately dropped with a WARNING instead of being guessed at.
type actuatingElectricalFunctionNode struct {
	node
	assocs   []*association
	function *model.ActuatingElectricalFunction
}

func newActuatingElectricalFunctionNode(ctx Context, el *xmldoc.Element) *actuatingElectricalFunctionNode {
	return &actuatingElectricalFunctionNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *actuatingElectricalFunctionNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *actuatingElectricalFunctionNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	f := &model.ActuatingElectricalFunction{Base: model.Base{ID: id}}
	f.ClassName = p.elem.AttrValue("ComponentClass")
	decodeAttributes(p.ctx, p.elem, f)
	if !p.register(id, f) {
		return nil, nil
	}
	p.function = f
	return f, nil
}

func (p *actuatingElectricalFunctionNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *actuatingElectricalFunctionNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsFulfilledBy:
			return assocUnsupported
		default:
			return assocUnknown
		}
	})
}

// signalGeneratingFunctionNode loads a ProcessSignalGeneratingFunction.
type signalGeneratingFunctionNode struct {
	node
	assocs   []*association
	function *model.ProcessSignalGeneratingFunction
}

func newSignalGeneratingFunctionNode(ctx Context, el *xmldoc.Element) *signalGeneratingFunctionNode {
	return &signalGeneratingFunctionNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *signalGeneratingFunctionNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *signalGeneratingFunctionNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	f := &model.ProcessSignalGeneratingFunction{Base: model.Base{ID: id}}
	f.ClassName = p.elem.AttrValue("ComponentClass")
	decodeAttributes(p.ctx, p.elem, f)
	if !p.register(id, f) {
		return nil, nil
	}
	p.function = f
	return f, nil
}

func (p *signalGeneratingFunctionNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *signalGeneratingFunctionNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsLocatedIn:
			p.function.SensingLocation = target
			return assocResolved
		case relIsFulfilledBy:
			p.function.Systems = append(p.function.Systems, target)
			return assocResolved
		default:
			return assocUnknown
		}
	})
}

func (p *signalGeneratingFunctionNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.function, p.assocs)
	})
}

// informationFlowNode loads an InformationFlow and resolves its logical
// start and end.
type informationFlowNode struct {
	node
	assocs []*association
	flow   *model.InformationFlow
}

func newInformationFlowNode(ctx Context, el *xmldoc.Element) *informationFlowNode {
	return &informationFlowNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *informationFlowNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *informationFlowNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	f := &model.InformationFlow{Base: model.Base{ID: id}}
	f.ClassName = p.elem.AttrValue("ComponentClass")
	decodeAttributes(p.ctx, p.elem, f)
	if !p.register(id, f) {
		return nil, nil
	}
	p.flow = f
	return f, nil
}

func (p *informationFlowNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *informationFlowNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relHasLogicalStart:
			p.flow.Source = target
			return assocResolved
		case relHasLogicalEnd:
			p.flow.Target = target
			return assocResolved
		default:
			return assocUnknown
		}
	})
}

// signalConnectorNode loads an InformationFlowOffPageConnector with its
// optional reference child.
type signalConnectorNode struct {
	node
	assocs    []*association
	refNode   *signalConnectorReferenceNode
	connector *model.SignalOffPageConnector
}

func newSignalConnectorNode(ctx Context, el *xmldoc.Element) *signalConnectorNode {
	n := &signalConnectorNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	if c := el.FirstChild("InformationFlowOffPageConnectorReference"); c != nil {
		if built, ok := buildNode(ctx.Descend(c), c); ok {
			if ref, ok := built.(*signalConnectorReferenceNode); ok {
				n.refNode = ref
				n.addChild(ref)
			}
		}
	}
	return n
}

func (p *signalConnectorNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *signalConnectorNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	sc := &model.SignalOffPageConnector{Base: model.Base{ID: id}}
	decodeAttributes(p.ctx, p.elem, sc)

	if p.refNode != nil {
		obj, err := p.refNode.Compositional()
		if err != nil {
			return nil, err
		}
		if ref, ok := obj.(*model.SignalOffPageConnectorReference); ok && ref != nil {
			sc.Reference = ref
		}
	}

	if !p.register(id, sc) {
		return nil, nil
	}
	p.connector = sc
	return sc, nil
}

func (p *signalConnectorNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *signalConnectorNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		switch relation {
		case relIsLogicalStartOf, relIsLogicalEndOf, relIsReferencedBy:
			return assocDeferred
		default:
			return assocUnknown
		}
	})
}

func (p *signalConnectorNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.connector, p.assocs)
	})
}

// signalConnectorReferenceNode resolves the counterpart of a signal
// off-page connector by id.
type signalConnectorReferenceNode struct {
	node
	assocs []*association
	ref    *model.SignalOffPageConnectorReference
}

func newSignalConnectorReferenceNode(ctx Context, el *xmldoc.Element) *signalConnectorReferenceNode {
	return &signalConnectorReferenceNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *signalConnectorReferenceNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *signalConnectorReferenceNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	ref := &model.SignalOffPageConnectorReference{Base: model.Base{ID: id}}
	if !p.register(id, ref) {
		return nil, nil
	}
	p.ref = ref
	return ref, nil
}

func (p *signalConnectorReferenceNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *signalConnectorReferenceNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		if relation == relRefersTo {
			if sc, ok := target.(*model.SignalOffPageConnector); ok {
				p.ref.RefersTo = sc
				return assocResolved
			}
		}
		return assocUnknown
	})
}

// loopFunctionNode loads an InstrumentationLoopFunction.
type loopFunctionNode struct {
	node
	assocs []*association
	loop   *model.InstrumentationLoopFunction
}

func newLoopFunctionNode(ctx Context, el *xmldoc.Element) *loopFunctionNode {
	return &loopFunctionNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
}

func (p *loopFunctionNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *loopFunctionNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	l := &model.InstrumentationLoopFunction{Base: model.Base{ID: id}}
	l.ClassName = p.elem.AttrValue("ComponentClass")
	decodeAttributes(p.ctx, p.elem, l)
	if !p.register(id, l) {
		return nil, nil
	}
	p.loop = l
	return l, nil
}

func (p *loopFunctionNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *loopFunctionNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		if relation == relIsACollectionIncluding {
			p.loop.Members = append(p.loop.Members, target)
			return assocResolved
		}
		return assocUnknown
	})
}

func (p *loopFunctionNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.loop, p.assocs)
	})
}

// actuatingSystemNode loads an ActuatingSystem with its components.
type actuatingSystemNode struct {
	node
	assocs     []*association
	components []*actuatingSystemComponentNode
	system     *model.ActuatingSystem
}

func newActuatingSystemNode(ctx Context, el *xmldoc.Element) *actuatingSystemNode {
	n := &actuatingSystemNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	for _, c := range el.ChildrenByTag("ActuatingSystemComponent") {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		if child, ok := built.(*actuatingSystemComponentNode); ok {
			n.components = append(n.components, child)
			n.addChild(child)
		}
	}
	return n
}

func (p *actuatingSystemNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *actuatingSystemNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	s := &model.ActuatingSystem{Base: model.Base{ID: id}}
	s.ClassName = p.elem.AttrValue("ComponentClass")

	for _, child := range p.components {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if comp, ok := obj.(*model.ActuatingSystemComponent); ok && comp != nil {
			s.Components = append(s.Components, comp)
		}
	}

	if !p.register(id, s) {
		return nil, nil
	}
	p.system = s
	return s, nil
}

func (p *actuatingSystemNode) Reference() error {
	return p.referencePhase(p.resolve)
}

// resolve defers the fulfilment relation: the fulfilled function also
// declares the inverse, so the control pass reconciles the two.
func (p *actuatingSystemNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		if relation == relFulfills {
			return assocDeferred
		}
		return assocUnknown
	})
}

func (p *actuatingSystemNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.system, p.assocs)
	})
}

type actuatingSystemComponentNode struct {
	node
	component *model.ActuatingSystemComponent
}

func newActuatingSystemComponentNode(ctx Context, el *xmldoc.Element) *actuatingSystemComponentNode {
	return &actuatingSystemComponentNode{node: newNode(ctx, el)}
}

func (p *actuatingSystemComponentNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *actuatingSystemComponentNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	c := &model.ActuatingSystemComponent{Base: model.Base{ID: id}}
	c.ClassName = p.elem.AttrValue("ComponentClass")
	if !p.register(id, c) {
		return nil, nil
	}
	p.component = c
	return c, nil
}

// signalGeneratingSystemNode loads a ProcessSignalGeneratingSystem with
// its components.
type signalGeneratingSystemNode struct {
	node
	assocs     []*association
	components []*signalGeneratingSystemComponentNode
	system     *model.ProcessSignalGeneratingSystem
}

func newSignalGeneratingSystemNode(ctx Context, el *xmldoc.Element) *signalGeneratingSystemNode {
	n := &signalGeneratingSystemNode{node: newNode(ctx, el), assocs: parseAssociations(el)}
	for _, c := range el.ChildrenByTag("ProcessSignalGeneratingSystemComponent") {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		if child, ok := built.(*signalGeneratingSystemComponentNode); ok {
			n.components = append(n.components, child)
			n.addChild(child)
		}
	}
	return n
}

func (p *signalGeneratingSystemNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *signalGeneratingSystemNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	s := &model.ProcessSignalGeneratingSystem{Base: model.Base{ID: id}}
	s.ClassName = p.elem.AttrValue("ComponentClass")

	for _, child := range p.components {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if comp, ok := obj.(*model.ProcessSignalGeneratingSystemComponent); ok && comp != nil {
			s.Components = append(s.Components, comp)
		}
	}

	if !p.register(id, s) {
		return nil, nil
	}
	p.system = s
	return s, nil
}

func (p *signalGeneratingSystemNode) Reference() error {
	return p.referencePhase(p.resolve)
}

func (p *signalGeneratingSystemNode) resolve() error {
	return p.resolveAssociations(p.assocs, func(relation string, target model.Object) assocAction {
		if relation == relFulfills {
			return assocDeferred
		}
		return assocUnknown
	})
}

func (p *signalGeneratingSystemNode) Control() error {
	return p.controlPhase(func() error {
		return p.repairAssociations(p.system, p.assocs)
	})
}

type signalGeneratingSystemComponentNode struct {
	node
	component *model.ProcessSignalGeneratingSystemComponent
}

func newSignalGeneratingSystemComponentNode(ctx Context, el *xmldoc.Element) *signalGeneratingSystemComponentNode {
	return &signalGeneratingSystemComponentNode{node: newNode(ctx, el)}
}

func (p *signalGeneratingSystemComponentNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *signalGeneratingSystemComponentNode) build() (model.Object, error) {
	id, ok := p.requireID()
	if !ok {
		return nil, nil
	}
	c := &model.ProcessSignalGeneratingSystemComponent{Base: model.Base{ID: id}}
	c.ClassName = p.elem.AttrValue("ComponentClass")
	if !p.register(id, c) {
		return nil, nil
	}
	p.component = c
	return c, nil
}
