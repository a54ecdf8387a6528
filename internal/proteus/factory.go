package proteus

import "github.com/jacoelho/dexpi/internal/xmldoc"

// builder constructs the loader node for one recognized element tag.
type builder func(ctx Context, el *xmldoc.Element) Node

// builders is the single tag dispatch table. Parents walk their
// children through buildNode and keep the concrete node types they own;
// a recognized tag in an unexpected position is built and then
// discarded by the parent, which matches skipping it.
var builders map[string]builder

func init() {
	builders = map[string]builder{
		"Equipment":                                func(ctx Context, el *xmldoc.Element) Node { return newEquipmentNode(ctx, el) },
		"Nozzle":                                   func(ctx Context, el *xmldoc.Element) Node { return newNozzleNode(ctx, el) },
		"PipingNetworkSystem":                      func(ctx Context, el *xmldoc.Element) Node { return newSystemNode(ctx, el) },
		"PipingNetworkSegment":                     func(ctx Context, el *xmldoc.Element) Node { return newSegmentNode(ctx, el) },
		"PipingComponent":                          func(ctx Context, el *xmldoc.Element) Node { return newPipingComponentNode(ctx, el) },
		"PipeOffPageConnector":                     func(ctx Context, el *xmldoc.Element) Node { return newPipeConnectorNode(ctx, el) },
		"PipeOffPageConnectorReference":            func(ctx Context, el *xmldoc.Element) Node { return newPipeConnectorReferenceNode(ctx, el) },
		"PropertyBreak":                            func(ctx Context, el *xmldoc.Element) Node { return newPropertyBreakNode(ctx, el) },
		"CenterLine":                               func(ctx Context, el *xmldoc.Element) Node { return newCenterLineNode(ctx, el) },
		"ProcessInstrumentationFunction":           func(ctx Context, el *xmldoc.Element) Node { return newInstrumentationFunctionNode(ctx, el) },
		"ActuatingFunction":                        func(ctx Context, el *xmldoc.Element) Node { return newActuatingFunctionNode(ctx, el) },
		"ActuatingElectricalFunction":              func(ctx Context, el *xmldoc.Element) Node { return newActuatingElectricalFunctionNode(ctx, el) },
		"ProcessSignalGeneratingFunction":          func(ctx Context, el *xmldoc.Element) Node { return newSignalGeneratingFunctionNode(ctx, el) },
		"InformationFlow":                          func(ctx Context, el *xmldoc.Element) Node { return newInformationFlowNode(ctx, el) },
		"InformationFlowOffPageConnector":          func(ctx Context, el *xmldoc.Element) Node { return newSignalConnectorNode(ctx, el) },
		"InformationFlowOffPageConnectorReference": func(ctx Context, el *xmldoc.Element) Node { return newSignalConnectorReferenceNode(ctx, el) },
		"InstrumentationLoopFunction":              func(ctx Context, el *xmldoc.Element) Node { return newLoopFunctionNode(ctx, el) },
		"ActuatingSystem":                          func(ctx Context, el *xmldoc.Element) Node { return newActuatingSystemNode(ctx, el) },
		"ActuatingSystemComponent":                 func(ctx Context, el *xmldoc.Element) Node { return newActuatingSystemComponentNode(ctx, el) },
		"ProcessSignalGeneratingSystem":            func(ctx Context, el *xmldoc.Element) Node { return newSignalGeneratingSystemNode(ctx, el) },
		"ProcessSignalGeneratingSystemComponent":   func(ctx Context, el *xmldoc.Element) Node { return newSignalGeneratingSystemComponentNode(ctx, el) },
	}
}

// buildNode constructs the loader node for el, or reports false for a
// tag outside the dispatch table.
func buildNode(ctx Context, el *xmldoc.Element) (Node, bool) {
	b, ok := builders[el.Tag]
	if !ok {
		return nil, false
	}
	return b(ctx, el), true
}
