package proteus

import (
	"fmt"
	"testing"
)

func TestBuildNodeDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{tag: "Equipment", want: "*proteus.equipmentNode"},
		{tag: "Nozzle", want: "*proteus.nozzleNode"},
		{tag: "PipingNetworkSystem", want: "*proteus.systemNode"},
		{tag: "PipingNetworkSegment", want: "*proteus.segmentNode"},
		{tag: "PipingComponent", want: "*proteus.pipingComponentNode"},
		{tag: "PipeOffPageConnector", want: "*proteus.pipeConnectorNode"},
		{tag: "PipeOffPageConnectorReference", want: "*proteus.pipeConnectorReferenceNode"},
		{tag: "PropertyBreak", want: "*proteus.propertyBreakNode"},
		{tag: "CenterLine", want: "*proteus.centerLineNode"},
		{tag: "ProcessInstrumentationFunction", want: "*proteus.instrumentationFunctionNode"},
		{tag: "ActuatingFunction", want: "*proteus.actuatingFunctionNode"},
		{tag: "ActuatingElectricalFunction", want: "*proteus.actuatingElectricalFunctionNode"},
		{tag: "ProcessSignalGeneratingFunction", want: "*proteus.signalGeneratingFunctionNode"},
		{tag: "InformationFlow", want: "*proteus.informationFlowNode"},
		{tag: "InformationFlowOffPageConnector", want: "*proteus.signalConnectorNode"},
		{tag: "InformationFlowOffPageConnectorReference", want: "*proteus.signalConnectorReferenceNode"},
		{tag: "InstrumentationLoopFunction", want: "*proteus.loopFunctionNode"},
		{tag: "ActuatingSystem", want: "*proteus.actuatingSystemNode"},
		{tag: "ActuatingSystemComponent", want: "*proteus.actuatingSystemComponentNode"},
		{tag: "ProcessSignalGeneratingSystem", want: "*proteus.signalGeneratingSystemNode"},
		{tag: "ProcessSignalGeneratingSystemComponent", want: "*proteus.signalGeneratingSystemComponentNode"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()

			ctx, _ := testContext(t)
			el := parseElement(t, fmt.Sprintf(`<%s ID="X1"/>`, tc.tag))

			built, ok := buildNode(ctx, el)
			if !ok {
				t.Fatalf("buildNode(%s) not dispatched", tc.tag)
			}
			if got := fmt.Sprintf("%T", built); got != tc.want {
				t.Fatalf("buildNode(%s) = %s, want %s", tc.tag, got, tc.want)
			}
		})
	}
}

func TestBuildNodeUnknownTag(t *testing.T) {
	t.Parallel()

	ctx, _ := testContext(t)
	el := parseElement(t, `<Drawing ID="D1"/>`)

	if built, ok := buildNode(ctx, el); ok {
		t.Fatalf("buildNode(Drawing) = %T, want no dispatch", built)
	}
}
