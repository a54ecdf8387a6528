package proteus

import (
	"testing"

	derrors "github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/model"
)

// valveXML builds a two-port gate valve element with node ids <id>-n1
// and <id>-n2.
func valveXML(id string) string {
	return `<PipingComponent ID="` + id + `" ComponentClass="GateValve">
		<ConnectionPoints NumPoints="2">
			<Node ID="` + id + `-n1" Type="process"/>
			<Node ID="` + id + `-n2" Type="process"/>
		</ConnectionPoints>
	</PipingComponent>`
}

func loadSegment(t *testing.T, res *Result) *model.PipingNetworkSegment {
	t.Helper()
	if res.Model == nil {
		t.Fatalf("Model = nil, want loaded plant")
	}
	systems := res.Model.ConceptualModel.PipingNetworkSystems
	if len(systems) != 1 || len(systems[0].Segments) != 1 {
		t.Fatalf("PipingNetworkSystems = %v, want one system with one segment", systems)
	}
	return systems[0].Segments[0]
}

func TestParseConnectionPoints(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipingComponent ID="V1">
		<ConnectionPoints NumPoints="2">
			<Node ID="n1" Type="process"/>
			<Node ID="n2" Type="process"/>
			<Node ID="sig" Type="signal"/>
		</ConnectionPoints>
	</PipingComponent>`)

	cp := parseConnectionPoints(ctx, el)

	if len(cp.nodes) != 2 {
		t.Fatalf("nodes = %d, want 2 process nodes, signal skipped", len(cp.nodes))
	}
	if _, ok := ctx.objects.Lookup("n1"); !ok {
		t.Fatalf("Lookup(n1) = false, want process node registered")
	}
	if _, ok := ctx.objects.Lookup("sig"); ok {
		t.Fatalf("Lookup(sig) = true, want signal node not registered")
	}
	in, err := cp.inflowNode()
	if err != nil || in == nil || in.ID != "n1" {
		t.Fatalf("inflowNode() = %v, %v, want first node n1", in, err)
	}
	out, err := cp.outflowNode()
	if err != nil || out == nil || out.ID != "n2" {
		t.Fatalf("outflowNode() = %v, %v, want second node n2", out, err)
	}
	if n := len(rec.Diagnostics()); n != 0 {
		t.Fatalf("recorded %d diagnostics, want 0", n)
	}
}

func TestParseConnectionPointsDeclaredFlow(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipingComponent ID="V1">
		<ConnectionPoints FlowIn="2" FlowOut="1">
			<Node ID="n1" Type="process"/>
			<Node ID="n2" Type="process"/>
		</ConnectionPoints>
	</PipingComponent>`)

	cp := parseConnectionPoints(ctx, el)

	in, _ := cp.inflowNode()
	out, _ := cp.outflowNode()
	if in == nil || in.ID != "n2" {
		t.Fatalf("inflowNode() = %v, want declared node n2", in)
	}
	if out == nil || out.ID != "n1" {
		t.Fatalf("outflowNode() = %v, want declared node n1", out)
	}
	if n := len(rec.Diagnostics()); n != 0 {
		t.Fatalf("recorded %d diagnostics, want 0", n)
	}
}

func TestParseConnectionPointsNumPointsMismatch(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipingComponent ID="V1">
		<ConnectionPoints NumPoints="3">
			<Node ID="n1" Type="process"/>
			<Node ID="n2" Type="process"/>
		</ConnectionPoints>
	</PipingComponent>`)

	parseConnectionPoints(ctx, el)

	warns := messagesAt(rec.Diagnostics(), derrors.Warning)
	if len(warns) != 1 || !containsMessage(warns, "NumPoints declares 3") {
		t.Fatalf("WARNING diagnostics = %v, want one NumPoints mismatch", warns)
	}
}

func TestParseConnectionPointsFlowIndexOutOfRange(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipingComponent ID="V1">
		<ConnectionPoints FlowIn="5">
			<Node ID="n1" Type="process"/>
			<Node ID="n2" Type="process"/>
		</ConnectionPoints>
	</PipingComponent>`)

	cp := parseConnectionPoints(ctx, el)

	errs := messagesAt(rec.Diagnostics(), derrors.Error)
	if len(errs) != 1 || !containsMessage(errs, "out of range") {
		t.Fatalf("ERROR diagnostics = %v, want one out-of-range port index", errs)
	}
	in, err := cp.inflowNode()
	if err != nil || in == nil || in.ID != "n1" {
		t.Fatalf("inflowNode() = %v, %v, want fallback to first node", in, err)
	}
}

func TestParseConnectionPointsMultipleBlocksAccumulate(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipingComponent ID="V1">
		<ConnectionPoints>
			<Node ID="n1" Type="process"/>
		</ConnectionPoints>
		<ConnectionPoints>
			<Node ID="n2" Type="process"/>
		</ConnectionPoints>
	</PipingComponent>`)

	cp := parseConnectionPoints(ctx, el)

	if n := len(rec.Diagnostics()); n != 0 {
		t.Fatalf("recorded %d diagnostics, want 0", n)
	}
	if len(cp.nodes) != 2 || cp.nodes[0].ID != "n1" || cp.nodes[1].ID != "n2" {
		t.Fatalf("nodes = %v, want n1 and n2 in document order", cp.nodes)
	}
}

func TestParseConnectionPointsDuplicateFlowDeclaration(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipingComponent ID="V1">
		<ConnectionPoints FlowIn="1">
			<Node ID="n1" Type="process"/>
			<Node ID="n2" Type="process"/>
		</ConnectionPoints>
		<ConnectionPoints FlowIn="1">
			<Node ID="n3" Type="process"/>
		</ConnectionPoints>
	</PipingComponent>`)

	cp := parseConnectionPoints(ctx, el)

	errs := messagesAt(rec.Diagnostics(), derrors.Error)
	if len(errs) != 1 || !containsMessage(errs, "Main inflow port declared more than once") {
		t.Fatalf("ERROR diagnostics = %v, want one duplicate flow declaration", errs)
	}
	if len(cp.nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3", len(cp.nodes))
	}
	in, err := cp.inflowNode()
	if err != nil || in == nil || in.ID != "n1" {
		t.Fatalf("inflowNode() = %v, %v, want first declaration kept", in, err)
	}
}

func TestOutflowNodeSingleNode(t *testing.T) {
	t.Parallel()

	ctx, rec := testContext(t)
	el := parseElement(t, `<PipeOffPageConnector ID="OPC1">
		<ConnectionPoints>
			<Node ID="n1" Type="process"/>
		</ConnectionPoints>
	</PipeOffPageConnector>`)

	cp := parseConnectionPoints(ctx, el)

	if n := len(rec.Diagnostics()); n != 0 {
		t.Fatalf("recorded %d diagnostics, want 0", n)
	}
	out, err := cp.outflowNode()
	if err != nil || out != nil {
		t.Fatalf("outflowNode() = %v, %v, want no outflow for a single node", out, err)
	}
	in, err := cp.inflowNode()
	if err != nil || in == nil || in.ID != "n1" {
		t.Fatalf("inflowNode() = %v, %v, want the single node", in, err)
	}
}

func TestPortAccessBeforeParse(t *testing.T) {
	t.Parallel()

	var cp *connectionPoints
	if _, err := cp.inflowNode(); !derrors.IsInternal(err) {
		t.Fatalf("inflowNode() error = %v, want internal error", err)
	}
	if _, err := cp.outflowNode(); !derrors.IsInternal(err) {
		t.Fatalf("outflowNode() error = %v, want internal error", err)
	}
}

func TestSegmentDirectConnection(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">`+valveXML("V1")+valveXML("V2")+`</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	if len(seg.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(seg.Items))
	}
	if len(seg.Connections) != 1 {
		t.Fatalf("Connections = %d, want exactly one synthesized connection", len(seg.Connections))
	}
	conn := seg.Connections[0]
	if !conn.Direct() {
		t.Fatalf("Direct() = false, want adjacency connection")
	}
	if conn.SourceItem.ObjectID() != "V1" || conn.TargetItem.ObjectID() != "V2" {
		t.Fatalf("connection = %s -> %s, want V1 -> V2", conn.SourceItem.ObjectID(), conn.TargetItem.ObjectID())
	}
	if conn.SourceNode == nil || conn.SourceNode.ID != "V1-n2" {
		t.Fatalf("SourceNode = %v, want V1 outflow V1-n2", conn.SourceNode)
	}
	if conn.TargetNode == nil || conn.TargetNode.ID != "V2-n1" {
		t.Fatalf("TargetNode = %v, want V2 inflow V2-n1", conn.TargetNode)
	}
	if seg.SourceItem.ObjectID() != "V1" || seg.SourceNode.ID != "V1-n1" {
		t.Fatalf("segment source = %v %v, want implicit V1 inflow", seg.SourceItem, seg.SourceNode)
	}
	if seg.TargetItem.ObjectID() != "V2" || seg.TargetNode.ID != "V2-n2" {
		t.Fatalf("segment target = %v %v, want implicit V2 outflow", seg.TargetItem, seg.TargetNode)
	}
	if got := countSeverity(res.Diagnostics, derrors.Error); got != 0 {
		t.Fatalf("recorded %d ERROR diagnostics, want 0", got)
	}
}

func TestSegmentExplicitCenterLine(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">`+
		valveXML("V1")+
		`<CenterLine ID="CL1" NumPoints="4"/>`+
		valveXML("V2")+
		`</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	if len(seg.Connections) != 1 {
		t.Fatalf("Connections = %d, want 1", len(seg.Connections))
	}
	conn := seg.Connections[0]
	if conn.Direct() {
		t.Fatalf("Direct() = true, want explicit center line connection")
	}
	if conn.CenterLine.ID != "CL1" || conn.CenterLine.NumPoints != 4 {
		t.Fatalf("CenterLine = %+v, want CL1 with 4 points", conn.CenterLine)
	}
	if conn.SourceItem.ObjectID() != "V1" || conn.TargetItem.ObjectID() != "V2" {
		t.Fatalf("connection = %s -> %s, want V1 -> V2", conn.SourceItem.ObjectID(), conn.TargetItem.ObjectID())
	}
}

func TestCenterLineAttributes(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">`+
		valveXML("V1")+
		`<CenterLine ID="CL1">
			<GenericAttributes Set="DexpiAttributes">
				<GenericAttribute Name="PipingClassAssignmentClass" Value="CS150"/>
				<GenericAttribute Name="NominalDiameter" Value="50" Units="mm"/>
			</GenericAttributes>
		</CenterLine>`+
		valveXML("V2")+
		`</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	if len(seg.Connections) != 1 || seg.Connections[0].CenterLine == nil {
		t.Fatalf("Connections = %v, want one center line connection", seg.Connections)
	}
	cl := seg.Connections[0].CenterLine
	if v, _ := cl.Attribute("pipingClass"); v != model.String("CS150") {
		t.Fatalf("Attribute(pipingClass) = %v, want CS150", v)
	}
	if v, _ := cl.Attribute("nominalDiameter"); v != (model.Quantity{Value: 50, Unit: "mm"}) {
		t.Fatalf("Attribute(nominalDiameter) = %v, want 50 mm", v)
	}
	if got := countSeverity(res.Diagnostics, derrors.Error); got != 0 {
		t.Fatalf("recorded %d ERROR diagnostics, want 0", got)
	}
}

func TestSegmentDeclaredEndpoints(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<Equipment ID="E1" ComponentClass="Tank">
		<Nozzle ID="N1">
			<ConnectionPoints>
				<Node ID="N1-n1" Type="process"/>
			</ConnectionPoints>
		</Nozzle>
	</Equipment>
	<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">
			<Connection FromID="N1" FromNode="1"/>
			<CenterLine ID="CL1"/>`+valveXML("V1")+`
		</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	if seg.SourceItem == nil || seg.SourceItem.ObjectID() != "N1" {
		t.Fatalf("SourceItem = %v, want declared nozzle N1", seg.SourceItem)
	}
	if seg.SourceNode == nil || seg.SourceNode.ID != "N1-n1" {
		t.Fatalf("SourceNode = %v, want declared node N1-n1", seg.SourceNode)
	}
	if len(seg.Connections) != 1 {
		t.Fatalf("Connections = %d, want 1", len(seg.Connections))
	}
	conn := seg.Connections[0]
	if conn.SourceItem.ObjectID() != "N1" || conn.SourceNode.ID != "N1-n1" {
		t.Fatalf("boundary connection source = %v %v, want external nozzle port", conn.SourceItem, conn.SourceNode)
	}
	if conn.TargetItem.ObjectID() != "V1" || conn.TargetNode.ID != "V1-n1" {
		t.Fatalf("boundary connection target = %v %v, want V1 inflow", conn.TargetItem, conn.TargetNode)
	}
	if seg.TargetItem.ObjectID() != "V1" || seg.TargetNode.ID != "V1-n2" {
		t.Fatalf("segment target = %v %v, want implicit V1 outflow", seg.TargetItem, seg.TargetNode)
	}
}

func TestSegmentConsecutiveCenterLines(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<Equipment ID="E1" ComponentClass="Tank">
		<Nozzle ID="N1">
			<ConnectionPoints>
				<Node ID="N1-n1" Type="process"/>
			</ConnectionPoints>
		</Nozzle>
	</Equipment>
	<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">
			<Connection FromID="N1" FromNode="1"/>
			<CenterLine ID="CL1"/>
			<CenterLine ID="CL2"/>`+valveXML("V1")+`
		</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	if len(seg.Connections) != 2 {
		t.Fatalf("Connections = %d, want 2", len(seg.Connections))
	}
	first, second := seg.Connections[0], seg.Connections[1]
	if first.SourceItem == nil || first.SourceItem.ObjectID() != "N1" {
		t.Fatalf("first connection source = %v, want external nozzle N1", first.SourceItem)
	}
	if first.TargetItem != nil {
		t.Fatalf("first connection target = %v, want open toward the next line", first.TargetItem)
	}
	if second.SourceItem != nil || second.SourceNode != nil {
		t.Fatalf("second connection source = %v %v, want open between two lines", second.SourceItem, second.SourceNode)
	}
	if second.TargetItem == nil || second.TargetItem.ObjectID() != "V1" {
		t.Fatalf("second connection target = %v, want V1", second.TargetItem)
	}
}

func TestSegmentReversedSequence(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">
			<Connection FromID="V2"/>`+valveXML("V1")+valveXML("V2")+`
		</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	if len(seg.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(seg.Items))
	}
	if seg.Items[0].ObjectID() != "V2" || seg.Items[1].ObjectID() != "V1" {
		t.Fatalf("Items = [%s, %s], want reversed to [V2, V1]", seg.Items[0].ObjectID(), seg.Items[1].ObjectID())
	}
	conn := seg.Connections[0]
	if conn.SourceItem.ObjectID() != "V2" || conn.TargetItem.ObjectID() != "V1" {
		t.Fatalf("connection = %s -> %s, want V2 -> V1 after reversal", conn.SourceItem.ObjectID(), conn.TargetItem.ObjectID())
	}
	if conn.SourceNode == nil || conn.SourceNode.ID != "V2-n2" {
		t.Fatalf("SourceNode = %v, want V2 outflow after reversal", conn.SourceNode)
	}
	if seg.SourceItem.ObjectID() != "V2" || seg.SourceNode.ID != "V2-n1" {
		t.Fatalf("segment source = %v %v, want declared V2 through its inflow", seg.SourceItem, seg.SourceNode)
	}
}

func TestSegmentDuplicateConnectionDeclaration(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">
			<Connection FromID="V1"/>
			<Connection FromID="V2"/>`+valveXML("V1")+valveXML("V2")+`
		</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	seg := loadSegment(t, res)
	errs := messagesAt(res.Diagnostics, derrors.Error)
	if len(errs) != 1 || !containsMessage(errs, "Multiple Connection declarations") {
		t.Fatalf("ERROR diagnostics = %v, want one duplicate Connection", errs)
	}
	// First declaration names V1 as source, which is already first in
	// sequence, so no reversal happens.
	if seg.Items[0].ObjectID() != "V1" {
		t.Fatalf("Items[0] = %s, want V1 from the kept declaration", seg.Items[0].ObjectID())
	}
}

func TestSegmentMissingIDSkipped(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment>`+valveXML("V1")+`</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	systems := res.Model.ConceptualModel.PipingNetworkSystems
	if len(systems) != 1 || len(systems[0].Segments) != 0 {
		t.Fatalf("Segments = %v, want segment without id skipped", systems)
	}
	errs := messagesAt(res.Diagnostics, derrors.Error)
	if !containsMessage(errs, "ID not found for element 'PipingNetworkSegment'. Element Skipped.") {
		t.Fatalf("ERROR diagnostics = %v, want missing id report", errs)
	}
}

func TestSystemChainsSegments(t *testing.T) {
	t.Parallel()

	res := loadDoc(t, `<PipingNetworkSystem ID="S1">
		<PipingNetworkSegment ID="SEG1">`+valveXML("V1")+`<CenterLine/></PipingNetworkSegment>
		<PipingNetworkSegment ID="SEG2">`+valveXML("V2")+`</PipingNetworkSegment>
	</PipingNetworkSystem>`)

	if res.Model == nil {
		t.Fatalf("Model = nil, want loaded plant")
	}
	segs := res.Model.ConceptualModel.PipingNetworkSystems[0].Segments
	if len(segs) != 2 {
		t.Fatalf("Segments = %d, want 2", len(segs))
	}
	first, second := segs[0], segs[1]
	if first.TargetItem == nil || first.TargetItem.ObjectID() != "V2" {
		t.Fatalf("TargetItem = %v, want chained to neighbor item V2", first.TargetItem)
	}
	if first.TargetNode == nil || first.TargetNode.ID != "V2-n1" {
		t.Fatalf("TargetNode = %v, want neighbor inflow V2-n1", first.TargetNode)
	}
	if second.SourceItem.ObjectID() != "V2" {
		t.Fatalf("second segment source = %v, want its own item V2", second.SourceItem)
	}
	infos := messagesAt(res.Diagnostics, derrors.Info)
	if !containsMessage(infos, "Inferred connection from segment 'SEG1' to segment 'SEG2'") {
		t.Fatalf("INFO diagnostics = %v, want chaining notice", infos)
	}
}
