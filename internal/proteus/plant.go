package proteus

import (
	"strings"
	"time"

	"github.com/jacoelho/dexpi/internal/xmldoc"
	"github.com/jacoelho/dexpi/model"
)

var requiredMetadataFields = []string{
	"Date",
	"Time",
	"OriginatingSystem",
	"OriginatingSystemVendor",
	"OriginatingSystemVersion",
}

// fixedMetadataFields are attributes the source format pins to known
// values. Mismatches are tolerated with a WARNING, or an ERROR under
// strict metadata handling.
var fixedMetadataFields = []struct {
	name     string
	want     string
	contains bool
	fold     bool
}{
	{name: "Application", want: "Dexpi"},
	{name: "ApplicationVersion", want: "1.3", contains: true},
	{name: "Discipline", want: "PID"},
	{name: "Is3D", want: "No", fold: true},
	{name: "SchemaVersion", want: "4.1", contains: true},
}

// plantModelNode loads the document root: it validates the export
// metadata and assembles the conceptual model from the top-level
// children.
type plantModelNode struct {
	node
	equipment  []*equipmentNode
	systems    []*systemNode
	functions  []*instrumentationFunctionNode
	loops      []*loopFunctionNode
	actuating  []*actuatingSystemNode
	generating []*signalGeneratingSystemNode
	flows      []*informationFlowNode
	plant      *model.DexpiModel
}

func newPlantModelNode(ctx Context, el *xmldoc.Element) *plantModelNode {
	n := &plantModelNode{node: newNode(ctx, el)}
	for _, c := range el.Children {
		built, ok := buildNode(ctx.Descend(c), c)
		if !ok {
			continue
		}
		switch child := built.(type) {
		case *equipmentNode:
			n.equipment = append(n.equipment, child)
		case *systemNode:
			n.systems = append(n.systems, child)
		case *instrumentationFunctionNode:
			n.functions = append(n.functions, child)
		case *loopFunctionNode:
			n.loops = append(n.loops, child)
		case *actuatingSystemNode:
			n.actuating = append(n.actuating, child)
		case *signalGeneratingSystemNode:
			n.generating = append(n.generating, child)
		case *informationFlowNode:
			n.flows = append(n.flows, child)
		default:
			continue
		}
		n.addChild(built)
	}
	return n
}

func (p *plantModelNode) Compositional() (model.Object, error) {
	return p.compose(p.build)
}

func (p *plantModelNode) build() (model.Object, error) {
	meta, ok := p.parsePlantInformation()
	if !ok {
		return nil, nil
	}

	plant := &model.DexpiModel{
		Base:            model.Base{ID: p.elem.AttrValue("ID")},
		Metadata:        meta,
		ConceptualModel: &model.ConceptualModel{},
	}
	cm := plant.ConceptualModel

	for _, child := range p.equipment {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if eq, ok := obj.(*model.Equipment); ok && eq != nil {
			cm.TaggedPlantItems = append(cm.TaggedPlantItems, eq)
		}
	}
	for _, child := range p.systems {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if sys, ok := obj.(*model.PipingNetworkSystem); ok && sys != nil {
			cm.PipingNetworkSystems = append(cm.PipingNetworkSystems, sys)
		}
	}
	for _, child := range p.functions {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if f, ok := obj.(*model.ProcessInstrumentationFunction); ok && f != nil {
			cm.ProcessInstrumentationFunctions = append(cm.ProcessInstrumentationFunctions, f)
		}
	}
	for _, child := range p.loops {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if l, ok := obj.(*model.InstrumentationLoopFunction); ok && l != nil {
			cm.InstrumentationLoopFunctions = append(cm.InstrumentationLoopFunctions, l)
		}
	}
	for _, child := range p.actuating {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if s, ok := obj.(*model.ActuatingSystem); ok && s != nil {
			cm.ActuatingSystems = append(cm.ActuatingSystems, s)
		}
	}
	for _, child := range p.generating {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if s, ok := obj.(*model.ProcessSignalGeneratingSystem); ok && s != nil {
			cm.ProcessSignalGeneratingSystems = append(cm.ProcessSignalGeneratingSystems, s)
		}
	}
	for _, child := range p.flows {
		obj, err := child.Compositional()
		if err != nil {
			return nil, err
		}
		if f, ok := obj.(*model.InformationFlow); ok && f != nil {
			cm.InformationFlows = append(cm.InformationFlows, f)
		}
	}

	if plant.ID != "" {
		if !p.register(plant.ID, plant) {
			return nil, nil
		}
	}
	p.plant = plant
	return plant, nil
}

// parsePlantInformation validates the required export metadata. A
// missing block or missing required field is CRITICAL and the load
// yields no model.
func (p *plantModelNode) parsePlantInformation() (*model.PlantMetadata, bool) {
	info := p.elem.FirstChild("PlantInformation")
	if info == nil {
		p.ctx.Critical(msgMissingMetadata(requiredMetadataFields))
		return nil, false
	}

	var missing []string
	for _, field := range requiredMetadataFields {
		if info.AttrValue(field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		p.ctx.Critical(msgMissingMetadata(missing))
		return nil, false
	}

	for _, fixed := range fixedMetadataFields {
		got, ok := info.Attr(fixed.name)
		if !ok {
			continue
		}
		valid := got == fixed.want
		switch {
		case fixed.contains:
			valid = strings.Contains(got, fixed.want)
		case fixed.fold:
			valid = strings.EqualFold(got, fixed.want)
		}
		if valid {
			continue
		}
		if p.ctx.opts.StrictMetadata {
			p.ctx.Error(msgMetadataMismatch(fixed.name, fixed.want, got))
		} else {
			p.ctx.Warn(msgMetadataMismatch(fixed.name, fixed.want, got))
		}
	}

	meta := &model.PlantMetadata{
		OriginatingSystem:        info.AttrValue("OriginatingSystem"),
		OriginatingSystemVendor:  info.AttrValue("OriginatingSystemVendor"),
		OriginatingSystemVersion: info.AttrValue("OriginatingSystemVersion"),
		SchemaVersion:            info.AttrValue("SchemaVersion"),
		Discipline:               info.AttrValue("Discipline"),
	}

	date := info.AttrValue("Date")
	clock := info.AttrValue("Time")
	ts, err := time.Parse("2006-01-02 15:04:05", date+" "+clock)
	if err != nil {
		p.ctx.Error(msgTimestampInvalid(date, clock, err))
	} else {
		meta.ExportedAt = ts
	}
	return meta, true
}
