package model

import "time"

// PlantMetadata carries the export metadata of the source document.
// All fields are required in the source; a document missing any of them
// cannot be loaded.
type PlantMetadata struct {
	ExportedAt               time.Time
	OriginatingSystem        string
	OriginatingSystemVendor  string
	OriginatingSystemVersion string
	SchemaVersion            string
	Discipline               string
}

// ConceptualModel groups the top-level collections of the plant model.
type ConceptualModel struct {
	TaggedPlantItems                []*Equipment
	PipingNetworkSystems            []*PipingNetworkSystem
	ProcessInstrumentationFunctions []*ProcessInstrumentationFunction
	InstrumentationLoopFunctions    []*InstrumentationLoopFunction
	ActuatingSystems                []*ActuatingSystem
	ProcessSignalGeneratingSystems  []*ProcessSignalGeneratingSystem
	InformationFlows                []*InformationFlow
}

// DexpiModel is the root of a loaded plant model.
type DexpiModel struct {
	Base
	Metadata        *PlantMetadata
	ConceptualModel *ConceptualModel
}
