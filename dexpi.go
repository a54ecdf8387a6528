// Package dexpi loads Proteus XML plant-model documents into a validated,
// cross-referenced object graph.
//
// Loading runs three passes over the document: a compositional pass
// building domain objects and ownership edges, a reference pass resolving
// id references once every object exists, and a control pass reconciling
// relationships the source encodes redundantly. Malformed or incomplete
// input does not abort the load; problems are collected as ordered
// diagnostics queryable by severity.
package dexpi

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/dexpi/errors"
	"github.com/jacoelho/dexpi/internal/proteus"
	"github.com/jacoelho/dexpi/model"
)

// LoadOptions configures document loading.
type LoadOptions struct {
	// StrictMetadata escalates fixed-value metadata mismatches from
	// WARNING to ERROR.
	StrictMetadata bool
}

// Result holds a finished load: the plant model and every diagnostic in
// registration order. Model is nil when the document could not produce
// one, e.g. when required export metadata is missing.
type Result struct {
	Model       *model.DexpiModel
	Diagnostics errors.DiagnosticList
}

// Load reads a Proteus document and returns the plant model. When
// diagnostics of severity ERROR or above were recorded, the returned
// error is the full DiagnosticList; the model is still returned when one
// was produced. Use errors.AsDiagnostics to inspect the list.
func Load(r io.Reader) (*model.DexpiModel, error) {
	res, err := LoadWithOptions(r, LoadOptions{})
	if err != nil {
		return nil, err
	}
	if res.Diagnostics.HasMin(errors.Error) {
		return res.Model, res.Diagnostics
	}
	return res.Model, nil
}

// LoadWithOptions reads a Proteus document with explicit configuration.
// The returned error covers parse failures and internal errors only;
// data problems are reported through Result.Diagnostics.
func LoadWithOptions(r io.Reader, opts LoadOptions) (*Result, error) {
	if r == nil {
		return nil, fmt.Errorf("load plant model: nil reader")
	}
	res, err := proteus.Load(r, proteus.Options{StrictMetadata: opts.StrictMetadata})
	if err != nil {
		return nil, err
	}
	return &Result{Model: res.Model, Diagnostics: res.Diagnostics}, nil
}

// LoadFile reads a Proteus document from a file path.
func LoadFile(path string) (*model.DexpiModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plant model %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Load(f)
}
